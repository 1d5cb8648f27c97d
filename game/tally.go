package game

// Tally counts one player's action mix across a match, split by role.
type Tally struct {
	GuessTurns           int
	ESPUses              int
	HonestGuesses        int
	CorrectHonestGuesses int

	FlipTurns          int
	Accusations        int
	CorrectAccusations int
	FalseAccusations   int
}
