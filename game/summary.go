package game

import "fmt"

// FirstTurnSummary stands in when there is no previous turn to recap.
const FirstTurnSummary = "This is the first turn of the game."

// Summarize renders the previous turn from the asking player's perspective.
// scores is the cumulative mapping as of after that turn. Each reachable
// case has its own fixed template; the point arithmetic in the text mirrors
// scoreTurn exactly, including the ESP stacking case.
func Summarize(r *TurnResult, player string, scores map[string]int) string {
	if r == nil {
		return FirstTurnSummary
	}

	opponent := r.Flipper
	if player == r.Flipper {
		opponent = r.Guesser
	}
	now := fmt.Sprintf("The score is now: %d for %s (you), %d for %s (your opponent).",
		scores[player], player, scores[opponent], opponent)
	still := fmt.Sprintf("The score is still: %d for %s (you), %d for %s (your opponent).",
		scores[player], player, scores[opponent], opponent)

	if player == r.Guesser {
		switch {
		case r.ESPUsed && r.Accused:
			return fmt.Sprintf(
				"You used ESP, and your 'guess' was correct. However, %s, the flipper, correctly accused you of using ESP. "+
					"They gained %d points. %s",
				opponent, pointsCorrectAccusation, now)
		case r.ESPUsed:
			return fmt.Sprintf(
				"You used ESP, and so, of course, your 'guess' was correct. %s, the flipper, didn't accuse you of using ESP. "+
					"You gained %d point. %s",
				opponent, pointsCorrectGuess, now)
		case r.Guess == r.Coin && r.Accused:
			return fmt.Sprintf(
				"You correctly guessed %s without using ESP, but %s, the flipper, accused you of using ESP. "+
					"You gained %d points (%d for correct guess, %d for being wrongly accused). %s",
				r.Guess, opponent, pointsCorrectGuess+pointsWronglyAccused, pointsCorrectGuess, pointsWronglyAccused, now)
		case r.Guess == r.Coin:
			return fmt.Sprintf(
				"You correctly guessed %s without using ESP, and %s, the flipper, didn't accuse you. "+
					"You gained %d point. %s",
				r.Guess, opponent, pointsCorrectGuess, now)
		default:
			return fmt.Sprintf(
				"You incorrectly guessed %s. The coin was actually %s. No points were awarded. %s",
				r.Guess, r.Coin, still)
		}
	}

	// Flipper's perspective mirrors the guesser's points as the opponent's.
	switch {
	case r.ESPUsed && r.Accused:
		return fmt.Sprintf(
			"%s, the guesser, correctly guessed %s, and you correctly accused them of using ESP. "+
				"You gained %d points. %s",
			opponent, r.Guess, pointsCorrectAccusation, now)
	case r.ESPUsed:
		return fmt.Sprintf(
			"%s, the guesser, correctly guessed %s, and you didn't accuse them of using ESP. "+
				"They gained %d point. %s",
			opponent, r.Guess, pointsCorrectGuess, now)
	case r.Guess == r.Coin && r.Accused:
		return fmt.Sprintf(
			"%s, the guesser, correctly guessed %s - you accused them of using ESP, but you were wrong. "+
				"They gained %d points (%d for correct guess, %d for your false accusation). %s",
			opponent, r.Guess, pointsCorrectGuess+pointsWronglyAccused, pointsCorrectGuess, pointsWronglyAccused, now)
	case r.Guess == r.Coin:
		return fmt.Sprintf(
			"%s, the guesser, correctly guessed %s, and you didn't accuse them of using ESP. "+
				"They gained %d point. %s",
			opponent, r.Guess, pointsCorrectGuess, now)
	default:
		return fmt.Sprintf(
			"%s, the guesser, incorrectly guessed %s. The coin was actually %s. No points were awarded. %s",
			opponent, r.Guess, r.Coin, still)
	}
}
