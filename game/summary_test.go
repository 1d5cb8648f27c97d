package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindmeld/agent"
)

func turnRecord(coin, guess agent.Side, esp, accused bool, scores map[string]int) *TurnResult {
	return &TurnResult{
		Round:   1,
		Turn:    1,
		Flipper: "Alice",
		Guesser: "Bob",
		Coin:    coin,
		Guess:   guess,
		ESPUsed: esp,
		Accused: accused,
		Scores:  scores,
	}
}

func TestSummarizeNilIsFirstTurnPlaceholder(t *testing.T) {
	assert.Equal(t, FirstTurnSummary, Summarize(nil, "Bob", nil))
}

func TestSummarizeGuesserESPCaught(t *testing.T) {
	r := turnRecord(agent.Heads, agent.Heads, true, true, map[string]int{"Alice": 10, "Bob": 1})
	got := Summarize(r, "Bob", r.Scores)
	assert.Equal(t,
		"You used ESP, and your 'guess' was correct. However, Alice, the flipper, correctly accused you of using ESP. "+
			"They gained 10 points. The score is now: 1 for Bob (you), 10 for Alice (your opponent).",
		got)
}

func TestSummarizeGuesserESPUncaught(t *testing.T) {
	r := turnRecord(agent.Tails, agent.Tails, true, false, map[string]int{"Alice": 0, "Bob": 1})
	got := Summarize(r, "Bob", r.Scores)
	assert.Equal(t,
		"You used ESP, and so, of course, your 'guess' was correct. Alice, the flipper, didn't accuse you of using ESP. "+
			"You gained 1 point. The score is now: 1 for Bob (you), 0 for Alice (your opponent).",
		got)
}

func TestSummarizeGuesserCorrectButAccused(t *testing.T) {
	r := turnRecord(agent.Heads, agent.Heads, false, true, map[string]int{"Alice": 0, "Bob": 2})
	got := Summarize(r, "Bob", r.Scores)
	assert.Equal(t,
		"You correctly guessed heads without using ESP, but Alice, the flipper, accused you of using ESP. "+
			"You gained 2 points (1 for correct guess, 1 for being wrongly accused). "+
			"The score is now: 2 for Bob (you), 0 for Alice (your opponent).",
		got)
}

func TestSummarizeGuesserCorrectUnaccused(t *testing.T) {
	r := turnRecord(agent.Tails, agent.Tails, false, false, map[string]int{"Alice": 0, "Bob": 1})
	got := Summarize(r, "Bob", r.Scores)
	assert.Equal(t,
		"You correctly guessed tails without using ESP, and Alice, the flipper, didn't accuse you. "+
			"You gained 1 point. The score is now: 1 for Bob (you), 0 for Alice (your opponent).",
		got)
}

func TestSummarizeGuesserWrong(t *testing.T) {
	r := turnRecord(agent.Heads, agent.Tails, false, false, map[string]int{"Alice": 3, "Bob": 2})
	got := Summarize(r, "Bob", r.Scores)
	assert.Equal(t,
		"You incorrectly guessed tails. The coin was actually heads. No points were awarded. "+
			"The score is still: 2 for Bob (you), 3 for Alice (your opponent).",
		got)
}

func TestSummarizeFlipperCaughtESP(t *testing.T) {
	r := turnRecord(agent.Heads, agent.Heads, true, true, map[string]int{"Alice": 10, "Bob": 1})
	got := Summarize(r, "Alice", r.Scores)
	assert.Equal(t,
		"Bob, the guesser, correctly guessed heads, and you correctly accused them of using ESP. "+
			"You gained 10 points. The score is now: 10 for Alice (you), 1 for Bob (your opponent).",
		got)
}

func TestSummarizeFlipperMissedESP(t *testing.T) {
	r := turnRecord(agent.Tails, agent.Tails, true, false, map[string]int{"Alice": 0, "Bob": 1})
	got := Summarize(r, "Alice", r.Scores)
	assert.Equal(t,
		"Bob, the guesser, correctly guessed tails, and you didn't accuse them of using ESP. "+
			"They gained 1 point. The score is now: 0 for Alice (you), 1 for Bob (your opponent).",
		got)
}

func TestSummarizeFlipperFalseAccusation(t *testing.T) {
	r := turnRecord(agent.Heads, agent.Heads, false, true, map[string]int{"Alice": 0, "Bob": 2})
	got := Summarize(r, "Alice", r.Scores)
	assert.Equal(t,
		"Bob, the guesser, correctly guessed heads - you accused them of using ESP, but you were wrong. "+
			"They gained 2 points (1 for correct guess, 1 for your false accusation). "+
			"The score is now: 0 for Alice (you), 2 for Bob (your opponent).",
		got)
}

func TestSummarizeFlipperCorrectGuessUnaccused(t *testing.T) {
	r := turnRecord(agent.Tails, agent.Tails, false, false, map[string]int{"Alice": 0, "Bob": 1})
	got := Summarize(r, "Alice", r.Scores)
	assert.Equal(t,
		"Bob, the guesser, correctly guessed tails, and you didn't accuse them of using ESP. "+
			"They gained 1 point. The score is now: 0 for Alice (you), 1 for Bob (your opponent).",
		got)
}

func TestSummarizeFlipperSawWrongGuess(t *testing.T) {
	r := turnRecord(agent.Heads, agent.Tails, false, false, map[string]int{"Alice": 3, "Bob": 2})
	got := Summarize(r, "Alice", r.Scores)
	assert.Equal(t,
		"Bob, the guesser, incorrectly guessed tails. The coin was actually heads. No points were awarded. "+
			"The score is still: 3 for Alice (you), 2 for Bob (your opponent).",
		got)
}

func TestSummarizePerspectivesAgreeOnScores(t *testing.T) {
	r := turnRecord(agent.Heads, agent.Heads, true, true, map[string]int{"Alice": 10, "Bob": 1})
	fromGuesser := Summarize(r, "Bob", r.Scores)
	fromFlipper := Summarize(r, "Alice", r.Scores)
	assert.Contains(t, fromGuesser, "10 for Alice (your opponent)")
	assert.Contains(t, fromFlipper, "10 for Alice (you)")
	assert.NotEqual(t, fromGuesser, fromFlipper)
}
