package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessPromptFirstTurnHasNoSummary(t *testing.T) {
	p := GuessPrompt("", 1, 1, "Player 2")
	assert.True(t, strings.HasPrefix(p, "Round 1, turn 1."))
	assert.Contains(t, p, "You, Player 2, are the guesser")
	assert.Contains(t, p, "<action>USE_ESP</action>")
	assert.Contains(t, p, "<action>GUESS_HEADS</action>")
	assert.Contains(t, p, "<action>GUESS_TAILS</action>")
}

func TestGuessPromptPrefixesSummary(t *testing.T) {
	p := GuessPrompt("Last turn you lost.", 2, 1, "Player 1")
	assert.True(t, strings.HasPrefix(p, "Last turn you lost.\n\n"))
	assert.Contains(t, p, "Round 2, turn 1.")
}

func TestAccusePromptCorrectGuess(t *testing.T) {
	p := AccusePrompt("", 1, 2, "Player 1", "Player 2", Heads, Heads)
	assert.Contains(t, p, "You, Player 1, are the flipper")
	assert.Contains(t, p, "it landed on heads")
	assert.Contains(t, p, "The other player, Player 2, guessed heads")
	assert.Contains(t, p, "Do you want to accuse them of using ESP?")
	assert.NotContains(t, p, "no need to accuse")
}

func TestAccusePromptWrongGuessAdvisesAgainstAccusing(t *testing.T) {
	p := AccusePrompt("", 1, 1, "Player 1", "Player 2", Heads, Tails)
	assert.Contains(t, p, "Since the guess was incorrect, there's no need to accuse")
	// Both actions stay available regardless of the advice.
	assert.Contains(t, p, "<action>ACCUSE_ESP</action>")
	assert.Contains(t, p, "<action>NO_ACCUSATION</action>")
}

func TestAccusePromptNeverMentionsESPUse(t *testing.T) {
	// The flipper learns the coin and the guess, nothing about how the guess
	// was produced.
	p := AccusePrompt("", 3, 2, "Player 2", "Player 1", Tails, Tails)
	assert.NotContains(t, p, "used ESP,")
	assert.Contains(t, p, "guessed tails")
}
