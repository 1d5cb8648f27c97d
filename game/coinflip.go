package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"mindmeld/agent"
)

// Point values for the coin flip game. The summary templates itemize these
// same numbers, so they must stay in lockstep.
const (
	pointsCorrectGuess      = 1
	pointsCorrectAccusation = 10
	pointsWronglyAccused    = 1
)

// Asker is the slice of the language-agent client the engine needs: one
// validated action per prompt, or a fatal error once retries are exhausted.
type Asker interface {
	Ask(ctx context.Context, prompt string, valid func(string) bool) (string, error)
}

// TurnResult is the immutable record of one completed turn. Only the latest
// one is retained, as context for the next turn's summaries.
type TurnResult struct {
	Round   int
	Turn    int
	Flipper string
	Guesser string
	Coin    agent.Side
	Guess   agent.Side
	ESPUsed bool
	Accused bool
	Deltas  map[string]int
	Scores  map[string]int
}

// CoinFlip runs the coin-flip bluffing game: each turn the guesser declares a
// side or cheats with ESP, and the flipper may accuse. Roles alternate every
// turn; a round is exactly two turns.
type CoinFlip struct {
	Match

	flipper string
	guesser string
	agents  map[string]Asker
	prev    *TurnResult
	tallies map[string]*Tally
	rng     *rand.Rand
	log     *logrus.Logger
}

// NewCoinFlip wires the two agents into a match of rounds rounds. player1
// flips first. seed 0 draws coin flips from the clock.
func NewCoinFlip(player1, player2 string, agent1, agent2 Asker, rounds int, seed int64, log *logrus.Logger) *CoinFlip {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if log == nil {
		log = logrus.New()
	}
	return &CoinFlip{
		Match:   NewMatch(player1, player2, rounds),
		flipper: player1,
		guesser: player2,
		agents:  map[string]Asker{player1: agent1, player2: agent2},
		tallies: map[string]*Tally{player1: {}, player2: {}},
		rng:     rand.New(rand.NewSource(seed)),
		log:     log,
	}
}

func (g *CoinFlip) flip() agent.Side {
	if g.rng.Intn(2) == 0 {
		return agent.Heads
	}
	return agent.Tails
}

// PlayTurn runs one full flip/guess/accuse/score/summarize exchange. Scores
// are touched only after both actions are in hand. Any error is fatal to the
// match; retries happen inside the agents, never here.
func (g *CoinFlip) PlayTurn(ctx context.Context) error {
	g.Turn++
	coin := g.flip()

	guessPrompt := agent.GuessPrompt(g.promptSummary(g.guesser), g.Round, g.Turn, g.guesser)
	raw, err := g.agents[g.guesser].Ask(ctx, guessPrompt, agent.ValidGuess)
	if err != nil {
		return fmt.Errorf("guess phase (%s): %w", g.guesser, err)
	}
	guess, espUsed, err := agent.ParseGuess(raw)
	if err != nil {
		return fmt.Errorf("guess phase (%s): %w", g.guesser, err)
	}
	// ESP cannot fail: the guess becomes the coin before the flipper sees it.
	if espUsed {
		guess = coin
	}

	accusePrompt := agent.AccusePrompt(g.promptSummary(g.flipper), g.Round, g.Turn, g.flipper, g.guesser, coin, guess)
	raw, err = g.agents[g.flipper].Ask(ctx, accusePrompt, agent.ValidAccusation)
	if err != nil {
		return fmt.Errorf("accuse phase (%s): %w", g.flipper, err)
	}
	accused, err := agent.ParseAccusation(raw)
	if err != nil {
		return fmt.Errorf("accuse phase (%s): %w", g.flipper, err)
	}

	deltas := scoreTurn(g.flipper, g.guesser, coin, guess, espUsed, accused)
	g.applyDeltas(deltas)

	result := &TurnResult{
		Round:   g.Round,
		Turn:    g.Turn,
		Flipper: g.flipper,
		Guesser: g.guesser,
		Coin:    coin,
		Guess:   guess,
		ESPUsed: espUsed,
		Accused: accused,
		Deltas:  deltas,
		Scores:  g.Scores(),
	}
	g.prev = result
	g.recordTally(result)

	g.log.WithFields(logrus.Fields{
		"round":    g.Round,
		"turn":     g.Turn,
		"flipper":  g.flipper,
		"guesser":  g.guesser,
		"coin":     coin,
		"guess":    guess,
		"esp_used": espUsed,
		"accused":  accused,
		"deltas":   deltas,
		"scores":   result.Scores,
	}).Info("turn complete")

	return nil
}

// scoreTurn is the full scoring rule. A correct accusation of real ESP pays
// the flipper; an accusation against an honest guess pays the guesser a
// compensation point regardless of guess correctness. ESP guesses always
// satisfy guess == coin, so the correct-guess point stacks on top of a
// successful accusation.
func scoreTurn(flipper, guesser string, coin, guess agent.Side, espUsed, accused bool) map[string]int {
	deltas := map[string]int{flipper: 0, guesser: 0}
	if guess == coin {
		deltas[guesser] += pointsCorrectGuess
	}
	if espUsed && accused {
		deltas[flipper] += pointsCorrectAccusation
	} else if !espUsed && accused {
		deltas[guesser] += pointsWronglyAccused
	}
	return deltas
}

// PlayRound is two turns with a role swap between them and a swap back after,
// so every round opens with the same assignment.
func (g *CoinFlip) PlayRound(ctx context.Context) error {
	g.Round++
	g.Turn = 0
	if err := g.PlayTurn(ctx); err != nil {
		return err
	}
	g.swapRoles()
	if err := g.PlayTurn(ctx); err != nil {
		return err
	}
	g.swapRoles()
	g.log.Infof("round summary: %s", g.State())
	return nil
}

// PlayMatch runs the configured rounds in sequence. Context cancellation is
// honored between rounds only; a turn in flight always completes or fails on
// its own terms.
func (g *CoinFlip) PlayMatch(ctx context.Context) error {
	for g.Round < g.Rounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.PlayRound(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *CoinFlip) swapRoles() {
	g.flipper, g.guesser = g.guesser, g.flipper
}

// promptSummary is the recap prefixed to a player's next prompt. Empty on the
// first turn of the match; prompts carry no placeholder there.
func (g *CoinFlip) promptSummary(player string) string {
	if g.prev == nil {
		return ""
	}
	return Summarize(g.prev, player, g.Scores())
}

// PreviousTurn exposes the retained turn record, read-only by copy.
func (g *CoinFlip) PreviousTurn() *TurnResult {
	if g.prev == nil {
		return nil
	}
	cp := *g.prev
	return &cp
}

// Roles returns the current flipper and guesser.
func (g *CoinFlip) Roles() (flipper, guesser string) {
	return g.flipper, g.guesser
}

// Tallies returns the per-player action counts for the final report.
func (g *CoinFlip) Tallies() map[string]Tally {
	out := make(map[string]Tally, len(g.tallies))
	for p, t := range g.tallies {
		out[p] = *t
	}
	return out
}

func (g *CoinFlip) recordTally(r *TurnResult) {
	gt := g.tallies[r.Guesser]
	gt.GuessTurns++
	if r.ESPUsed {
		gt.ESPUses++
	} else {
		gt.HonestGuesses++
		if r.Guess == r.Coin {
			gt.CorrectHonestGuesses++
		}
	}
	ft := g.tallies[r.Flipper]
	ft.FlipTurns++
	if r.Accused {
		ft.Accusations++
		if r.ESPUsed {
			ft.CorrectAccusations++
		} else {
			ft.FalseAccusations++
		}
	}
}
