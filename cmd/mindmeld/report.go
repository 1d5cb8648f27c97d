package main

import (
	"fmt"
	"os"
	"strings"

	"mindmeld/config"
	"mindmeld/game"
	"mindmeld/rating"
)

//
// ===== console helpers =====
//

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colDim    = "\033[2m"
	colYellow = "\033[33m"
	colCyan   = "\033[36m"
	colMag    = "\033[35m"
)

var useColor = os.Getenv("NO_COLOR") == ""

func c(code, s string) string {
	if !useColor {
		return s
	}
	return code + s + colReset
}

func bold(s string) string { return c(colBold, s) }
func dim(s string) string  { return c(colDim, s) }
func warn(s string) string { return c(colYellow, s) }
func cyan(s string) string { return c(colCyan, s) }
func mag(s string) string  { return c(colMag, s) }

func section(title string) {
	fmt.Printf("\n%s %s %s\n", dim("──"), bold(title), dim("──"))
}

//
// ===== final report =====
//

func printReport(m *game.CoinFlip, cfg *config.Config) {
	scores := m.Scores()
	tallies := m.Tallies()
	p1, p2 := m.Player1, m.Player2

	section("RESULTS")
	fmt.Println(m.State())

	turns := tallies[p1].GuessTurns + tallies[p2].GuessTurns
	if turns == 0 {
		fmt.Println(dim("No turns completed."))
		return
	}

	for _, p := range []string{p1, p2} {
		t := tallies[p]
		fmt.Printf("%s as guesser: esp=%d honest=%d correct-honest=%d | as flipper: accusations=%d caught=%d false=%d\n",
			bold(p+" →"), t.ESPUses, t.HonestGuesses, t.CorrectHonestGuesses,
			t.Accusations, t.CorrectAccusations, t.FalseAccusations)
	}

	elo := rating.NewElo(cfg.Elo.Start, cfg.Elo.K)
	dA, dB := elo.UpdateFromMatch(scores[p1], scores[p2], turns)
	fmt.Printf("%s %s:%.1f (%+.1f) | %s:%.1f (%+.1f)\n",
		mag("Elo (from equal start) →"), p1, elo.A, dA, p2, elo.B, dB)

	for _, p := range []string{p1, p2} {
		t := tallies[p]
		if t.GuessTurns == 0 {
			continue
		}
		correct := t.CorrectHonestGuesses + t.ESPUses // ESP guesses are correct by construction
		lo, hi := rating.WilsonCI95(correct, 0, t.GuessTurns)
		fmt.Printf("%s %s correct-guess rate over %d turns: 95%% CI=[%.3f, %.3f]\n",
			mag("CI (Wilson) →"), p, t.GuessTurns, lo, hi)
	}

	fmt.Println(dim(strings.Repeat("—", 36)))
}
