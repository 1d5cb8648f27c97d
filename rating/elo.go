package rating

import "math"

// Elo holds ratings for the two players of a match.
type Elo struct {
	A, B float64 // ratings
	K    float64 // base K
}

func NewElo(start, k float64) Elo { return Elo{A: start, B: start, K: k} }

func (e Elo) expect() (ea, eb float64) {
	ea = 1.0 / (1.0 + math.Pow(10, (e.B-e.A)/400.0))
	return ea, 1.0 - ea
}

// UpdateFromMatch folds the final scores into the ratings and returns the
// applied deltas. The soft score comes from the point margin normalized per
// turn, so a narrow win over many turns moves less than a blowout.
func (e *Elo) UpdateFromMatch(pointsA, pointsB, turns int) (dA, dB float64) {
	ea, eb := e.expect()

	if turns < 1 {
		turns = 1
	}
	// lambdaPts is the per-turn margin at which the soft score saturates;
	// a single correct accusation (10) should not max it out on its own.
	const lambdaPts = 6.0
	margin := float64(pointsA - pointsB)
	sA := 0.5 + 0.5*math.Tanh(margin/(lambdaPts*float64(turns)))
	sB := 1.0 - sA

	dA = e.K * (sA - ea)
	dB = e.K * (sB - eb)

	e.A += dA
	e.B += dB
	return dA, dB
}
