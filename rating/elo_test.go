package rating

import (
	"math"
	"testing"
)

func TestEloEqualRatingsDrawIsNeutral(t *testing.T) {
	e := NewElo(1500, 24)
	dA, dB := e.UpdateFromMatch(5, 5, 10)
	if math.Abs(dA) > 1e-9 || math.Abs(dB) > 1e-9 {
		t.Fatalf("draw between equals moved ratings: dA=%f dB=%f", dA, dB)
	}
}

func TestEloZeroSum(t *testing.T) {
	e := NewElo(1500, 24)
	before := e.A + e.B
	dA, dB := e.UpdateFromMatch(12, 3, 6)
	if math.Abs(dA+dB) > 1e-9 {
		t.Fatalf("deltas not zero-sum: dA=%f dB=%f", dA, dB)
	}
	if math.Abs(e.A+e.B-before) > 1e-9 {
		t.Fatalf("total rating drifted: before=%f after=%f", before, e.A+e.B)
	}
}

func TestEloWinnerGains(t *testing.T) {
	e := NewElo(1500, 24)
	dA, dB := e.UpdateFromMatch(11, 1, 2)
	if dA <= 0 {
		t.Fatalf("winner delta not positive: %f", dA)
	}
	if dB >= 0 {
		t.Fatalf("loser delta not negative: %f", dB)
	}
}

func TestEloMarginScalesWithTurns(t *testing.T) {
	// The same point margin spread over more turns is a weaker signal.
	short := NewElo(1500, 24)
	long := NewElo(1500, 24)
	dShort, _ := short.UpdateFromMatch(10, 0, 2)
	dLong, _ := long.UpdateFromMatch(10, 0, 20)
	if dShort <= dLong {
		t.Fatalf("short-match delta %f should exceed long-match delta %f", dShort, dLong)
	}
}

func TestEloFavoriteGainsLessFromWin(t *testing.T) {
	e := Elo{A: 1700, B: 1500, K: 24}
	even := NewElo(1500, 24)
	dFav, _ := e.UpdateFromMatch(10, 0, 4)
	dEven, _ := even.UpdateFromMatch(10, 0, 4)
	if dFav >= dEven {
		t.Fatalf("favorite gained %f, at least the even-match gain %f", dFav, dEven)
	}
}

func TestWilsonBounds(t *testing.T) {
	cases := []struct {
		wins, ties, total int
	}{
		{0, 0, 10},
		{10, 0, 10},
		{5, 2, 10},
		{1, 0, 1},
	}
	for _, c := range cases {
		low, hi := WilsonCI95(c.wins, c.ties, c.total)
		if low < 0 || hi > 1 || low > hi {
			t.Fatalf("wins=%d ties=%d total=%d: bad interval [%f, %f]", c.wins, c.ties, c.total, low, hi)
		}
	}
}

func TestWilsonEmptySampleIsVacuous(t *testing.T) {
	low, hi := WilsonCI95(0, 0, 0)
	if low != 0 || hi != 1 {
		t.Fatalf("empty sample: got [%f, %f], want [0, 1]", low, hi)
	}
}

func TestWilsonNarrowsWithSampleSize(t *testing.T) {
	low10, hi10 := WilsonCI95(5, 0, 10)
	low1000, hi1000 := WilsonCI95(500, 0, 1000)
	if (hi1000 - low1000) >= (hi10 - low10) {
		t.Fatalf("larger sample did not narrow the interval: %f vs %f", hi1000-low1000, hi10-low10)
	}
}
