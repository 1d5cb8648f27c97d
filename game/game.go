package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Game is what the match runner drives. Each game type owns its own turn
// protocol; the runner only sequences rounds and reads state.
type Game interface {
	PlayTurn(ctx context.Context) error
	PlayRound(ctx context.Context) error
	PlayMatch(ctx context.Context) error
	State() string
	Scores() map[string]int
}

// Match holds the bookkeeping every game shares: the two players, the round
// budget, counters, and the cumulative scores. The score map is owned here
// exclusively; callers get copies.
type Match struct {
	ID      uuid.UUID
	Player1 string
	Player2 string
	Rounds  int
	Round   int
	Turn    int

	scores map[string]int
}

func NewMatch(player1, player2 string, rounds int) Match {
	return Match{
		ID:      uuid.New(),
		Player1: player1,
		Player2: player2,
		Rounds:  rounds,
		scores:  map[string]int{player1: 0, player2: 0},
	}
}

// Scores returns a copy of the cumulative score mapping.
func (m *Match) Scores() map[string]int {
	out := make(map[string]int, len(m.scores))
	for p, s := range m.scores {
		out[p] = s
	}
	return out
}

func (m *Match) applyDeltas(deltas map[string]int) {
	for p, d := range deltas {
		m.scores[p] += d
	}
}

// State renders the current round and scores for the final report.
func (m *Match) State() string {
	return fmt.Sprintf("Round: %d, Scores: %s=%d %s=%d",
		m.Round, m.Player1, m.scores[m.Player1], m.Player2, m.scores[m.Player2])
}
