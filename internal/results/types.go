package results

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/padel-ranking/internal/ranking"
)

var (
	ErrSamePlayer     = errors.New("a player cannot play against themselves")
	ErrNegativeScore  = errors.New("scores must not be negative")
	ErrMissingPlayer  = errors.New("both players are required")
	ErrUnknownPlayer  = errors.New("player does not exist")
	ErrResultNotFound = errors.New("match result not found")
)

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Result is a recorded singles match between two users.
type Result struct {
	ID         string    `json:"id" msgpack:"id"`
	Player1ID  string    `json:"player1Id" msgpack:"player1_id"`
	Player2ID  string    `json:"player2Id" msgpack:"player2_id"`
	ScoreA     int       `json:"scoreA" msgpack:"score_a"`
	ScoreB     int       `json:"scoreB" msgpack:"score_b"`
	PlayedAt   time.Time `json:"playedAt" msgpack:"played_at"`
	RecordedBy string    `json:"recordedBy,omitempty" msgpack:"recorded_by"`
}

// MatchResult returns the score as seen by the ranking engine.
func (r Result) MatchResult() ranking.MatchResult {
	return ranking.MatchResult{ScoreA: r.ScoreA, ScoreB: r.ScoreB}
}

// Fixture returns the result as a singles fixture.
func (r Result) Fixture() ranking.Fixture {
	return ranking.Fixture{
		SideA:  []string{r.Player1ID},
		SideB:  []string{r.Player2ID},
		Result: r.MatchResult(),
	}
}

// Swapped returns the same result seen from player 2's side.
func (r Result) Swapped() Result {
	r.Player1ID, r.Player2ID = r.Player2ID, r.Player1ID
	r.ScoreA, r.ScoreB = r.ScoreB, r.ScoreA
	return r
}

// Validate checks the result before it is stored. Player existence is checked
// by the store.
func (r Result) Validate() error {
	switch {
	case r.Player1ID == "" || r.Player2ID == "":
		return ErrMissingPlayer
	case r.Player1ID == r.Player2ID:
		return ErrSamePlayer
	case r.ScoreA < 0 || r.ScoreB < 0:
		return ErrNegativeScore
	}
	return nil
}

// MatchResults converts stored results to ranking input.
func MatchResults(rs []Result) []ranking.MatchResult {
	out := make([]ranking.MatchResult, len(rs))
	for i, r := range rs {
		out[i] = r.MatchResult()
	}
	return out
}
