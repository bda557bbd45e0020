package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const selectColumns = "SELECT id, player1_id, player2_id, score_a, score_b, played_at, COALESCE(recorded_by, '') FROM match_results"

// NewStore creates a new results Store backed by db.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// Record validates and inserts a result. Both players must be registered users.
func (s *store) Record(ctx context.Context, r Result) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var known int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE id IN (?, ?)", r.Player1ID, r.Player2ID).Scan(&known)
	if err != nil {
		return fmt.Errorf("failed to check players: %w", err)
	}
	if known != 2 {
		return ErrUnknownPlayer
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO match_results (id, player1_id, player2_id, score_a, score_b, played_at, recorded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?)`,
		r.ID, r.Player1ID, r.Player2ID, r.ScoreA, r.ScoreB, r.PlayedAt.Unix(), r.RecordedBy, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert match result: %w", err)
	}
	log.Debug("Stored match result", "resultID", r.ID, "player1", r.Player1ID, "player2", r.Player2ID)
	return nil
}

func (s *store) Get(ctx context.Context, id string) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := scanResult(s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}
	return r, nil
}

// ListBetween returns every result between a and b, oldest first, oriented so
// that a is always player 1.
func (s *store) ListBetween(ctx context.Context, a, b string) ([]Result, error) {
	rs, err := s.list(ctx,
		selectColumns+" WHERE (player1_id = ? AND player2_id = ?) OR (player1_id = ? AND player2_id = ?) ORDER BY played_at, created_at",
		a, b, b, a,
	)
	if err != nil {
		return nil, err
	}
	for i := range rs {
		if rs[i].Player1ID != a {
			rs[i] = rs[i].Swapped()
		}
	}
	return rs, nil
}

// ListAll returns every stored result, oldest first.
func (s *store) ListAll(ctx context.Context) ([]Result, error) {
	return s.list(ctx, selectColumns+" ORDER BY played_at, created_at")
}

func (s *store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM match_results WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete match result: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrResultNotFound
	}
	return nil
}

func (s *store) list(ctx context.Context, query string, args ...any) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match results: %w", err)
	}
	defer rows.Close()

	rs := []Result{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			log.Error("Failed to scan match result row", "error", err)
			continue
		}
		rs = append(rs, *r)
	}
	return rs, rows.Err()
}

func scanResult(scanner interface{ Scan(...any) error }) (*Result, error) {
	var (
		r        Result
		playedAt int64
	)
	if err := scanner.Scan(&r.ID, &r.Player1ID, &r.Player2ID, &r.ScoreA, &r.ScoreB, &playedAt, &r.RecordedBy); err != nil {
		return nil, err
	}
	r.PlayedAt = time.Unix(playedAt, 0).UTC()
	return &r, nil
}
