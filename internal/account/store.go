package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewStore creates a new account Store backed by db.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// CreateUser inserts the user after checking that neither the name nor the
// email is taken. Both checks run in the same transaction as the insert.
func (s *store) CreateUser(ctx context.Context, user *User, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", user.Email).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return ErrEmailInUse
	}
	if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE name = ?)", user.Name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check name: %w", err)
	}
	if exists {
		return ErrNameInUse
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, passwordHash, user.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user: %w", err)
	}
	log.Info("Created user", "userID", user.ID, "name", user.Name)
	return nil
}

// GetUser retrieves a user by ID.
func (s *store) GetUser(ctx context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT id, name, email, created_at FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUsers retrieves the users with the given IDs. Unknown IDs are skipped.
func (s *store) GetUsers(ctx context.Context, ids []string) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf("SELECT id, name, email, created_at FROM users WHERE id IN (%s)", placeholders)
	rows, err := s.db.QueryContext(ctx, query, toAnySlice(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("Failed to scan user row", "error", err)
			continue
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// GetUserByEmail returns the user and the stored password hash.
func (s *store) GetUserByEmail(ctx context.Context, email string) (*User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		user      User
		hash      string
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, created_at, password_hash FROM users WHERE email = ?", email,
	).Scan(&user.ID, &user.Name, &user.Email, &createdAt, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	user.CreatedAt = time.Unix(createdAt, 0)
	return &user, hash, nil
}

func (s *store) NameExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check name: %w", err)
	}
	return exists, nil
}

// ListNamedUsers returns every user with a non-empty name, ordered by name.
func (s *store) ListNamedUsers(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, email, created_at FROM users WHERE name != '' ORDER BY name")
	if err != nil {
		log.Error("Failed to query users", "error", err)
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("Failed to scan user row", "error", err)
			continue
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (s *store) CreatePasswordReset(ctx context.Context, token, userID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO password_resets (token, user_id, expires_at) VALUES (?, ?, ?)",
		token, userID, expiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store password reset: %w", err)
	}
	return nil
}

// ResetPassword spends the reset token and stores the new password hash in
// one transaction, returning the user ID. A token can only be spent once and
// only before it expires; if the hash cannot be stored the token stays valid.
func (s *store) ResetPassword(ctx context.Context, token, passwordHash string, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		userID    string
		expiresAt int64
		usedAt    sql.NullInt64
	)
	err = tx.QueryRowContext(ctx,
		"SELECT user_id, expires_at, used_at FROM password_resets WHERE token = ?", token,
	).Scan(&userID, &expiresAt, &usedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidResetToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to load password reset: %w", err)
	}
	if usedAt.Valid || now.Unix() > expiresAt {
		return "", ErrInvalidResetToken
	}

	if _, err := tx.ExecContext(ctx, "UPDATE password_resets SET used_at = ? WHERE token = ?", now.Unix(), token); err != nil {
		return "", fmt.Errorf("failed to consume password reset: %w", err)
	}
	res, err := tx.ExecContext(ctx, "UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, userID)
	if err != nil {
		return "", fmt.Errorf("failed to update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", ErrUserNotFound
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit password reset: %w", err)
	}
	return userID, nil
}

// scanUser is a helper function to scan a single user row.
func scanUser(scanner interface{ Scan(...any) error }) (*User, error) {
	var (
		user      User
		createdAt int64
	)
	if err := scanner.Scan(&user.ID, &user.Name, &user.Email, &createdAt); err != nil {
		return nil, err
	}
	user.CreatedAt = time.Unix(createdAt, 0)
	return &user, nil
}

func toAnySlice[T any](s []T) []any {
	a := make([]any, len(s))
	for i, v := range s {
		a[i] = v
	}
	return a
}
