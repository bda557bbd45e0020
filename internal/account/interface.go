package account

import (
	"context"
	"time"
)

// Store defines the persistence operations for accounts and the user directory.
type Store interface {
	CreateUser(ctx context.Context, user *User, passwordHash string) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUsers(ctx context.Context, ids []string) ([]User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, string, error)
	NameExists(ctx context.Context, name string) (bool, error)
	ListNamedUsers(ctx context.Context) ([]User, error)
	CreatePasswordReset(ctx context.Context, token, userID string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, token, passwordHash string, now time.Time) (string, error)
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// Mailer delivers password reset links.
type Mailer interface {
	SendPasswordReset(ctx context.Context, user User, link string) error
}
