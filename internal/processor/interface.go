package processor

import (
	"context"

	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/notifier"
)

// UserStore defines the user lookups required by the processor.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*account.User, error)
	GetUsers(ctx context.Context, ids []string) ([]account.User, error)
}

// Notifier defines the notification operations required by the processor.
// This is an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
