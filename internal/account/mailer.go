package account

import (
	"context"

	"github.com/charmbracelet/log"
)

// LogMailer writes reset links to the log instead of sending email. It is the
// delivery used when no mail provider is configured.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(ctx context.Context, user User, link string) error {
	log.Info("Password reset requested", "userID", user.ID, "email", user.Email, "link", link)
	return nil
}
