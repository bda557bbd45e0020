package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padel-ranking/internal/metrics"
)

const resetTokenTTL = time.Hour

// Service implements registration, sign-in and password reset on top of a Store.
type Service struct {
	store   Store
	hasher  Hasher
	tokens  TokenIssuer
	mailer  Mailer
	metrics metrics.Metrics
	baseURL string
	now     func() time.Time
}

// NewService creates a new account Service.
func NewService(store Store, hasher Hasher, tokens TokenIssuer, mailer Mailer, metrics metrics.Metrics, baseURL string) *Service {
	return &Service{
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
		mailer:  mailer,
		metrics: metrics,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
}

// Register validates the form, checks the name is free and creates the user.
func (s *Service) Register(ctx context.Context, reg Registration) (*User, error) {
	if err := ValidateRegistration(reg).ErrOrNil(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(reg.Name)
	taken, err := s.store.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameInUse
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     normalizeEmail(reg.Email),
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.store.CreateUser(ctx, user, hash); err != nil {
		return nil, err
	}
	s.metrics.IncRegistrations()
	return user, nil
}

// SignIn verifies the credentials and issues a session token.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	if err := ValidateCredentials(creds).ErrOrNil(); err != nil {
		return nil, err
	}

	user, hash, err := s.store.GetUserByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.metrics.IncSignInFailures()
		}
		return nil, err
	}
	if err := s.hasher.Compare(hash, creds.Password); err != nil {
		s.metrics.IncSignInFailures()
		log.Info("Rejected sign-in", "userID", user.ID, "error", err)
		return nil, err
	}

	token, expires, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	s.metrics.IncSignIns()
	return &Session{Token: token, ExpiresAt: expires, User: *user}, nil
}

// RequestPasswordReset stores a single-use reset token and hands the link to the mailer.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	user, _, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.store.CreatePasswordReset(ctx, token, user.ID, s.now().Add(resetTokenTTL)); err != nil {
		return err
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	if err := s.mailer.SendPasswordReset(ctx, *user, link); err != nil {
		return fmt.Errorf("failed to send password reset: %w", err)
	}
	return nil
}

// ResetPassword consumes token and replaces the user's password.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	userID, err := s.store.ResetPassword(ctx, token, hash, s.now())
	if err != nil {
		return err
	}
	log.Info("Password reset", "userID", userID)
	return nil
}

// CurrentUser returns the signed-in user.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*User, error) {
	return s.store.GetUser(ctx, userID)
}

// Directory lists the users that can be picked as opponents.
func (s *Service) Directory(ctx context.Context) ([]User, error) {
	return s.store.ListNamedUsers(ctx)
}
