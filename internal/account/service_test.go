package account_test

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTokens struct{}

func (fakeTokens) Issue(userID string) (string, time.Time, error) {
	return "token-for-" + userID, time.Unix(1900000000, 0), nil
}

type recordingMailer struct {
	mu    sync.Mutex
	links []string
	err   error
}

func (m *recordingMailer) SendPasswordReset(ctx context.Context, user account.User, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append(m.links, link)
	return m.err
}

func setupService(t *testing.T) (*account.Service, *recordingMailer, *metrics.Mock) {
	t.Helper()
	mailer := &recordingMailer{}
	metr := metrics.NewMock()
	svc := account.NewService(setupTestStore(t), account.NewBcryptHasher(bcrypt.MinCost), fakeTokens{}, mailer, metr, "https://padel.test/")
	return svc, mailer, metr
}

func register(t *testing.T, svc *account.Service, name, email string) *account.User {
	t.Helper()
	user, err := svc.Register(context.Background(), account.Registration{
		Name: name, Email: email, Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	return user
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _, metr := setupService(t)

	t.Run("creates the user with trimmed fields", func(t *testing.T) {
		user, err := svc.Register(ctx, account.Registration{
			Name: "ana", Email: "  Ana@Example.com ", Password: "secret1", ConfirmPassword: "secret1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "ana", user.Name)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, 1, metr.Registrations())
	})

	t.Run("returns field errors for an invalid form", func(t *testing.T) {
		_, err := svc.Register(ctx, account.Registration{Name: "a b", Email: "x", Password: "1"})
		var fields account.FieldErrors
		require.True(t, errors.As(err, &fields))
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
		assert.Contains(t, fields, "confirmPassword")
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		_, err := svc.Register(ctx, account.Registration{Name: "ana", Email: "other@example.com", Password: "secret1", ConfirmPassword: "secret1"})
		assert.ErrorIs(t, err, account.ErrNameInUse)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		_, err := svc.Register(ctx, account.Registration{Name: "bea", Email: "ANA@example.com", Password: "secret1", ConfirmPassword: "secret1"})
		assert.ErrorIs(t, err, account.ErrEmailInUse)
	})
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()
	svc, _, metr := setupService(t)
	user := register(t, svc, "ana", "ana@example.com")

	session, err := svc.SignIn(ctx, account.Credentials{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+user.ID, session.Token)
	assert.Equal(t, user.ID, session.User.ID)
	assert.Equal(t, 1, metr.SignIns())

	_, err = svc.SignIn(ctx, account.Credentials{Email: "ana@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, account.ErrWrongPassword)

	_, err = svc.SignIn(ctx, account.Credentials{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, account.ErrUserNotFound)
	assert.Equal(t, 2, metr.SignInFailures())

	_, err = svc.SignIn(ctx, account.Credentials{Email: "nope", Password: "1"})
	var fields account.FieldErrors
	assert.True(t, errors.As(err, &fields))
}

func TestService_PasswordReset(t *testing.T) {
	ctx := context.Background()
	svc, mailer, _ := setupService(t)
	register(t, svc, "ana", "ana@example.com")

	assert.ErrorIs(t, svc.RequestPasswordReset(ctx, "not-an-email"), account.ErrInvalidEmail)
	assert.ErrorIs(t, svc.RequestPasswordReset(ctx, "ghost@example.com"), account.ErrUserNotFound)

	require.NoError(t, svc.RequestPasswordReset(ctx, "ana@example.com"))
	require.Len(t, mailer.links, 1)
	link, err := url.Parse(mailer.links[0])
	require.NoError(t, err)
	assert.Equal(t, "padel.test", link.Host)
	assert.Equal(t, "/reset-password", link.Path)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)

	assert.ErrorIs(t, svc.ResetPassword(ctx, token, "123"), account.ErrWeakPassword)
	require.NoError(t, svc.ResetPassword(ctx, token, "brand-new"))
	assert.ErrorIs(t, svc.ResetPassword(ctx, token, "brand-new-2"), account.ErrInvalidResetToken)

	_, err = svc.SignIn(ctx, account.Credentials{Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, account.ErrWrongPassword)
	_, err = svc.SignIn(ctx, account.Credentials{Email: "ana@example.com", Password: "brand-new"})
	assert.NoError(t, err)
}

func TestService_Directory(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)
	bea := register(t, svc, "bea", "bea@example.com")
	register(t, svc, "ana", "ana@example.com")

	users, err := svc.Directory(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ana", users[0].Name)

	me, err := svc.CurrentUser(ctx, bea.ID)
	require.NoError(t, err)
	assert.Equal(t, "bea", me.Name)
}
