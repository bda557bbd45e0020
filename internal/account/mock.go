package account

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MockStore is a mock implementation of the Store interface for testing.
// Without a spy set, lookups are answered from Users.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	Users map[string]User

	// Spies for method calls
	CreateUserFunc          func(ctx context.Context, user *User, passwordHash string) error
	GetUserFunc             func(ctx context.Context, id string) (*User, error)
	GetUsersFunc            func(ctx context.Context, ids []string) ([]User, error)
	GetUserByEmailFunc      func(ctx context.Context, email string) (*User, string, error)
	NameExistsFunc          func(ctx context.Context, name string) (bool, error)
	ListNamedUsersFunc      func(ctx context.Context) ([]User, error)
	CreatePasswordResetFunc func(ctx context.Context, token, userID string, expiresAt time.Time) error
	ResetPasswordFunc       func(ctx context.Context, token, passwordHash string, now time.Time) (string, error)

	// Call records
	CreateUserCalls []User
	GetUsersCalls   [][]string
}

// NewMock creates a new mock instance seeded with users.
func NewMock(users ...User) *MockStore {
	m := &MockStore{Users: make(map[string]User)}
	for _, u := range users {
		m.Users[u.ID] = u
	}
	return m
}

func (m *MockStore) CreateUser(ctx context.Context, user *User, passwordHash string) error {
	m.mu.Lock()
	m.CreateUserCalls = append(m.CreateUserCalls, *user)
	m.mu.Unlock()
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user, passwordHash)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users[user.ID] = *user
	return nil
}

func (m *MockStore) GetUser(ctx context.Context, id string) (*User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.Users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (m *MockStore) GetUsers(ctx context.Context, ids []string) ([]User, error) {
	m.mu.Lock()
	m.GetUsersCalls = append(m.GetUsersCalls, ids)
	m.mu.Unlock()
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(ctx, ids)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	users := []User{}
	for _, id := range ids {
		if u, ok := m.Users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (*User, string, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == email {
			return &u, "", nil
		}
	}
	return nil, "", ErrUserNotFound
}

func (m *MockStore) NameExists(ctx context.Context, name string) (bool, error) {
	if m.NameExistsFunc != nil {
		return m.NameExistsFunc(ctx, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockStore) ListNamedUsers(ctx context.Context) ([]User, error) {
	if m.ListNamedUsersFunc != nil {
		return m.ListNamedUsersFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	users := []User{}
	for _, u := range m.Users {
		if u.Name != "" {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (m *MockStore) CreatePasswordReset(ctx context.Context, token, userID string, expiresAt time.Time) error {
	if m.CreatePasswordResetFunc != nil {
		return m.CreatePasswordResetFunc(ctx, token, userID, expiresAt)
	}
	return nil
}

func (m *MockStore) ResetPassword(ctx context.Context, token, passwordHash string, now time.Time) (string, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, passwordHash, now)
	}
	return "", ErrInvalidResetToken
}
