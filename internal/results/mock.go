package results

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of Store for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	RecordFunc      func(ctx context.Context, result Result) error
	GetFunc         func(ctx context.Context, id string) (*Result, error)
	ListBetweenFunc func(ctx context.Context, a, b string) ([]Result, error)
	ListAllFunc     func(ctx context.Context) ([]Result, error)
	DeleteFunc      func(ctx context.Context, id string) error

	RecordCalls      []Result
	ListBetweenCalls []struct {
		A string
		B string
	}
	DeleteCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Record(ctx context.Context, result Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordCalls = append(m.RecordCalls, result)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, result)
	}
	return result.Validate()
}

func (m *MockStore) Get(ctx context.Context, id string) (*Result, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, ErrResultNotFound
}

func (m *MockStore) ListBetween(ctx context.Context, a, b string) ([]Result, error) {
	m.mu.Lock()
	m.ListBetweenCalls = append(m.ListBetweenCalls, struct {
		A string
		B string
	}{a, b})
	m.mu.Unlock()
	if m.ListBetweenFunc != nil {
		return m.ListBetweenFunc(ctx, a, b)
	}
	return []Result{}, nil
}

func (m *MockStore) ListAll(ctx context.Context) ([]Result, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []Result{}, nil
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
