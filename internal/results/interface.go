package results

import "context"

// Store persists recorded match results.
type Store interface {
	Record(ctx context.Context, result Result) error
	Get(ctx context.Context, id string) (*Result, error)
	ListBetween(ctx context.Context, a, b string) ([]Result, error)
	ListAll(ctx context.Context) ([]Result, error)
	Delete(ctx context.Context, id string) error
}
