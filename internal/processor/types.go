package processor

import (
	"errors"
	"time"

	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/playtomic"
	"github.com/mauv0809/padel-ranking/internal/pubsub"
	"github.com/mauv0809/padel-ranking/internal/results"
)

var ErrPlaytomicDisabled = errors.New("playtomic leaderboard is not configured")

const (
	defaultPlaytomicDays = 30
	maxPlaytomicDays     = 365
	playtomicFetchLimit  = 8
)

// Processor handles the business logic around recorded matches and leaderboards.
type Processor struct {
	users     UserStore
	results   results.Store
	pubsub    pubsub.PubSubClient
	notifier  Notifier
	metrics   metrics.Metrics
	playtomic playtomic.PlaytomicClient
	tenantID  string
	now       func() time.Time
}
