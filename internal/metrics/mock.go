package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	counters            map[string]int
	processingDurations []float64
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		counters:            make(map[string]int),
		processingDurations: make([]float64, 0),
	}
}

func (m *Mock) inc(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

func (m *Mock) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func (m *Mock) IncRankingsCalculated() { m.inc("rankings_calculated") }
func (m *Mock) IncRegistrations() { m.inc("registrations") }
func (m *Mock) IncSignIns() { m.inc("sign_ins") }
func (m *Mock) IncSignInFailures() { m.inc("sign_in_failures") }
func (m *Mock) IncMatchesRecorded() { m.inc("matches_recorded") }
func (m *Mock) IncPlaytomicFetches() { m.inc("playtomic_fetches") }
func (m *Mock) IncSlackNotifSent() { m.inc("slack_sent") }
func (m *Mock) IncSlackNotifFailed() { m.inc("slack_failed") }

func (m *Mock) ObserveProcessingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processingDurations = append(m.processingDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

func (m *Mock) RankingsCalculated() int { return m.count("rankings_calculated") }
func (m *Mock) Registrations() int { return m.count("registrations") }
func (m *Mock) SignIns() int { return m.count("sign_ins") }
func (m *Mock) SignInFailures() int { return m.count("sign_in_failures") }
func (m *Mock) MatchesRecorded() int { return m.count("matches_recorded") }
func (m *Mock) PlaytomicFetches() int { return m.count("playtomic_fetches") }
func (m *Mock) SlackNotifSent() int { return m.count("slack_sent") }
func (m *Mock) SlackNotifFailed() int { return m.count("slack_failed") }

// ProcessingDurations returns a copy of the observed durations.
func (m *Mock) ProcessingDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.processingDurations...)
}
