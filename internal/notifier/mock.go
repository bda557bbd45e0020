package notifier

import (
	"sync"

	"github.com/mauv0809/padel-ranking/internal/ranking"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendResultNotificationFunc    func(n ResultNotification, dryRun bool) error
	SendLeaderboardFunc           func(standings []ranking.Standing, dryRun bool) error
	FormatLeaderboardResponseFunc func(standings []ranking.Standing) (any, error)
	FormatHeadToHeadResponseFunc  func(player1, player2 string, totals ranking.Totals) (any, error)

	// Call records
	SendResultNotificationCalls []struct {
		Notification ResultNotification
		DryRun       bool
	}
	SendLeaderboardCalls  [][]ranking.Standing
	FormatHeadToHeadCalls []struct {
		Player1 string
		Player2 string
		Totals  ranking.Totals
	}
	LastLeaderboardResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendLeaderboardCalls = nil
	m.FormatHeadToHeadCalls = nil
	m.LastLeaderboardResponse = nil
}

func (m *Mock) SendResultNotification(n ResultNotification, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct {
		Notification ResultNotification
		DryRun       bool
	}{n, dryRun})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(n, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(standings []ranking.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, standings)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(standings, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(standings []ranking.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err := m.FormatLeaderboardResponseFunc(standings)
		m.LastLeaderboardResponse = resp
		return resp, err
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatHeadToHeadResponse(player1, player2 string, totals ranking.Totals) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatHeadToHeadCalls = append(m.FormatHeadToHeadCalls, struct {
		Player1 string
		Player2 string
		Totals  ranking.Totals
	}{player1, player2, totals})
	if m.FormatHeadToHeadResponseFunc != nil {
		return m.FormatHeadToHeadResponseFunc(player1, player2, totals)
	}
	return "formatted_head_to_head", nil
}
