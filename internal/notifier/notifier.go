package notifier

import (
	"errors"
	"time"

	"github.com/mauv0809/padel-ranking/internal/ranking"
)

// ErrNotConfigured is returned when a notification is sent without a
// destination to send it to.
var ErrNotConfigured = errors.New("notifier is not configured")

// ResultNotification describes a freshly recorded match and the running
// head-to-head between the two players.
type ResultNotification struct {
	ResultID    string
	Player1Name string
	Player2Name string
	Score       ranking.MatchResult
	PlayedAt    time.Time
	HeadToHead  ranking.Totals
	Matches     int
}

// Notifier defines a high-level interface for sending notifications about business events.
type Notifier interface {
	// For recorded matches
	SendResultNotification(n ResultNotification, dryRun bool) error
	// For scheduled or requested leaderboard posts
	SendLeaderboard(standings []ranking.Standing, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(standings []ranking.Standing) (any, error)
	FormatHeadToHeadResponse(player1, player2 string, totals ranking.Totals) (any, error)
}
