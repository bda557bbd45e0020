package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/pubsub"
	"github.com/mauv0809/padel-ranking/internal/ranking"
	"github.com/mauv0809/padel-ranking/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users   *account.MockStore
	results *results.MockStore
	notif   *notifier.Mock
	metr    *metrics.Mock
	pubsub  *pubsub.MockPubSubClient
}

func newFixture() fixture {
	return fixture{
		users: account.NewMock(
			account.User{ID: "u1", Name: "ana"},
			account.User{ID: "u2", Name: "bea"},
			account.User{ID: "u3", Name: "cris"},
		),
		results: results.NewMock(),
		notif:   notifier.NewMock(),
		metr:    metrics.NewMock(),
		pubsub:  pubsub.NewMock("TEST"),
	}
}

func (f fixture) processor(withPubSub bool) *Processor {
	var ps pubsub.PubSubClient
	if withPubSub {
		ps = f.pubsub
	}
	return New(f.users, f.results, f.notif, f.metr, ps, nil, "")
}

func TestProcessor_RecordMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and publishes when pubsub is configured", func(t *testing.T) {
		f := newFixture()
		p := f.processor(true)

		r, err := p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "u2", ScoreA: 6, ScoreB: 2}, false)
		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.PlayedAt.IsZero())

		require.Len(t, f.results.RecordCalls, 1)
		assert.Equal(t, r.ID, f.results.RecordCalls[0].ID)
		require.Len(t, f.pubsub.SendMessageCalls, 1)
		assert.Equal(t, string(pubsub.EventMatchRecorded), f.pubsub.SendMessageCalls[0].Topic)
		assert.Empty(t, f.notif.SendResultNotificationCalls, "the event handler notifies, not the request")
		assert.Equal(t, 1, f.metr.MatchesRecorded())
	})

	t.Run("notifies inline without pubsub", func(t *testing.T) {
		f := newFixture()
		p := f.processor(false)
		f.results.ListBetweenFunc = func(ctx context.Context, a, b string) ([]results.Result, error) {
			return []results.Result{
				{ID: "old", Player1ID: a, Player2ID: b, ScoreA: 0, ScoreB: 1},
				f.results.RecordCalls[0],
			}, nil
		}

		r, err := p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "u2", ScoreA: 3, ScoreB: 1}, false)
		require.NoError(t, err)

		require.Len(t, f.notif.SendResultNotificationCalls, 1)
		n := f.notif.SendResultNotificationCalls[0].Notification
		assert.Equal(t, r.ID, n.ResultID)
		assert.Equal(t, "ana", n.Player1Name)
		assert.Equal(t, "bea", n.Player2Name)
		assert.Equal(t, ranking.Totals{Player1: 3, Player2: 3}, n.HeadToHead)
		assert.Equal(t, 2, n.Matches)
		assert.False(t, f.notif.SendResultNotificationCalls[0].DryRun)
	})

	t.Run("falls back to inline notification when publishing fails", func(t *testing.T) {
		f := newFixture()
		f.pubsub.SendMessageFunc = func(topic pubsub.EventType, data any) error {
			return errors.New("topic not found")
		}
		p := f.processor(true)

		_, err := p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "u2", ScoreA: 1, ScoreB: 1}, false)
		require.NoError(t, err)
		assert.Len(t, f.notif.SendResultNotificationCalls, 1)
	})

	t.Run("dry run stores nothing but previews the notification", func(t *testing.T) {
		f := newFixture()
		p := f.processor(true)

		_, err := p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "u2", ScoreA: 2, ScoreB: 5}, true)
		require.NoError(t, err)
		assert.Empty(t, f.results.RecordCalls)
		assert.Empty(t, f.pubsub.SendMessageCalls)
		require.Len(t, f.notif.SendResultNotificationCalls, 1)
		call := f.notif.SendResultNotificationCalls[0]
		assert.True(t, call.DryRun)
		assert.Equal(t, ranking.Totals{Player1: 0, Player2: 3}, call.Notification.HeadToHead)
		assert.Equal(t, 1, call.Notification.Matches)
		assert.Equal(t, 0, f.metr.MatchesRecorded())
	})

	t.Run("notification failures do not fail the request", func(t *testing.T) {
		f := newFixture()
		f.notif.SendResultNotificationFunc = func(n notifier.ResultNotification, dryRun bool) error {
			return notifier.ErrNotConfigured
		}
		p := f.processor(false)

		_, err := p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "u2", ScoreA: 2, ScoreB: 0}, false)
		assert.NoError(t, err)
	})

	t.Run("invalid results are rejected before storing", func(t *testing.T) {
		f := newFixture()
		p := f.processor(true)

		_, err := p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "u1"}, false)
		assert.ErrorIs(t, err, results.ErrSamePlayer)
		_, err = p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "u2", ScoreA: -2}, false)
		assert.ErrorIs(t, err, results.ErrNegativeScore)
		assert.Empty(t, f.results.RecordCalls)
	})

	t.Run("store errors are returned", func(t *testing.T) {
		f := newFixture()
		f.results.RecordFunc = func(ctx context.Context, r results.Result) error {
			return results.ErrUnknownPlayer
		}
		p := f.processor(true)

		_, err := p.RecordMatch(ctx, results.Result{Player1ID: "u1", Player2ID: "ghost", ScoreA: 1}, false)
		assert.ErrorIs(t, err, results.ErrUnknownPlayer)
		assert.Empty(t, f.pubsub.SendMessageCalls)
	})
}

func TestProcessor_NotifyResult_UnknownNames(t *testing.T) {
	f := newFixture()
	p := f.processor(false)

	err := p.NotifyResult(context.Background(), results.Result{ID: "r1", Player1ID: "u1", Player2ID: "gone", ScoreA: 1}, false)
	require.NoError(t, err)
	require.Len(t, f.notif.SendResultNotificationCalls, 1)
	n := f.notif.SendResultNotificationCalls[0].Notification
	assert.Equal(t, "ana", n.Player1Name)
	assert.Equal(t, "gone", n.Player2Name)
}

func TestProcessor_NotifyRecorded(t *testing.T) {
	ctx := context.Background()
	stored := results.Result{ID: "r1", Player1ID: "u1", Player2ID: "u2", ScoreA: 6, ScoreB: 0}

	t.Run("announces the stored result", func(t *testing.T) {
		f := newFixture()
		f.results.GetFunc = func(ctx context.Context, id string) (*results.Result, error) {
			if id == stored.ID {
				r := stored
				return &r, nil
			}
			return nil, results.ErrResultNotFound
		}
		require.NoError(t, f.processor(false).NotifyRecorded(ctx, "r1", false))
		require.Len(t, f.notif.SendResultNotificationCalls, 1)
		assert.Equal(t, ranking.MatchResult{ScoreA: 6, ScoreB: 0}, f.notif.SendResultNotificationCalls[0].Notification.Score)
	})

	t.Run("rejects results that were never stored", func(t *testing.T) {
		f := newFixture()
		p := f.processor(false)
		assert.ErrorIs(t, p.NotifyRecorded(ctx, "forged", false), results.ErrResultNotFound)
		assert.ErrorIs(t, p.NotifyRecorded(ctx, "", false), results.ErrResultNotFound)
		assert.Empty(t, f.notif.SendResultNotificationCalls)
	})
}

func TestProcessor_HeadToHead(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.processor(false)
	f.results.ListBetweenFunc = func(ctx context.Context, a, b string) ([]results.Result, error) {
		return []results.Result{
			{ID: "r1", Player1ID: a, Player2ID: b, ScoreA: 3, ScoreB: 1},
			{ID: "r2", Player1ID: a, Player2ID: b, ScoreA: 0, ScoreB: 2},
			{ID: "r3", Player1ID: a, Player2ID: b, ScoreA: 5, ScoreB: 5},
		}, nil
	}

	totals, history, err := p.HeadToHead(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, ranking.Totals{Player1: 4, Player2: 4}, totals)
	assert.Len(t, history, 3)
	assert.Equal(t, 1, f.metr.RankingsCalculated())

	_, _, err = p.HeadToHead(ctx, "u1", "u1")
	assert.ErrorIs(t, err, results.ErrSamePlayer)

	_, _, err = p.HeadToHead(ctx, "u1", "ghost")
	assert.ErrorIs(t, err, account.ErrUserNotFound)
}

func TestProcessor_Leaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.processor(false)
	f.results.ListAllFunc = func(ctx context.Context) ([]results.Result, error) {
		return []results.Result{
			{ID: "r1", Player1ID: "u1", Player2ID: "u2", ScoreA: 6, ScoreB: 4},
			{ID: "r2", Player1ID: "u2", Player2ID: "u3", ScoreA: 2, ScoreB: 2},
			{ID: "r3", Player1ID: "u3", Player2ID: "u1", ScoreA: 6, ScoreB: 1},
		}, nil
	}

	standings, err := p.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, ranking.Standing{ID: "u3", Name: "cris", Points: 4, Played: 2, Won: 1, Drawn: 1}, standings[0])
	assert.Equal(t, "ana", standings[1].Name)
	assert.Equal(t, 3, standings[1].Points)
	assert.Equal(t, "bea", standings[2].Name)
	assert.Equal(t, 1, standings[2].Points)

	require.NoError(t, p.PostLeaderboard(ctx, true))
	require.Len(t, f.notif.SendLeaderboardCalls, 1)
	assert.Equal(t, standings, f.notif.SendLeaderboardCalls[0])
}

func TestProcessor_LeaderboardEmpty(t *testing.T) {
	f := newFixture()
	p := f.processor(false)

	standings, err := p.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, standings)
}

func TestProcessor_RecordMatchKeepsGivenFields(t *testing.T) {
	f := newFixture()
	p := f.processor(true)
	played := time.Date(2025, 5, 4, 19, 0, 0, 0, time.UTC)

	r, err := p.RecordMatch(context.Background(), results.Result{ID: "fixed", Player1ID: "u1", Player2ID: "u2", PlayedAt: played, RecordedBy: "u1"}, false)
	require.NoError(t, err)
	assert.Equal(t, "fixed", r.ID)
	assert.Equal(t, played, r.PlayedAt)
	assert.Equal(t, "u1", f.results.RecordCalls[0].RecordedBy)
}
