package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/playtomic"
	"github.com/mauv0809/padel-ranking/internal/pubsub"
	"github.com/mauv0809/padel-ranking/internal/ranking"
	"github.com/mauv0809/padel-ranking/internal/results"
)

// New creates a new Processor. pubsub and playtomicClient may be nil: without
// pubsub results are notified inline, without Playtomic the club leaderboard
// is disabled.
func New(users UserStore, store results.Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, playtomicClient playtomic.PlaytomicClient, tenantID string) *Processor {
	return &Processor{
		users:     users,
		results:   store,
		pubsub:    pubsub,
		notifier:  notifier,
		metrics:   metrics,
		playtomic: playtomicClient,
		tenantID:  tenantID,
		now:       time.Now,
	}
}

// RecordMatch stores a result and announces it. In a dry run nothing is
// stored or published, the announcement is only logged.
func (p *Processor) RecordMatch(ctx context.Context, r results.Result, dryRun bool) (*results.Result, error) {
	startTime := time.Now()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.PlayedAt.IsZero() {
		r.PlayedAt = p.now().UTC().Truncate(time.Second)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if dryRun {
		log.FromContext(ctx).Info("[Dry Run] Would record match", "resultID", r.ID, "player1", r.Player1ID, "player2", r.Player2ID, "score", fmt.Sprintf("%d-%d", r.ScoreA, r.ScoreB))
	} else {
		if err := p.results.Record(ctx, r); err != nil {
			return nil, err
		}
		p.metrics.IncMatchesRecorded()
		log.FromContext(ctx).Info("Recorded match", "resultID", r.ID, "player1", r.Player1ID, "player2", r.Player2ID)
	}

	if p.pubsub != nil && !dryRun {
		if err := p.pubsub.SendMessage(pubsub.EventMatchRecorded, r); err == nil {
			p.metrics.ObserveProcessingDuration(float64(time.Since(startTime).Milliseconds()))
			return &r, nil
		}
		log.FromContext(ctx).Warn("Failed to publish match, notifying inline", "resultID", r.ID)
	}

	if err := p.NotifyResult(ctx, r, dryRun); err != nil {
		p.logNotifyError(ctx, err, r.ID)
	}
	p.metrics.ObserveProcessingDuration(float64(time.Since(startTime).Milliseconds()))
	return &r, nil
}

// NotifyResult sends the result together with the running head-to-head.
func (p *Processor) NotifyResult(ctx context.Context, r results.Result, dryRun bool) error {
	names, err := p.names(ctx, []string{r.Player1ID, r.Player2ID})
	if err != nil {
		return err
	}
	history, err := p.results.ListBetween(ctx, r.Player1ID, r.Player2ID)
	if err != nil {
		return fmt.Errorf("failed to load head-to-head: %w", err)
	}
	if !containsResult(history, r.ID) {
		history = append(history, r)
	}

	totals := ranking.Calculate(results.MatchResults(history))
	p.metrics.IncRankingsCalculated()

	return p.notifier.SendResultNotification(notifier.ResultNotification{
		ResultID:    r.ID,
		Player1Name: names[r.Player1ID],
		Player2Name: names[r.Player2ID],
		Score:       r.MatchResult(),
		PlayedAt:    r.PlayedAt,
		HeadToHead:  totals,
		Matches:     len(history),
	}, dryRun)
}

// NotifyRecorded announces a stored result by ID. Results that are not in
// the store are rejected with results.ErrResultNotFound.
func (p *Processor) NotifyRecorded(ctx context.Context, resultID string, dryRun bool) error {
	if resultID == "" {
		return results.ErrResultNotFound
	}
	stored, err := p.results.Get(ctx, resultID)
	if err != nil {
		return err
	}
	return p.NotifyResult(ctx, *stored, dryRun)
}

// HeadToHead returns the accumulated points of a against b over every match
// they played, with a as player 1.
func (p *Processor) HeadToHead(ctx context.Context, a, b string) (ranking.Totals, []results.Result, error) {
	if a == b {
		return ranking.Totals{}, nil, results.ErrSamePlayer
	}
	for _, id := range []string{a, b} {
		if _, err := p.users.GetUser(ctx, id); err != nil {
			return ranking.Totals{}, nil, err
		}
	}

	history, err := p.results.ListBetween(ctx, a, b)
	if err != nil {
		return ranking.Totals{}, nil, err
	}
	totals := ranking.Calculate(results.MatchResults(history))
	p.metrics.IncRankingsCalculated()
	log.FromContext(ctx).Debug("Calculated head-to-head", "player1", a, "player2", b, "matches", len(history), "totals", totals)
	return totals, history, nil
}

// Leaderboard ranks every user by the points earned in stored results.
func (p *Processor) Leaderboard(ctx context.Context) ([]ranking.Standing, error) {
	all, err := p.results.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fixtures := make([]ranking.Fixture, len(all))
	for i, r := range all {
		fixtures[i] = r.Fixture()
	}
	standings := ranking.Standings(fixtures)
	p.metrics.IncRankingsCalculated()

	ids := make([]string, len(standings))
	for i, s := range standings {
		ids[i] = s.ID
	}
	names, err := p.names(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range standings {
		standings[i].Name = names[standings[i].ID]
	}
	return standings, nil
}

// PostLeaderboard sends the stored-results leaderboard to the notifier.
func (p *Processor) PostLeaderboard(ctx context.Context, dryRun bool) error {
	standings, err := p.Leaderboard(ctx)
	if err != nil {
		return err
	}
	return p.notifier.SendLeaderboard(standings, dryRun)
}

func (p *Processor) logNotifyError(ctx context.Context, err error, resultID string) {
	if errors.Is(err, notifier.ErrNotConfigured) {
		log.FromContext(ctx).Debug("Skipping result notification, notifier not configured", "resultID", resultID)
		return
	}
	log.FromContext(ctx).Error("Failed to notify result", "error", err, "resultID", resultID)
}

// names resolves user IDs to display names. Unknown users keep their ID.
func (p *Processor) names(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		names[id] = id
	}
	if len(ids) == 0 {
		return names, nil
	}
	users, err := p.users.GetUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve player names: %w", err)
	}
	for _, u := range users {
		if u.Name != "" {
			names[u.ID] = u.Name
		}
	}
	return names, nil
}

func containsResult(rs []results.Result, id string) bool {
	for _, r := range rs {
		if r.ID == id {
			return true
		}
	}
	return false
}
