package processor

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/playtomic"
	"github.com/mauv0809/padel-ranking/internal/ranking"
	"golang.org/x/sync/errgroup"
)

// PlaytomicLeaderboard ranks the club's players by the Playtomic matches
// played in the last days. Each side of a match scores the sets it won.
func (p *Processor) PlaytomicLeaderboard(ctx context.Context, days int) ([]ranking.Standing, error) {
	if p.playtomic == nil || p.tenantID == "" {
		return nil, ErrPlaytomicDisabled
	}
	if days <= 0 {
		days = defaultPlaytomicDays
	}
	if days > maxPlaytomicDays {
		days = maxPlaytomicDays
	}

	startDate := p.now().AddDate(0, 0, -days)
	params := &playtomic.SearchMatchesParams{
		SportID:       "PADEL",
		HasPlayers:    true,
		Sort:          "start_date,ASC",
		TenantIDs:     []string{p.tenantID},
		FromStartDate: startDate.Format("2006-01-02") + "T00:00:00",
	}
	log.FromContext(ctx).Info("Fetching Playtomic matches", "from", params.FromStartDate, "tenant", p.tenantID)
	p.metrics.IncPlaytomicFetches()
	summaries, err := p.playtomic.GetMatches(ctx, params)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		matches []playtomic.PadelMatch
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(playtomicFetchLimit)
	for _, summary := range summaries {
		matchID := summary.MatchID
		g.Go(func() error {
			match, err := p.playtomic.GetSpecificMatch(gctx, matchID)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.FromContext(gctx).Error("Error fetching specific match", "matchID", matchID, "error", err)
				return nil
			}
			mu.Lock()
			matches = append(matches, match)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	started := time.Now()
	fixtures := make([]ranking.Fixture, 0, len(matches))
	for _, match := range matches {
		if f, ok := playtomic.ToFixture(match); ok {
			fixtures = append(fixtures, f)
		} else {
			log.FromContext(ctx).Debug("Skipping unrankable match", "matchID", match.MatchID, "game_status", match.GameStatus, "results_status", match.ResultsStatus)
		}
	}
	standings := ranking.Standings(fixtures)
	names := playtomic.PlayerNames(matches)
	for i := range standings {
		standings[i].Name = names[standings[i].ID]
	}
	p.metrics.IncRankingsCalculated()
	p.metrics.ObserveProcessingDuration(float64(time.Since(started).Milliseconds()))
	log.FromContext(ctx).Info("Built Playtomic leaderboard", "api_matches", len(summaries), "ranked", len(fixtures), "players", len(standings))
	return standings, nil
}
