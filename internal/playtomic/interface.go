package playtomic

import "context"

// PlaytomicClient is the part of the Playtomic API the leaderboard uses.
type PlaytomicClient interface {
	GetMatches(ctx context.Context, params *SearchMatchesParams) ([]MatchSummary, error)
	GetSpecificMatch(ctx context.Context, matchID string) (PadelMatch, error)
}
