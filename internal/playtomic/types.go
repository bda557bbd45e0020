package playtomic

// SearchMatchesParams narrows the club match search.
type SearchMatchesParams struct {
	SportID       string
	HasPlayers    bool
	Sort          string
	TenantIDs     []string
	FromStartDate string
}

// MatchSummary is one hit of the match search; details are fetched by ID.
type MatchSummary struct {
	MatchID string
}

// GameStatus is Playtomic's game_status. Only PLAYED matches are ranked.
type GameStatus string

const (
	GameStatusPending GameStatus = "PENDING"
	GameStatusPlayed  GameStatus = "PLAYED"
)

// ResultsStatus is Playtomic's results_status. Only CONFIRMED results are ranked.
type ResultsStatus string

const (
	ResultsStatusConfirmed  ResultsStatus = "CONFIRMED"
	ResultsStatusValidating ResultsStatus = "VALIDATING"
	ResultsStatusPending    ResultsStatus = "PENDING"
)

// PadelMatch holds what the leaderboard needs from a Playtomic match: who
// played on which team and the per-set scores keyed by team ID.
type PadelMatch struct {
	MatchID       string
	GameStatus    GameStatus
	ResultsStatus ResultsStatus
	Teams         []Team
	Results       []SetResult
}

type Team struct {
	ID      string
	Players []Player
}

type Player struct {
	UserID string
	Name   string
}

// SetResult maps team ID to games won in one set.
type SetResult struct {
	Scores map[string]int
}

// matchResponse is the subset of GET /v1/matches/{id} that is decoded.
type matchResponse struct {
	GameStatus    string         `json:"game_status"`
	ResultsStatus string         `json:"results_status"`
	Teams         []teamResponse `json:"teams"`
	Results       []setResponse  `json:"results"`
}

type teamResponse struct {
	TeamID  string           `json:"team_id"`
	Players []playerResponse `json:"players"`
}

type playerResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type setResponse struct {
	Scores []struct {
		TeamID string `json:"team_id"`
		Score  int    `json:"score"`
	} `json:"scores"`
}
