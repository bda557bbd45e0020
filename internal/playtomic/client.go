package playtomic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/rafa-garcia/go-playtomic-api/models"
)

const searchPageSize = 300

// APIClient searches matches through go-playtomic-api and fetches match
// details over plain HTTP, which the library does not cover.
type APIClient struct {
	httpClient *http.Client
	apiClient  *client.Client
	BaseURL    string
}

func NewClient() PlaytomicClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiClient: client.NewClient(
			client.WithTimeout(10*time.Second),
			client.WithRetries(3),
		),
		BaseURL: "https://api.playtomic.io",
	}
}

var _ PlaytomicClient = (*APIClient)(nil)

// GetMatches pages through the search until a short page comes back.
func (c *APIClient) GetMatches(ctx context.Context, params *SearchMatchesParams) ([]MatchSummary, error) {
	var summaries []MatchSummary
	for page := 0; ; page++ {
		matches, err := c.apiClient.GetMatches(ctx, &models.SearchMatchesParams{
			SportID:       params.SportID,
			HasPlayers:    params.HasPlayers,
			Sort:          params.Sort,
			TenantIDs:     params.TenantIDs,
			FromStartDate: params.FromStartDate,
			Size:          searchPageSize,
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("error fetching matches from playtomic api: %w", err)
		}
		log.Debug("Fetched Playtomic search page", "page", page, "count", len(matches))
		for _, m := range matches {
			summaries = append(summaries, MatchSummary{MatchID: m.MatchID})
		}
		if len(matches) < searchPageSize {
			break
		}
	}
	log.Info("Fetched Playtomic matches", "count", len(summaries), "from", params.FromStartDate)
	return summaries, nil
}

// GetSpecificMatch fetches the teams and set scores of one match.
func (c *APIClient) GetSpecificMatch(ctx context.Context, matchID string) (PadelMatch, error) {
	url := fmt.Sprintf("%s/v1/matches/%s", c.BaseURL, matchID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return PadelMatch{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "PadelRanking/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PadelMatch{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from Playtomic API", "status", resp.StatusCode, "matchID", matchID, "body", string(body))
		return PadelMatch{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var body matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return PadelMatch{}, fmt.Errorf("failed to decode match %s: %w", matchID, err)
	}
	return toPadelMatch(matchID, body), nil
}

func toPadelMatch(matchID string, body matchResponse) PadelMatch {
	match := PadelMatch{
		MatchID:       matchID,
		GameStatus:    GameStatus(body.GameStatus),
		ResultsStatus: ResultsStatus(body.ResultsStatus),
	}
	for _, t := range body.Teams {
		team := Team{ID: t.TeamID}
		for _, p := range t.Players {
			team.Players = append(team.Players, Player{UserID: p.UserID, Name: p.Name})
		}
		match.Teams = append(match.Teams, team)
	}
	for _, s := range body.Results {
		set := SetResult{Scores: make(map[string]int, len(s.Scores))}
		for _, score := range s.Scores {
			set.Scores[score.TeamID] = score.Score
		}
		match.Results = append(match.Results, set)
	}
	return match
}
