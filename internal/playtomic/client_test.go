package playtomic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *APIClient {
	return &APIClient{
		httpClient: server.Client(),
		apiClient:  client.NewClient(), // search is not exercised here
		BaseURL:    server.URL,
	}
}

func TestGetSpecificMatch(t *testing.T) {
	// Trimmed response from the Playtomic API; unknown fields are ignored.
	mockJSONResponse := `{
		"owner_id": "user-123",
		"start_date": "2025-07-09T18:00:00",
		"game_status": "PLAYED",
		"results_status": "CONFIRMED",
		"tenant": { "tenant_id": "tenant-abc", "tenant_name": "Padel Club" },
		"teams": [{
			"team_id": "1",
			"players": [
				{ "user_id": "user-123", "name": "Player A", "level_value": 3.5 },
				{ "user_id": "user-456", "name": "Player B" }
			]
		}, {
			"team_id": "2",
			"players": [
				{ "user_id": "user-789", "name": "Player C" },
				{ "user_id": "user-999", "name": "Player D" }
			]
		}],
		"results": [{
			"name": "Set 1",
			"scores": [
				{ "team_id": "1", "score": 6 },
				{ "team_id": "2", "score": 4 }
			]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/matches/match-abc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	match, err := newTestClient(server).GetSpecificMatch(context.Background(), "match-abc")

	require.NoError(t, err)
	assert.Equal(t, "match-abc", match.MatchID)
	assert.Equal(t, GameStatusPlayed, match.GameStatus)
	assert.Equal(t, ResultsStatusConfirmed, match.ResultsStatus)
	require.Len(t, match.Teams, 2)
	assert.Equal(t, Team{ID: "1", Players: []Player{{UserID: "user-123", Name: "Player A"}, {UserID: "user-456", Name: "Player B"}}}, match.Teams[0])
	require.Len(t, match.Results, 1)
	assert.Equal(t, map[string]int{"1": 6, "2": 4}, match.Results[0].Scores)

	f, ok := ToFixture(match)
	require.True(t, ok)
	assert.Equal(t, 1, f.Result.ScoreA)
}

func TestGetSpecificMatch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server).GetSpecificMatch(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetSpecificMatch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"teams": "not a list"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server).GetSpecificMatch(context.Background(), "m1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode match m1")
}
