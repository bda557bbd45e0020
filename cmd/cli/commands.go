package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mauv0809/padel-ranking/internal/ranking"
	"github.com/spf13/cobra"
)

var (
	remote        bool
	playtomicDays int
	email         string
	password      string
)

func init() {
	rankCmd.Flags().BoolVar(&remote, "remote", false, "Calculate on the server instead of locally")
	leaderboardCmd.Flags().IntVar(&playtomicDays, "playtomic", 0, "Build the leaderboard from the last N days of Playtomic matches")
	loginCmd.Flags().StringVar(&email, "email", "", "Account email")
	loginCmd.Flags().StringVar(&password, "password", "", "Account password")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(headToHeadCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/health", nil)
	},
}

var rankCmd = &cobra.Command{
	Use:     "rank SCORE...",
	Short:   "Total the points of two players over results like 3-1 0-2 5-5",
	Example: "  padel-cli rank 3-1 0-2 5-5",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]ranking.MatchResult, len(args))
		for i, arg := range args {
			a, b, err := parseScore(arg)
			if err != nil {
				return err
			}
			results[i] = ranking.MatchResult{ScoreA: a, ScoreB: b}
		}
		if remote {
			return performRequest("POST", "/ranking/calculate", map[string]any{"results": results})
		}
		totals := ranking.Calculate(results)
		fmt.Printf("Player 1: %d\nPlayer 2: %d\n", totals.Player1, totals.Player2)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/auth/login", map[string]string{"email": email, "password": password})
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/me", nil)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/users", nil)
	},
}

var recordCmd = &cobra.Command{
	Use:     "record OPPONENT_ID SCORE",
	Short:   "Record a match against an opponent, your score first",
	Example: "  padel-cli record 5f0c... 6-4",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseScore(args[1])
		if err != nil {
			return err
		}
		return performRequest("POST", "/matches", map[string]any{"player2Id": args[0], "scoreA": a, "scoreB": b})
	},
}

var headToHeadCmd = &cobra.Command{
	Use:   "head-to-head PLAYER1_ID PLAYER2_ID",
	Short: "Show the accumulated points between two players",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{"player1": {args[0]}, "player2": {args[1]}}
		return performRequest("GET", "/ranking/head-to-head?"+q.Encode(), nil)
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playtomicDays > 0 {
			return performRequest("GET", "/leaderboard/playtomic?days="+strconv.Itoa(playtomicDays), nil)
		}
		return performRequest("GET", "/leaderboard", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/metrics", nil)
	},
}

// parseScore reads "a-b" into the two sides' scores.
func parseScore(s string) (int, int, error) {
	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid score %q, expected a-b", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid score %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid score %q: %w", s, err)
	}
	if a < 0 || b < 0 {
		return 0, 0, fmt.Errorf("invalid score %q: scores cannot be negative", s)
	}
	return a, b, nil
}

func performRequest(method, endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
