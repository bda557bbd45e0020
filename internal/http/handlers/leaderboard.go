package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/processor"
)

func LeaderboardHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := proc.Leaderboard(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

func PlaytomicLeaderboardHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := proc.PlaytomicLeaderboard(r.Context(), parseDays(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

// PostLeaderboardHandler posts the leaderboard to Slack on behalf of a signed-in user.
func PostLeaderboardHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).Info("Posting leaderboard...")
		if err := proc.PostLeaderboard(r.Context(), IsDryRunFromContext(r)); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Leaderboard posted.")
	}
}

// parseDays reads the 'days' query parameter. Zero lets the processor pick its default.
func parseDays(r *http.Request) int {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return 0
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		log.FromContext(r.Context()).Warn("Invalid 'days' parameter provided. Using the default.", "days_param", daysStr)
		return 0
	}
	return days
}
