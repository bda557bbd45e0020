package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/processor"
	"github.com/mauv0809/padel-ranking/internal/ranking"
	"github.com/mauv0809/padel-ranking/internal/results"
)

// CalculateRequest is the body of /ranking/calculate.
type CalculateRequest struct {
	Results []ranking.MatchResult `json:"results"`
}

// HeadToHeadResponse is the body returned by /ranking/head-to-head.
type HeadToHeadResponse struct {
	Player1 string           `json:"player1"`
	Player2 string           `json:"player2"`
	Totals  ranking.Totals   `json:"totals"`
	Results []results.Result `json:"results"`
}

// CalculateHandler totals the points of an arbitrary list of results.
func CalculateHandler(metrics metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CalculateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		totals := ranking.Calculate(req.Results)
		metrics.IncRankingsCalculated()
		log.FromContext(r.Context()).Debug("Calculated ranking", "results", len(req.Results), "totals", totals)
		writeJSON(w, http.StatusOK, totals)
	}
}

func HeadToHeadHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := r.URL.Query().Get("player1")
		b := r.URL.Query().Get("player2")
		if a == "" || b == "" {
			writeErrorMessage(w, http.StatusBadRequest, "player1 and player2 are required")
			return
		}
		totals, history, err := proc.HeadToHead(r.Context(), a, b)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, HeadToHeadResponse{Player1: a, Player2: b, Totals: totals, Results: history})
	}
}
