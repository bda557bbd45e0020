package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/auth"
	"github.com/mauv0809/padel-ranking/internal/processor"
	"github.com/mauv0809/padel-ranking/internal/results"
)

// RecordMatchRequest is the body of POST /matches. Player 1 defaults to the
// signed-in user.
type RecordMatchRequest struct {
	Player1ID string    `json:"player1Id"`
	Player2ID string    `json:"player2Id"`
	ScoreA    int       `json:"scoreA"`
	ScoreB    int       `json:"scoreB"`
	PlayedAt  time.Time `json:"playedAt"`
}

func ListMatchesHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.ListAll(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

func RecordMatchHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordMatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		userID := auth.UserIDFromContext(r.Context())
		if req.Player1ID == "" {
			req.Player1ID = userID
		}
		result, err := proc.RecordMatch(r.Context(), results.Result{
			Player1ID:  req.Player1ID,
			Player2ID:  req.Player2ID,
			ScoreA:     req.ScoreA,
			ScoreB:     req.ScoreB,
			PlayedAt:   req.PlayedAt.UTC().Truncate(time.Second),
			RecordedBy: userID,
		}, IsDryRunFromContext(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		status := http.StatusCreated
		if IsDryRunFromContext(r) {
			status = http.StatusOK
		}
		writeJSON(w, status, result)
	}
}

func GetMatchHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := store.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// DeleteMatchHandler lets either player, or whoever recorded the result,
// remove it.
func DeleteMatchHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		result, err := store.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		userID := auth.UserIDFromContext(r.Context())
		if userID != result.Player1ID && userID != result.Player2ID && userID != result.RecordedBy {
			writeErrorMessage(w, http.StatusForbidden, "only the players or the recorder can delete a result")
			return
		}
		if IsDryRunFromContext(r) {
			log.FromContext(r.Context()).Info("[Dry Run] Would delete match", "resultID", id, "userID", userID)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		log.FromContext(r.Context()).Info("Deleted match", "resultID", id, "userID", userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
