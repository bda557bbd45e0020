package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/processor"
	"github.com/mauv0809/padel-ranking/internal/pubsub"
	"github.com/mauv0809/padel-ranking/internal/results"
)

// MatchRecordedHandler receives match-recorded events from a Pub/Sub push
// subscription. A nil client decodes the payload directly. Only results found
// in the store are announced; unknown IDs are acked and dropped.
func MatchRecordedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.FromContext(r.Context()).Debug("Received match recorded message", "body", string(bodyBytes))

		rawData, err := pubsub.DecodePush(bodyBytes)
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}

		var result results.Result
		if pubsubClient != nil {
			err = pubsubClient.ProcessMessage(rawData, &result)
		} else {
			err = pubsub.Unmarshal(rawData, &result)
		}
		if err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		err = proc.NotifyRecorded(r.Context(), result.ID, IsDryRunFromContext(r))
		switch {
		case errors.Is(err, results.ErrResultNotFound):
			log.FromContext(r.Context()).Warn("Dropping notification for unknown result", "resultID", result.ID)
		case errors.Is(err, notifier.ErrNotConfigured):
			log.FromContext(r.Context()).Warn("Dropping result notification, notifier not configured", "resultID", result.ID)
		case err != nil:
			log.FromContext(r.Context()).Error("Failed to notify result", "error", err, "resultID", result.ID)
			http.Error(w, "Failed to notify result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
