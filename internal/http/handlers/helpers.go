package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/processor"
	"github.com/mauv0809/padel-ranking/internal/results"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey    ContextKey = "dryRun"
	RequestIDKey ContextKey = "requestID"
)

const maxBodyBytes = 1 << 20

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// RequestIDFromContext returns the request ID set by the request ID middleware.
func RequestIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(RequestIDKey).(string)
	return id
}

// ErrorResponse is the JSON body of every error returned by the API.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps domain errors to status codes. Anything unknown is logged
// and reported as a 500 without details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fields account.FieldErrors
	switch {
	case errors.As(err, &fields):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, account.ErrInvalidEmail):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: map[string]string{"email": err.Error()}})
	case errors.Is(err, account.ErrWeakPassword):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: map[string]string{"password": err.Error()}})
	case errors.Is(err, account.ErrEmailInUse):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Fields: map[string]string{"email": err.Error()}})
	case errors.Is(err, account.ErrNameInUse):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Fields: map[string]string{"name": err.Error()}})
	case errors.Is(err, account.ErrWrongPassword):
		writeErrorMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, account.ErrUserNotFound), errors.Is(err, results.ErrResultNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, account.ErrInvalidResetToken),
		errors.Is(err, results.ErrSamePlayer),
		errors.Is(err, results.ErrNegativeScore),
		errors.Is(err, results.ErrMissingPlayer),
		errors.Is(err, results.ErrUnknownPlayer):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, processor.ErrPlaytomicDisabled), errors.Is(err, notifier.ErrNotConfigured):
		writeErrorMessage(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.FromContext(r.Context()).Error("Request failed", "error", err, "method", r.Method, "path", r.URL.Path, "requestID", RequestIDFromContext(r))
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON body into v, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.FromContext(r.Context()).Error("Failed to read request body", "error", err)
		writeErrorMessage(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		log.FromContext(r.Context()).Debug("Invalid JSON body", "error", err, "path", r.URL.Path)
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
