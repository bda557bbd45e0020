package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/account"
	"github.com/mauv0809/padel-ranking/internal/auth"
)

// PasswordResetRequest starts a password reset.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmation completes a password reset.
type PasswordResetConfirmation struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func RegisterHandler(accounts *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg account.Registration
		if !decodeJSON(w, r, &reg) {
			return
		}
		user, err := accounts.Register(r.Context(), reg)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

func LoginHandler(accounts *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds account.Credentials
		if !decodeJSON(w, r, &creds) {
			return
		}
		session, err := accounts.SignIn(r.Context(), creds)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, session)
	}
}

// LogoutHandler only acknowledges the request. Tokens are stateless and the
// client discards its copy.
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).Info("User signed out", "userID", auth.UserIDFromContext(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// PasswordResetHandler answers 202 whether or not the address belongs to an
// account.
func PasswordResetHandler(accounts *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PasswordResetRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		err := accounts.RequestPasswordReset(r.Context(), req.Email)
		if err != nil && !errors.Is(err, account.ErrUserNotFound) {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func PasswordResetConfirmHandler(accounts *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PasswordResetConfirmation
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := accounts.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func MeHandler(accounts *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := accounts.CurrentUser(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func ListUsersHandler(accounts *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := accounts.Directory(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}
