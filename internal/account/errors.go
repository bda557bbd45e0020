package account

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEmailInUse        = errors.New("email is already registered with another account")
	ErrNameInUse         = errors.New("name is already in use")
	ErrInvalidEmail      = errors.New("email is not valid")
	ErrWeakPassword      = errors.New("password must be at least 6 characters")
	ErrUserNotFound      = errors.New("no user is registered with this email")
	ErrWrongPassword     = errors.New("password is incorrect")
	ErrInvalidResetToken = errors.New("password reset token is invalid or expired")
)

// FieldErrors maps form fields to the problem found with them.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrOrNil returns f as an error, or nil when there are no field errors.
func (f FieldErrors) ErrOrNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}
