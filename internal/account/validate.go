package account

import (
	"strings"
	"unicode"
)

const MinPasswordLength = 6

// ValidateRegistration checks the sign-up form without touching the store.
func ValidateRegistration(reg Registration) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(reg.Name)
	switch {
	case name == "":
		errs["name"] = "name is required"
	case strings.IndexFunc(reg.Name, unicode.IsSpace) >= 0:
		errs["name"] = "name cannot contain spaces"
	}

	if err := ValidateEmail(reg.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := ValidatePassword(reg.Password); err != nil {
		errs["password"] = err.Error()
	}
	if reg.Password != reg.ConfirmPassword {
		errs["confirmPassword"] = "passwords do not match"
	}
	return errs
}

// ValidateCredentials checks the sign-in form.
func ValidateCredentials(c Credentials) FieldErrors {
	errs := FieldErrors{}
	if err := ValidateEmail(c.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := ValidatePassword(c.Password); err != nil {
		errs["password"] = err.Error()
	}
	return errs
}

// ValidateEmail only requires an '@'; the address is proven by the reset flow.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
