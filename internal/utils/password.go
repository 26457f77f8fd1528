package utils

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/interntrack/api/internal/constants"
)

var (
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", constants.MinPasswordLength)
	ErrPasswordNoUpper  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower  = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit  = errors.New("password must contain at least one number")
)

// ValidatePassword enforces the password policy: minimum length plus at
// least one uppercase letter, one lowercase letter, and one digit. The first
// failed rule wins so the user gets one actionable message.
func ValidatePassword(password string) error {
	if len(password) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	return nil
}
