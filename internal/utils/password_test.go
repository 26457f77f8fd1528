package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Passw0rd", nil},
		{"valid long", "CorrectHorseBattery1", nil},
		{"too short", "Ab1", ErrPasswordTooShort},
		{"exactly seven", "Abcdef1", ErrPasswordTooShort},
		{"no uppercase", "password1", ErrPasswordNoUpper},
		{"no lowercase", "PASSWORD1", ErrPasswordNoLower},
		{"no digit", "Password", ErrPasswordNoDigit},
		// length is checked before composition
		{"short and no digit", "Pass", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateResetToken(t *testing.T) {
	a, err := GenerateResetToken()
	require.NoError(t, err)
	require.Len(t, a, 64)

	b, err := GenerateResetToken()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
