package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/interntrack/api/internal/constants"
)

// GenerateResetToken generates a random opaque password-reset token.
func GenerateResetToken() (string, error) {
	bytes := make([]byte, constants.ResetTokenNumBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
