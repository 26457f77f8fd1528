package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	userID, err := issuer.Validate(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue(42)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Validate(token)
	require.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidate_MissingExpiry(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	claims := jwt.RegisteredClaims{Subject: "42"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").Validate("not-a-token")
	require.Error(t, err)
}
