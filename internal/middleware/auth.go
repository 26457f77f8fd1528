package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/interntrack/api/internal/auth"
	"github.com/interntrack/api/internal/constants"
	apierrors "github.com/interntrack/api/internal/errors"
)

// RequireAuth checks for a valid bearer token and stores the user ID in the
// request context. The token is carried explicitly per request; there is no
// ambient auth state.
func RequireAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			apierrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		userID, err := tokens.Validate(tokenStr)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
