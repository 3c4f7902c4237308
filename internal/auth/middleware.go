package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const tokenHeader = "auth-token"

const contextKeyUserID = "user_id"

// UserIDFromContext returns the current user ID set by RequireToken. 0 if not set.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// RequireToken returns a middleware that verifies the auth-token header and
// sets the subject user ID in context. A missing header and a bad token get
// the same 401 body, so callers cannot tell the two apart.
func RequireToken(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(tokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please authenticate using a valid token"})
			return
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please authenticate using a valid token"})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}
