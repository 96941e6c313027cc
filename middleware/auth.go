package middleware

import (
	"net/http"
	"strings"

	"gram/repositories"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session token and stores the requester
// username plus the raw token in the request context. Handlers pass
// the token on to the service layer; the username is for edge checks
// like post ownership.
func AuthMiddleware(sessions repositories.SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "No authorization token provided",
			})
			c.Abort()
			return
		}

		username, err := sessions.FindUsernameWithToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Token validation failed",
			})
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Set("token", token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return c.Query("token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
