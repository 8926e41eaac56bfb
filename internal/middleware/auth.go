package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dreamjournal-be/internal/jwt"
	"dreamjournal-be/internal/models"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// The response body is identical for missing, malformed and expired tokens
// so callers learn nothing about credential validity.
const unauthorizedMessage = "Not authorized"

// AuthMiddleware gates protected routes. It extracts a bearer token from the
// Authorization header, falling back to the "token" cookie, verifies it and
// attaches the identity to the request context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Check for token in Authorization header
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// Check for token in cookies (alternative)
		if token == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				token = cookie
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail(unauthorizedMessage))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail(unauthorizedMessage))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}
