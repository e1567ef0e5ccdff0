package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/services"
)

// AuthMiddleware authenticates human callers with a bearer token (header
// or auth cookie), resolves it to a user, and stores the identity in the
// request context.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "authentication required",
			})
			c.Abort()
			return
		}

		resolved := auth.ResolveToken(token)
		if resolved.IsErr() {
			appErr := resolved.UnwrapErr()
			c.JSON(appErr.StatusCode(), gin.H{
				"status":  "error",
				"message": appErr.Message,
			})
			c.Abort()
			return
		}

		user := resolved.Unwrap()
		c.Set("userId", user.ID)
		c.Set("email", user.Email)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}
	// Fall back to the HttpOnly cookie set at login.
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}
