package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/services"
)

// APIKeyMiddleware authenticates machine callers with the X-API-Key
// header. The key binds the request to exactly one project; handlers read
// the project from context and never from the request. Missing, wrong,
// and deactivated keys all produce the same response.
func APIKeyMiddleware(keys *services.APIKeyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader("X-API-Key")
		if presented == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "API key is required",
			})
			c.Abort()
			return
		}

		key := keys.Authenticate(presented)
		if key.IsNothing() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "invalid API key",
			})
			c.Abort()
			return
		}

		c.Set("projectId", key.Unwrap().ProjectID)
		c.Next()
	}
}
