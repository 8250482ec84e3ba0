package middleware

import (
	"strings"

	"evcharge-dashboard-server/internal/services"
	"evcharge-dashboard-server/internal/utils"
	"github.com/gin-gonic/gin"
)

// Auth resolves the bearer token to a live user and stores it in the request
// context under "user", with user_id/username/role set alongside for logging
// and handlers.
func Auth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		user, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(tokenStr))
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set("user", user.Public())
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("role", user.Role)
		c.Next()
	}
}
