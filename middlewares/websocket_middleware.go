package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/restobar-app/backend/utils"
)

// WebSocketAuthMiddleware authenticates websocket upgrades, where browsers
// cannot send an Authorization header, via a ?token= query parameter.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("user_code", claims.UserCode)
		c.Next()
	}
}
