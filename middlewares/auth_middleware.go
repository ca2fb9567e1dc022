package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restobar-app/backend/utils"
)

// AuthMiddleware validates the Bearer token and loads the user's code and
// role into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("falta la cabecera Authorization"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("formato de token inválido"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if claims.UserCode == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token sin usuario"))
			c.Abort()
			return
		}

		c.Set("user_code", claims.UserCode)
		c.Set("role", claims.Role)
		c.Next()
	}
}
