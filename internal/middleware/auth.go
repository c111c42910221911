// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/javajoker/ecom-backend/internal/i18n"
	"github.com/javajoker/ecom-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const RoleAdmin = "admin"

// AdminRequired guards the back-office routes with a bearer token signed by
// secret and carrying the admin role. An empty secret disables the guard.
func AdminRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		lang := utils.GetLangFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(secret, parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			c.Abort()
			return
		}

		if claims.Role != RoleAdmin {
			utils.ForbiddenResponse(c, "")
			c.Abort()
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}
