// internal/middleware/i18n.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/ecom-backend/internal/i18n"
)

// I18nMiddleware stores the request language under "lang", falling back to
// defaultLang when the header names no supported locale.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = i18n.DefaultLocale
	}
	return func(c *gin.Context) {
		c.Set("lang", i18n.ParseLanguage(c.GetHeader("Accept-Language"), defaultLang))
		c.Next()
	}
}
