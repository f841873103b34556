package middleware

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the admin console routes; it assumes Auth already
// ran.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Error(c, service.UnauthorizedError)
			c.Abort()
			return
		}
		c.Next()
	}
}
