package middleware

import (
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Audit logs admin mutations with the acting user.
func Audit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		log.InfoContext(c.Request.Context(), "admin action",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"user", UserID(c),
			"status", c.Writer.Status(),
		)
	}
}
