package middleware

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/service"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID  = "user_id"
	CtxIsAdmin = "is_admin"
	CtxToken   = "token"
)

// Auth requires a valid bearer token that has not been logged out, and
// resolves the local user (creating it on first sight).
func Auth(authService service.AuthService, userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, authService, userService) {
			response.Fail(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthOptional resolves the user when a valid token is present and lets
// anonymous requests through untouched.
func AuthOptional(authService service.AuthService, userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, authService, userService)
		c.Next()
	}
}

func authenticate(c *gin.Context, authService service.AuthService, userService service.UserService) bool {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return false
	}

	claims, err := security.ValidateToken(tokenString)
	if err != nil {
		return false
	}

	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return false
	}
	denied, err := authService.IsDenied(c.Request.Context(), signature)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "denylist check failed", "err", err)
		return false
	}
	if denied {
		return false
	}

	user, err := userService.EnsureUser(c.Request.Context(), claims)
	if err != nil {
		return false
	}

	c.Set(CtxUserID, user.ID)
	c.Set(CtxIsAdmin, user.IsAdmin)
	c.Set(CtxToken, tokenString)
	return true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserID returns the authenticated user id, 0 for anonymous requests.
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

// IsAdmin reports whether the authenticated user is an administrator.
func IsAdmin(c *gin.Context) bool {
	if v, ok := c.Get(CtxIsAdmin); ok {
		if admin, ok := v.(bool); ok {
			return admin
		}
	}
	return false
}
