package middleware

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/security"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	denied bool
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }
func (s *stubAuthService) IsDenied(context.Context, string) (bool, error) {
	return s.denied, nil
}

type stubUserService struct{}

func (stubUserService) EnsureUser(_ context.Context, claims *security.UserClaims) (*model.User, error) {
	return &model.User{ID: 7, ExternalID: claims.Subject, IsAdmin: true}, nil
}

func newAuthedEngine(auth *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/p", Auth(auth, stubUserService{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": UserID(c), "admin": IsAdmin(c)})
	})
	return engine
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	engine := newAuthedEngine(&stubAuthService{})

	token, err := security.GenerateToken("auth0|abc", "ada@example.com", []string{"admin"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":7`)
}

func TestAuthRejectsMissingAndGarbageTokens(t *testing.T) {
	engine := newAuthedEngine(&stubAuthService{})

	for _, header := range []string{"", "Bearer not.a.token", "Basic abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestAuthRejectsLoggedOutToken(t *testing.T) {
	engine := newAuthedEngine(&stubAuthService{denied: true})

	token, err := security.GenerateToken("auth0|abc", "ada@example.com", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
