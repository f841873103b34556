package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserCreatesOnFirstSight(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))
	ctx := context.Background()

	claims := &security.UserClaims{
		Email:     "ada@example.com",
		FirstName: "Ada",
		Roles:     []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "auth0|abc123",
		},
	}

	user, err := svc.EnsureUser(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "auth0|abc123", user.ExternalID)
	assert.True(t, user.IsAdmin)

	// The second request resolves the same row.
	again, err := svc.EnsureUser(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	var total int64
	require.NoError(t, db.Model(&model.User{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestEnsureUserNonAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	user, err := svc.EnsureUser(context.Background(), &security.UserClaims{
		Roles:            []string{"reader"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "auth0|reader"},
	})
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}
