package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "reader")
	post := seedPost(t, db, "keeper", model.PostStatusPublished)

	require.NoError(t, repo.Add(ctx, user.ID, post.ID))
	require.NoError(t, repo.Add(ctx, user.ID, post.ID))

	var rows int64
	require.NoError(t, db.Model(&model.FavoritePost{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	exists, err := repo.Exists(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFavoriteRemoveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "reader")
	post := seedPost(t, db, "keeper", model.PostStatusPublished)

	require.NoError(t, repo.Add(ctx, user.ID, post.ID))
	require.NoError(t, repo.Remove(ctx, user.ID, post.ID))
	require.NoError(t, repo.Remove(ctx, user.ID, post.ID))

	exists, err := repo.Exists(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
