package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(repository.NewReactionRepo(db), repository.NewPostRepo(db))
	ctx := context.Background()

	_, err := svc.React(ctx, 1, 1, 0)
	assert.ErrorIs(t, err, ErrReactionInvalid)

	_, err = svc.React(ctx, 1, 1, 3)
	assert.ErrorIs(t, err, ErrReactionInvalid)

	_, err = svc.React(ctx, 1, 999, model.ReactionLike)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestReactToggleRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(repository.NewReactionRepo(db), repository.NewPostRepo(db))
	ctx := context.Background()

	user := &model.User{ExternalID: "u"}
	require.NoError(t, db.Create(user).Error)
	post := &model.Post{Title: "p", Content: "c", Preview: "c", Status: model.PostStatusPublished}
	require.NoError(t, db.Create(post).Error)

	resp, err := svc.React(ctx, user.ID, post.ID, model.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionLike, resp.Reaction)
	assert.Equal(t, 1, resp.Likes)

	resp, err = svc.React(ctx, user.ID, post.ID, model.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionDislike, resp.Reaction)
	assert.Equal(t, 0, resp.Likes)
	assert.Equal(t, 1, resp.Dislikes)

	resp, err = svc.React(ctx, user.ID, post.ID, model.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNone, resp.Reaction)
	assert.Equal(t, 0, resp.Dislikes)
}

func TestSetFavoriteRequiresPublishedPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepo(db), repository.NewPostRepo(db))
	ctx := context.Background()

	user := &model.User{ExternalID: "u"}
	require.NoError(t, db.Create(user).Error)
	draft := &model.Post{Title: "d", Content: "c", Preview: "c", Status: model.PostStatusDraft}
	require.NoError(t, db.Create(draft).Error)

	_, err := svc.SetFavorite(ctx, user.ID, draft.ID, true)
	assert.ErrorIs(t, err, ErrPostNotFound)

	post := &model.Post{Title: "p", Content: "c", Preview: "c", Status: model.PostStatusPublished}
	require.NoError(t, db.Create(post).Error)

	resp, err := svc.SetFavorite(ctx, user.ID, post.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.IsFavorite)

	resp, err = svc.SetFavorite(ctx, user.ID, post.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsFavorite)
}
