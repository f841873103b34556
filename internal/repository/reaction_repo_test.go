package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetReactionInsertToggleSwitch(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "reader")
	post := seedPost(t, db, "first", model.PostStatusPublished)

	// First like inserts.
	result, err := repo.SetReaction(ctx, user.ID, post.ID, model.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionLike, result.Reaction)
	assert.Equal(t, 1, result.Likes)
	assert.Equal(t, 0, result.Dislikes)

	// Repeating the same reaction toggles it off.
	result, err = repo.SetReaction(ctx, user.ID, post.ID, model.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNone, result.Reaction)
	assert.Equal(t, 0, result.Likes)
	assert.Equal(t, 0, result.Dislikes)

	// Like then dislike switches in place.
	_, err = repo.SetReaction(ctx, user.ID, post.ID, model.ReactionLike)
	require.NoError(t, err)
	result, err = repo.SetReaction(ctx, user.ID, post.ID, model.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionDislike, result.Reaction)
	assert.Equal(t, 0, result.Likes)
	assert.Equal(t, 1, result.Dislikes)

	// At most one row per (user, post) survives the whole sequence.
	var rows int64
	require.NoError(t, db.Model(&model.PostReaction{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestSetReactionCountersMatchRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepo(db)
	ctx := context.Background()

	post := seedPost(t, db, "popular", model.PostStatusPublished)
	likers := []*model.User{
		seedUser(t, db, "a"),
		seedUser(t, db, "b"),
		seedUser(t, db, "c"),
	}

	for _, u := range likers {
		_, err := repo.SetReaction(ctx, u.ID, post.ID, model.ReactionLike)
		require.NoError(t, err)
	}
	_, err := repo.SetReaction(ctx, likers[0].ID, post.ID, model.ReactionDislike)
	require.NoError(t, err)

	var stored model.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, 2, stored.LikesCount)
	assert.Equal(t, 1, stored.DislikesCount)

	var likes, dislikes int64
	require.NoError(t, db.Model(&model.PostReaction{}).
		Where("post_id = ? AND reaction = ?", post.ID, model.ReactionLike).
		Count(&likes).Error)
	require.NoError(t, db.Model(&model.PostReaction{}).
		Where("post_id = ? AND reaction = ?", post.ID, model.ReactionDislike).
		Count(&dislikes).Error)
	assert.Equal(t, int64(stored.LikesCount), likes)
	assert.Equal(t, int64(stored.DislikesCount), dislikes)
}

func TestSetReactionDuplicateInsertRace(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "racer")
	post := seedPost(t, db, "contended", model.PostStatusPublished)

	// Simulate the row appearing between the read and the insert by
	// pre-inserting outside the repo after confirming absence.
	require.NoError(t, db.Session(&gorm.Session{}).Create(&model.PostReaction{
		UserID:   user.ID,
		PostID:   post.ID,
		Reaction: model.ReactionLike,
	}).Error)

	// A same-direction call now toggles off instead of duplicating.
	result, err := repo.SetReaction(ctx, user.ID, post.ID, model.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNone, result.Reaction)
}
