package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewMetricsRepo(db)
	ctx := context.Background()

	seedUser(t, db, "a")
	seedUser(t, db, "b")
	seedPost(t, db, "live", model.PostStatusPublished)
	seedPost(t, db, "draft", model.PostStatusDraft)

	users, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	published, err := repo.CountPublishedPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), published)

	recent, err := repo.CountUsersSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), recent)

	none, err := repo.CountUsersSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), none)
}

func TestMetricsTopPostsPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewMetricsRepo(db)
	ctx := context.Background()

	hot := seedPost(t, db, "hot", model.PostStatusPublished)
	warm := seedPost(t, db, "warm", model.PostStatusPublished)
	hidden := seedPost(t, db, "hidden draft", model.PostStatusDraft)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", hot.ID).Update("likes_count", 9).Error)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", warm.ID).Update("likes_count", 4).Error)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", hidden.ID).Update("likes_count", 100).Error)

	top, err := repo.TopLiked(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, hot.ID, top[0].ID)
	assert.Equal(t, warm.ID, top[1].ID)
}

func TestSignupsPerDayBuckets(t *testing.T) {
	db := newTestDB(t)
	repo := NewMetricsRepo(db)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	for i, created := range []time.Time{day1, day1, day2} {
		user := seedUser(t, db, string(rune('a'+i)))
		require.NoError(t, db.Model(&model.User{}).
			Where("id = ?", user.ID).
			Update("created_at", created).Error)
	}

	buckets, err := repo.SignupsPerDay(ctx, day1.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 1, buckets[1].Count)
}
