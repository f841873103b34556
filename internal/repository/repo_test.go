package repository

import (
	"Inkwell/internal/model"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Label{},
		&model.PostLabel{},
		&model.PostReaction{},
		&model.FavoritePost{},
		&model.PostComment{},
		&model.PostView{},
		&model.PushSubscription{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, externalID string) *model.User {
	t.Helper()
	user := &model.User{ExternalID: externalID, Email: externalID + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, title string, status int8) *model.Post {
	t.Helper()
	post := &model.Post{
		Title:   title,
		Content: "content of " + title,
		Preview: "preview of " + title,
		Status:  status,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func attachLabels(t *testing.T, db *gorm.DB, postID uint64, captions ...string) {
	t.Helper()
	for _, caption := range captions {
		label := model.Label{Caption: caption}
		require.NoError(t, db.Where("caption = ?", caption).FirstOrCreate(&label).Error)
		require.NoError(t, db.Create(&model.PostLabel{PostID: postID, LabelID: label.ID}).Error)
	}
}
