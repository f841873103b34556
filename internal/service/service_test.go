package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/kafka"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

// stubBilling answers subscription checks from fixed values.
type stubBilling struct {
	active      map[string]bool
	activeCount int64
	err         error
}

func (s *stubBilling) HasActiveSubscription(_ context.Context, customerID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.active[customerID], nil
}

func (s *stubBilling) CountActiveSubscriptions(context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.activeCount, nil
}

// stubProducer records published events instead of talking to a broker.
type stubProducer struct {
	events []*kafka.EngagementEvent
}

func (s *stubProducer) PublishEngagement(_ context.Context, event *kafka.EngagementEvent) {
	s.events = append(s.events, event)
}

func (s *stubProducer) Close() error { return nil }
