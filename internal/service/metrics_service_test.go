package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingMetricsRepo serves fixed numbers and counts recomputes. The
// since-bounded counts are keyed by the exact bound the service asks
// for, so week and month windows can carry different numbers.
type countingMetricsRepo struct {
	calls      int
	users      int64
	usersSince map[time.Time]int64
	postsSince map[time.Time]int64
	err        error
}

func (s *countingMetricsRepo) CountUsers(context.Context) (int64, error) {
	s.calls++
	return s.users, s.err
}

func (s *countingMetricsRepo) CountUsersSince(_ context.Context, since time.Time) (int64, error) {
	return s.usersSince[since], s.err
}

func (s *countingMetricsRepo) CountPublishedPosts(context.Context) (int64, error) {
	return 0, s.err
}

func (s *countingMetricsRepo) CountPublishedPostsSince(_ context.Context, since time.Time) (int64, error) {
	return s.postsSince[since], s.err
}

func (s *countingMetricsRepo) TopLiked(context.Context, int) ([]*model.Post, error) {
	return nil, s.err
}

func (s *countingMetricsRepo) TopCommented(context.Context, int) ([]*model.Post, error) {
	return nil, s.err
}

func (s *countingMetricsRepo) SignupsPerDay(context.Context, time.Time) ([]repository.DailyCount, error) {
	return nil, s.err
}

func (s *countingMetricsRepo) PublishesPerDay(context.Context, time.Time) ([]repository.DailyCount, error) {
	return nil, s.err
}

func newClockedMetricsService(repo repository.MetricsRepo, billing *stubBilling) (*MetricsServiceImpl, *time.Time) {
	svc := NewMetricsService(repo, billing).(*MetricsServiceImpl)
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestMetricsSnapshotCachedWithinTTL(t *testing.T) {
	repo := &countingMetricsRepo{users: 42}
	svc, clock := newClockedMetricsService(repo, &stubBilling{activeCount: 7})
	ctx := context.Background()

	resp, err := svc.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Metrics.TotalUsers)
	assert.Equal(t, int64(7), resp.Metrics.ActiveSubscriptions)
	assert.Equal(t, 1, repo.calls)

	// Within the TTL the snapshot is served as-is, even after the data
	// changed underneath.
	repo.users = 100
	*clock = clock.Add(14 * time.Minute)
	resp, err = svc.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Metrics.TotalUsers)
	assert.Equal(t, 1, repo.calls)

	// Past the TTL it recomputes.
	*clock = clock.Add(2 * time.Minute)
	resp, err = svc.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Metrics.TotalUsers)
	assert.Equal(t, 2, repo.calls)
}

func TestMetricsSnapshotWeekAndMonthWindows(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	repo := &countingMetricsRepo{
		users: 42,
		usersSince: map[time.Time]int64{
			now.AddDate(0, 0, -7):  3,
			now.AddDate(0, 0, -30): 11,
		},
		postsSince: map[time.Time]int64{
			now.AddDate(0, 0, -7):  2,
			now.AddDate(0, 0, -30): 5,
		},
	}
	svc, _ := newClockedMetricsService(repo, &stubBilling{})

	resp, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Metrics.NewUsersWeek)
	assert.Equal(t, int64(11), resp.Metrics.NewUsersMonth)
	assert.Equal(t, int64(2), resp.Metrics.NewPublishedWeek)
	assert.Equal(t, int64(5), resp.Metrics.NewPublishedMonth)
}

func TestMetricsSnapshotFailureServesZeroesUncached(t *testing.T) {
	repo := &countingMetricsRepo{users: 42, err: assert.AnError}
	svc, _ := newClockedMetricsService(repo, &stubBilling{})
	ctx := context.Background()

	resp, err := svc.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(0), resp.Metrics.TotalUsers)

	// The failure was not cached: once the source recovers the very
	// next request sees real numbers.
	repo.err = nil
	resp, err = svc.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Metrics.TotalUsers)
}

func TestMetricsRefreshUpdatesCache(t *testing.T) {
	repo := &countingMetricsRepo{users: 5}
	svc, _ := newClockedMetricsService(repo, &stubBilling{})
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx))

	repo.users = 50
	resp, err := svc.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Metrics.TotalUsers)
}

func TestMetricsRefreshPropagatesErrors(t *testing.T) {
	repo := &countingMetricsRepo{err: assert.AnError}
	svc, _ := newClockedMetricsService(repo, &stubBilling{})

	assert.Error(t, svc.Refresh(context.Background()))
}
