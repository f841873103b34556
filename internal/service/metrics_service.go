package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/billing"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// MetricsTTL is how long a dashboard snapshot stays fresh.
const MetricsTTL = 15 * time.Minute

type MetricsService interface {
	// GetSnapshot returns the cached snapshot, recomputing it when
	// stale. A failed recompute yields a zeroed snapshot that is NOT
	// cached, so the next request retries.
	GetSnapshot(ctx context.Context) (*dto.MetricsResponse, error)
	// Refresh recomputes unconditionally; used by the warm job.
	Refresh(ctx context.Context) error
}

type MetricsServiceImpl struct {
	metricsRepo repository.MetricsRepo
	billing     billing.Client

	mu        sync.Mutex
	snapshot  *dto.MetricsSnapshot
	fetchedAt time.Time

	now func() time.Time
}

func NewMetricsService(metricsRepo repository.MetricsRepo, billingClient billing.Client) MetricsService {
	return &MetricsServiceImpl{
		metricsRepo: metricsRepo,
		billing:     billingClient,
		now:         time.Now,
	}
}

func (s *MetricsServiceImpl) GetSnapshot(ctx context.Context) (*dto.MetricsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.snapshot != nil && now.Sub(s.fetchedAt) < MetricsTTL {
		return &dto.MetricsResponse{Success: true, Metrics: s.snapshot}, nil
	}

	snapshot, err := s.compute(ctx, now)
	if err != nil {
		log.ErrorContext(ctx, "metrics recompute failed", "err", err)
		// Serve zeroes rather than stale or partial numbers; the next
		// request recomputes.
		return &dto.MetricsResponse{
			Success: true,
			Metrics: &dto.MetricsSnapshot{GeneratedAt: now},
		}, nil
	}

	s.snapshot = snapshot
	s.fetchedAt = now
	return &dto.MetricsResponse{Success: true, Metrics: snapshot}, nil
}

func (s *MetricsServiceImpl) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	snapshot, err := s.compute(ctx, now)
	if err != nil {
		return err
	}
	s.snapshot = snapshot
	s.fetchedAt = now
	return nil
}

func (s *MetricsServiceImpl) compute(ctx context.Context, now time.Time) (*dto.MetricsSnapshot, error) {
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)
	snapshot := &dto.MetricsSnapshot{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snapshot.TotalUsers, err = s.metricsRepo.CountUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.NewUsersWeek, err = s.metricsRepo.CountUsersSince(gctx, weekAgo)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.NewUsersMonth, err = s.metricsRepo.CountUsersSince(gctx, monthAgo)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.TotalPublished, err = s.metricsRepo.CountPublishedPosts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.NewPublishedWeek, err = s.metricsRepo.CountPublishedPostsSince(gctx, weekAgo)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.NewPublishedMonth, err = s.metricsRepo.CountPublishedPostsSince(gctx, monthAgo)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.ActiveSubscriptions, err = s.billing.CountActiveSubscriptions(gctx)
		return err
	})
	g.Go(func() error {
		posts, err := s.metricsRepo.TopLiked(gctx, consts.MetricsTopN)
		if err != nil {
			return err
		}
		snapshot.TopLiked = toTopPosts(posts)
		return nil
	})
	g.Go(func() error {
		posts, err := s.metricsRepo.TopCommented(gctx, consts.MetricsTopN)
		if err != nil {
			return err
		}
		snapshot.TopCommented = toTopPosts(posts)
		return nil
	})
	g.Go(func() error {
		var err error
		snapshot.SignupsPerDay, err = s.metricsRepo.SignupsPerDay(gctx, weekAgo)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.PublishesPerDay, err = s.metricsRepo.PublishesPerDay(gctx, weekAgo)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func toTopPosts(posts []*model.Post) []*dto.TopPostDTO {
	out := make([]*dto.TopPostDTO, 0, len(posts))
	for _, post := range posts {
		out = append(out, &dto.TopPostDTO{
			ID:            post.ID,
			Title:         post.Title,
			LikesCount:    post.LikesCount,
			CommentsCount: post.CommentsCount,
			ViewsCount:    post.ViewsCount,
		})
	}
	return out
}
