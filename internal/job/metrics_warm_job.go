package job

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/service"
	"context"
	log "log/slog"
	"time"
)

// MetricsWarmJob refreshes the dashboard snapshot on a schedule so the
// first admin visit after a quiet period does not pay the recompute. A
// redis lock keeps replicas from recomputing in parallel.
type MetricsWarmJob struct {
	metricsService service.MetricsService
}

func NewMetricsWarmJob(metricsService service.MetricsService) *MetricsWarmJob {
	return &MetricsWarmJob{metricsService: metricsService}
}

func (s *MetricsWarmJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lockValue := time.Now().UnixNano()
	locked, err := redis.TryLock(ctx, consts.MetricsWarmLock, lockValue, time.Minute, 0)
	if err != nil {
		log.ErrorContext(ctx, "metrics warm lock failed", "err", err)
		return
	}
	if !locked {
		return
	}
	defer redis.UnLock(ctx, consts.MetricsWarmLock, lockValue)

	if err := s.metricsService.Refresh(ctx); err != nil {
		log.ErrorContext(ctx, "metrics warm refresh failed", "err", err)
		return
	}
	log.InfoContext(ctx, "metrics snapshot warmed")
}
