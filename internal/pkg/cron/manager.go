package cron

import (
	"Inkwell/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	metricsWarmJob *job.MetricsWarmJob
}

func NewCronManager(metricsWarmJob *job.MetricsWarmJob) *Manager {
	return &Manager{
		engine:         cron.New(),
		metricsWarmJob: metricsWarmJob,
	}
}

// RegisterJobs wires the scheduled work. The metrics warm job keeps the
// admin dashboard snapshot from expiring between visits.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 15m", s.metricsWarmJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
