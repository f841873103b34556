package cron

import log "log/slog"

// InitCron registers and starts the scheduled jobs.
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("Cron jobs registered")
	return nil
}
