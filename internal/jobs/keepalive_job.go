package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Pinger is the slice of the broadcast hub the keepalive job needs.
type Pinger interface {
	Ping()
}

// KeepaliveJob periodically pings every websocket viewer so dead connections
// are detected and dropped between broadcasts.
type KeepaliveJob struct {
	hub    Pinger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewKeepaliveJob creates a new keepalive job over the given hub.
func NewKeepaliveJob(hub Pinger, logger *slog.Logger) *KeepaliveJob {
	return &KeepaliveJob{
		hub:    hub,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "keepalive_job"),
	}
}

// Start begins the keepalive job to run every 30 seconds.
func (j *KeepaliveJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.hub.Ping()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Keepalive job started (running every 30 seconds)")
	return nil
}

// Stop stops the keepalive job.
func (j *KeepaliveJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Keepalive job stopped")
}
