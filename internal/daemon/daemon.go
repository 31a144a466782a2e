// Package daemon runs periodic maintenance sweeps over the sync queue:
// archiving or deleting old completed items and reporting organization
// sync health.
package daemon

import (
	"context"
	"log/slog"
	"time"

	"github.com/upfleet/synckit/internal/archive"
	"github.com/upfleet/synckit/internal/health"
	"github.com/upfleet/synckit/internal/router"
)

// DefaultInterval используется, если период не задан в конфиге.
const DefaultInterval = time.Hour

// Options configures the sweep schedule.
type Options struct {
	Organizations []string      // организации для health-проверок
	Interval      time.Duration // период между проходами
	CleanupDays   int           // возраст COMPLETED элементов для архива/удаления
}

type Daemon struct {
	logger   *slog.Logger
	router   *router.Router
	health   *health.Evaluator
	archiver *archive.Archiver // nil — старые элементы удаляются вместо архивации
	opts     Options
}

func New(logger *slog.Logger, r *router.Router, h *health.Evaluator, ar *archive.Archiver, opts Options) *Daemon {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Daemon{
		logger:   logger,
		router:   r,
		health:   h,
		archiver: ar,
		opts:     opts,
	}
}

// Run executes sweeps on the configured interval until ctx is canceled.
// The first sweep starts immediately.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info("maintenance daemon started",
		"interval", d.opts.Interval,
		"organizations", len(d.opts.Organizations),
		"archiving", d.archiver != nil,
	)

	d.Sweep(ctx)

	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("maintenance daemon stopping", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			d.Sweep(ctx)
		}
	}
}

// Sweep runs a single maintenance pass. Ошибки логируются, но не
// останавливают демон: следующий проход может пройти успешно.
func (d *Daemon) Sweep(ctx context.Context) {
	d.sweepQueue(ctx)
	d.sweepHealth(ctx)
}

func (d *Daemon) sweepQueue(ctx context.Context) {
	if d.archiver != nil {
		cutoff := time.Now().AddDate(0, 0, -d.opts.CleanupDays)
		manifest, err := d.archiver.Archive(ctx, cutoff)
		if err != nil {
			d.logger.Error("archive sweep failed", "error", err)
			return
		}
		if manifest == nil {
			d.logger.Debug("archive sweep found nothing to move")
			return
		}
		d.logger.Info("archive sweep completed", "items", manifest.Items, "data_key", manifest.DataKey)
		return
	}

	deleted, err := d.router.CleanupQueue(ctx, d.opts.CleanupDays)
	if err != nil {
		d.logger.Error("cleanup sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		d.logger.Info("cleanup sweep completed", "deleted", deleted)
	}
}

func (d *Daemon) sweepHealth(ctx context.Context) {
	for _, org := range d.opts.Organizations {
		report, err := d.health.Evaluate(ctx, org)
		if err != nil {
			d.logger.Error("health sweep failed", "organization_id", org, "error", err)
			continue
		}
		if len(report.Recommendations) > 0 {
			d.logger.Warn("sync health degraded",
				"organization_id", org,
				"health_score", report.HealthScore,
				"sync_backlog", report.SyncBacklog,
				"failure_rate", report.FailureRate,
				"recommendations", report.Recommendations,
			)
			continue
		}
		d.logger.Debug("sync health ok", "organization_id", org, "health_score", report.HealthScore)
	}
}
