// Package health computes organization-wide sync health snapshots.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/upfleet/synckit/internal/storage"
	"github.com/upfleet/synckit/pkg/api"
)

// Thresholds tune the health scoring and the recommendations.
type Thresholds struct {
	FailureRateWarn float64 // доля отказов, выше которой выдаётся рекомендация
	BacklogLimit    int64   // очередь длиннее лимита снижает оценку
	BacklogPenalty  int     // штраф к оценке за превышение лимита
}

// DefaultThresholds returns the limits used when the host doesn't
// override them.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FailureRateWarn: 0.2,
		BacklogLimit:    50,
		BacklogPenalty:  20,
	}
}

// Evaluator builds per-organization sync health reports.
type Evaluator struct {
	logger     *slog.Logger
	queue      storage.QueueStorage
	clients    storage.ClientStorage
	thresholds Thresholds
}

// New creates an Evaluator. Zero threshold fields fall back to
// DefaultThresholds.
func New(logger *slog.Logger, queue storage.QueueStorage, clients storage.ClientStorage, thresholds Thresholds) *Evaluator {
	defaults := DefaultThresholds()
	if thresholds.FailureRateWarn <= 0 {
		thresholds.FailureRateWarn = defaults.FailureRateWarn
	}
	if thresholds.BacklogLimit <= 0 {
		thresholds.BacklogLimit = defaults.BacklogLimit
	}
	if thresholds.BacklogPenalty <= 0 {
		thresholds.BacklogPenalty = defaults.BacklogPenalty
	}

	return &Evaluator{
		logger:     logger,
		queue:      queue,
		clients:    clients,
		thresholds: thresholds,
	}
}

// Evaluate computes the health report of one organization.
// The score starts at 100, loses BacklogPenalty points when the pending
// backlog exceeds BacklogLimit and one point per percent of failed
// items, clamped to [0, 100].
func (e *Evaluator) Evaluate(ctx context.Context, organizationID string) (*api.HealthReport, error) {
	backlogs, err := e.clients.ListClientBacklogs(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client backlogs: %w", err)
	}

	var backlog int64
	for _, b := range backlogs {
		backlog += b.Pending
	}

	total, failed, err := e.queue.CountQueueByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count queue items: %w", err)
	}

	// Пустая очередь считается здоровой, деления на ноль нет.
	var failureRate float64
	if total > 0 {
		failureRate = float64(failed) / float64(total)
	}

	score := 100
	if backlog > e.thresholds.BacklogLimit {
		score -= e.thresholds.BacklogPenalty
	}
	score -= int(math.Round(failureRate * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	report := &api.HealthReport{
		OrganizationID:  organizationID,
		Recommendations: e.recommend(len(backlogs), backlog, failureRate),
		ActiveClients:   len(backlogs),
		SyncBacklog:     backlog,
		FailureRate:     failureRate,
		HealthScore:     score,
	}

	e.logger.Debug("sync health evaluated",
		"organization_id", organizationID,
		"score", report.HealthScore,
		"backlog", report.SyncBacklog,
		"failure_rate", report.FailureRate)

	return report, nil
}

func (e *Evaluator) recommend(activeClients int, backlog int64, failureRate float64) []string {
	recs := []string{}
	if activeClients == 0 {
		recs = append(recs, "No sync clients registered for this organization")
	}
	if backlog > e.thresholds.BacklogLimit {
		recs = append(recs, fmt.Sprintf("Sync backlog exceeds %d items, consider triggering a manual sync", e.thresholds.BacklogLimit))
	}
	if failureRate > e.thresholds.FailureRateWarn {
		recs = append(recs, fmt.Sprintf("Sync failure rate is above %.0f%%, inspect failed queue items", e.thresholds.FailureRateWarn*100))
	}
	return recs
}
