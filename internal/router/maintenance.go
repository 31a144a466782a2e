package router

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/upfleet/synckit/pkg/api"
)

// RetryFailedItems returns FAILED items of the client whose retry budget
// is not exhausted back to PENDING and enqueues a single retry-sync job
// covering all of them. Returns the number of items reset; zero eligible
// items produce no job. maxRetries <= 0 falls back to the policy limit.
func (r *Router) RetryFailedItems(ctx context.Context, clientID string, maxRetries int) (int, error) {
	if maxRetries <= 0 {
		maxRetries = r.policy.MaxRetries
	}

	items, err := r.queue.ListRetryableFailed(ctx, clientID, maxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to list retryable items: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	ids := itemIDs(items)
	reset, err := r.queue.ResetItemsPending(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to reset items: %w", err)
	}

	job := &api.Job{
		EnqueuedAt: time.Now(),
		ID:         uuid.New().String(),
		Type:       api.JobRetrySync,
		ClientID:   clientID,
		ItemIDs:    ids,
	}
	if err := r.jobs.Enqueue(ctx, job); err != nil {
		return 0, fmt.Errorf("failed to enqueue retry-sync job: %w", err)
	}

	r.logger.Info("failed items scheduled for retry",
		"job_id", job.ID,
		"client_id", clientID,
		"count", reset)

	return int(reset), nil
}

// CleanupQueue deletes COMPLETED items processed more than daysToKeep
// days ago and returns the number of deleted items. daysToKeep <= 0
// falls back to the policy limit.
func (r *Router) CleanupQueue(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep <= 0 {
		daysToKeep = r.policy.CleanupDays
	}

	cutoff := time.Now().AddDate(0, 0, -daysToKeep)
	deleted, err := r.queue.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup sync queue: %w", err)
	}

	r.logger.Info("sync queue cleaned up",
		"deleted", deleted,
		"days_kept", daysToKeep)

	return deleted, nil
}

// QueueStats returns the client's queue snapshot in transport format.
func (r *Router) QueueStats(ctx context.Context, clientID string) (*api.QueueStats, error) {
	stats, err := r.queue.GetQueueStats(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue stats: %w", err)
	}

	out := &api.QueueStats{
		OldestPending: stats.OldestPending,
		ByStatus:      make(map[string]int64, len(stats.ByStatus)),
		PendingByType: make(map[string]int64, len(stats.PendingByType)),
		ClientID:      clientID,
	}
	for status, n := range stats.ByStatus {
		out.ByStatus[string(status)] = n
		out.Total += n
	}
	for entityType, n := range stats.PendingByType {
		out.PendingByType[string(entityType)] = n
	}

	return out, nil
}
