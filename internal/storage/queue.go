package storage

import (
	"context"
	"time"

	"github.com/upfleet/synckit/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for sync queue item persistence.
type QueueStorage interface {
	// CreateQueueItem inserts a new queue item.
	CreateQueueItem(ctx context.Context, item *models.SyncQueueItem) error

	// GetQueueItem retrieves a queue item by id.
	// Returns ErrItemNotFound if the item doesn't exist.
	GetQueueItem(ctx context.Context, id string) (*models.SyncQueueItem, error)

	// ListPendingItems retrieves all PENDING items for a client,
	// oldest first. Returns empty slice if the queue is empty.
	ListPendingItems(ctx context.Context, clientID string) ([]*models.SyncQueueItem, error)

	// ListRetryableFailed retrieves FAILED items for a client whose
	// retry_count is below maxRetries, oldest first.
	ListRetryableFailed(ctx context.Context, clientID string, maxRetries int) ([]*models.SyncQueueItem, error)

	// MarkItemsFailed sets status FAILED, the error message and
	// processed_at for every listed item.
	MarkItemsFailed(ctx context.Context, ids []string, errorMessage string, at time.Time) error

	// ResetItemsPending returns the listed items to PENDING and clears
	// their error message, keeping retry_count. Returns the number of
	// rows changed.
	ResetItemsPending(ctx context.Context, ids []string) (int64, error)

	// MarkItemCompleted sets status COMPLETED and processed_at.
	// Returns ErrItemNotFound if the item doesn't exist.
	MarkItemCompleted(ctx context.Context, id string, at time.Time) error

	// IncrementItemRetry records a recoverable processing failure:
	// retry_count+1 and the error message, status stays PENDING.
	// Returns ErrItemNotFound if the item doesn't exist.
	IncrementItemRetry(ctx context.Context, id string, errorMessage string) error

	// ListCompletedBefore retrieves COMPLETED items processed before the
	// cutoff, oldest first, up to limit (0 = no limit). Used by the archiver.
	ListCompletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*models.SyncQueueItem, error)

	// DeleteCompletedBefore removes COMPLETED items processed before the
	// cutoff. Returns the number of deleted items.
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// GetQueueStats returns the aggregate queue snapshot for a client.
	GetQueueStats(ctx context.Context, clientID string) (*models.QueueStats, error)

	// CountQueueByOrganization returns total and failed item counts
	// across all clients of the organization in one atomic read.
	CountQueueByOrganization(ctx context.Context, organizationID string) (total, failed int64, err error)
}
