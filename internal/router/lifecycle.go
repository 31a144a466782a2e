package router

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/validation"
)

// EnqueueChange records one offline mutation in the sync queue.
// The item starts PENDING with an empty retry history.
func (r *Router) EnqueueChange(ctx context.Context, clientID string, entityType models.EntityType, op models.Operation, payload json.RawMessage) (*models.SyncQueueItem, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client id cannot be empty")
	}
	if err := validation.ValidateEntityType(string(entityType)); err != nil {
		return nil, err
	}
	switch op {
	case models.OpCreate, models.OpUpdate, models.OpDelete:
	default:
		return nil, fmt.Errorf("unknown queue operation %q", op)
	}

	item := &models.SyncQueueItem{
		CreatedAt:  time.Now(),
		ID:         uuid.New().String(),
		ClientID:   clientID,
		EntityType: entityType,
		Operation:  op,
		Status:     models.StatusPending,
		Payload:    payload,
	}
	if err := r.queue.CreateQueueItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to enqueue change: %w", err)
	}

	r.logger.Debug("change enqueued",
		"item_id", item.ID,
		"client_id", clientID,
		"entity_type", entityType,
		"operation", op)

	return item, nil
}

// CompleteItem marks a queue item delivered.
func (r *Router) CompleteItem(ctx context.Context, itemID string) error {
	if err := r.queue.MarkItemCompleted(ctx, itemID, time.Now()); err != nil {
		return fmt.Errorf("failed to complete item: %w", err)
	}
	return nil
}

// RecordItemFailure registers a recoverable processing failure.
// The item stays PENDING until a last-chance pass abandons it.
func (r *Router) RecordItemFailure(ctx context.Context, itemID, errorMessage string) error {
	if err := r.queue.IncrementItemRetry(ctx, itemID, errorMessage); err != nil {
		return fmt.Errorf("failed to record item failure: %w", err)
	}
	return nil
}

// FailItems moves the listed items to FAILED with the given message.
func (r *Router) FailItems(ctx context.Context, ids []string, errorMessage string) error {
	if err := r.queue.MarkItemsFailed(ctx, ids, errorMessage, time.Now()); err != nil {
		return fmt.Errorf("failed to mark items failed: %w", err)
	}
	return nil
}
