package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
)

// CreateQueueItem inserts a new queue item
func (s *Storage) CreateQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	query := `
		INSERT INTO sync_queue_items (
			id, client_id, entity_type, operation, payload,
			status, retry_count, error_message, created_at, processed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`

	payload := item.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.ClientID,
		item.EntityType.String(),
		string(item.Operation),
		string(payload),
		string(item.Status),
		item.RetryCount,
		item.ErrorMessage,
		item.CreatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert queue item: %w", err)
	}

	return nil
}

// GetQueueItem retrieves a single queue item by ID
// Returns ErrItemNotFound if the item doesn't exist
func (s *Storage) GetQueueItem(ctx context.Context, id string) (*models.SyncQueueItem, error) {
	query := `
		SELECT id, client_id, entity_type, operation, payload,
		       status, retry_count, error_message, created_at, processed_at
		FROM sync_queue_items
		WHERE id = ?
	`

	item, err := scanQueueItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get queue item: %w", err)
	}

	return item, nil
}

// ListPendingItems retrieves all PENDING items for a client, oldest first
// Returns empty slice if the queue is empty
func (s *Storage) ListPendingItems(ctx context.Context, clientID string) ([]*models.SyncQueueItem, error) {
	query := `
		SELECT id, client_id, entity_type, operation, payload,
		       status, retry_count, error_message, created_at, processed_at
		FROM sync_queue_items
		WHERE client_id = ? AND status = ?
		ORDER BY created_at ASC
	`

	return s.queryItems(ctx, query, clientID, string(models.StatusPending))
}

// ListRetryableFailed retrieves FAILED items for a client whose retry count
// is still below maxRetries, oldest first
func (s *Storage) ListRetryableFailed(ctx context.Context, clientID string, maxRetries int) ([]*models.SyncQueueItem, error) {
	query := `
		SELECT id, client_id, entity_type, operation, payload,
		       status, retry_count, error_message, created_at, processed_at
		FROM sync_queue_items
		WHERE client_id = ? AND status = ? AND retry_count < ?
		ORDER BY created_at ASC
	`

	return s.queryItems(ctx, query, clientID, string(models.StatusFailed), maxRetries)
}

// MarkItemsFailed sets status FAILED, the error message and processed_at
// for every listed item. No-op for an empty id list.
func (s *Storage) MarkItemsFailed(ctx context.Context, ids []string, errorMessage string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE sync_queue_items
		SET status = ?, error_message = ?, processed_at = ?
		WHERE id IN (%s)
	`, placeholders(len(ids)))

	args := []any{string(models.StatusFailed), errorMessage, at.Unix()}
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark items failed: %w", err)
	}

	return nil
}

// ResetItemsPending returns the listed items to PENDING and clears their
// error message. retry_count сохраняется, чтобы история попыток не терялась.
// Returns the number of rows changed.
func (s *Storage) ResetItemsPending(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
		UPDATE sync_queue_items
		SET status = ?, error_message = '', processed_at = NULL
		WHERE id IN (%s)
	`, placeholders(len(ids)))

	args := []any{string(models.StatusPending)}
	for _, id := range ids {
		args = append(args, id)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to reset items pending: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// MarkItemCompleted sets status COMPLETED and processed_at
// Returns ErrItemNotFound if the item doesn't exist
func (s *Storage) MarkItemCompleted(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE sync_queue_items
		SET status = ?, error_message = '', processed_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, string(models.StatusCompleted), at.Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to mark item completed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrItemNotFound
	}

	return nil
}

// IncrementItemRetry records a recoverable processing failure:
// retry_count+1 with the error message, status stays PENDING
// Returns ErrItemNotFound if the item doesn't exist
func (s *Storage) IncrementItemRetry(ctx context.Context, id string, errorMessage string) error {
	query := `
		UPDATE sync_queue_items
		SET retry_count = retry_count + 1, error_message = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to increment item retry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrItemNotFound
	}

	return nil
}

// ListCompletedBefore retrieves COMPLETED items processed before the cutoff,
// oldest first, up to limit (0 = no limit)
func (s *Storage) ListCompletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*models.SyncQueueItem, error) {
	query := `
		SELECT id, client_id, entity_type, operation, payload,
		       status, retry_count, error_message, created_at, processed_at
		FROM sync_queue_items
		WHERE status = ? AND processed_at IS NOT NULL AND processed_at < ?
		ORDER BY processed_at ASC
	`

	args := []any{string(models.StatusCompleted), cutoff.Unix()}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	return s.queryItems(ctx, query, args...)
}

// DeleteCompletedBefore removes COMPLETED items processed before the cutoff
// Returns the number of deleted items
func (s *Storage) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM sync_queue_items
		WHERE status = ? AND processed_at IS NOT NULL AND processed_at < ?
	`

	result, err := s.db.ExecContext(ctx, query, string(models.StatusCompleted), cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed items: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// GetQueueStats returns the aggregate queue snapshot for a client:
// counts by status, pending counts by entity type and the oldest
// pending item's creation time
func (s *Storage) GetQueueStats(ctx context.Context, clientID string) (*models.QueueStats, error) {
	stats := &models.QueueStats{
		ByStatus:      make(map[models.QueueStatus]int64),
		PendingByType: make(map[models.EntityType]int64),
	}

	byStatus := `
		SELECT status, COUNT(*)
		FROM sync_queue_items
		WHERE client_id = ?
		GROUP BY status
	`

	if err := s.countInto(ctx, byStatus, clientID, func(key string, count int64) {
		stats.ByStatus[models.QueueStatus(key)] = count
	}); err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	byType := `
		SELECT entity_type, COUNT(*)
		FROM sync_queue_items
		WHERE client_id = ? AND status = 'PENDING'
		GROUP BY entity_type
	`

	if err := s.countInto(ctx, byType, clientID, func(key string, count int64) {
		stats.PendingByType[models.EntityType(key)] = count
	}); err != nil {
		return nil, fmt.Errorf("failed to count by entity type: %w", err)
	}

	oldest := `
		SELECT MIN(created_at)
		FROM sync_queue_items
		WHERE client_id = ? AND status = 'PENDING'
	`

	var oldestUnix sql.NullInt64
	if err := s.db.QueryRowContext(ctx, oldest, clientID).Scan(&oldestUnix); err != nil {
		return nil, fmt.Errorf("failed to get oldest pending: %w", err)
	}
	if oldestUnix.Valid {
		t := unixToTime(oldestUnix.Int64)
		stats.OldestPending = &t
	}

	return stats, nil
}

// CountQueueByOrganization returns total and failed item counts across all
// clients of the organization in one query
func (s *Storage) CountQueueByOrganization(ctx context.Context, organizationID string) (int64, int64, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN q.status = 'FAILED' THEN 1 ELSE 0 END), 0)
		FROM sync_queue_items q
		JOIN sync_clients c ON c.id = q.client_id
		JOIN users u ON u.id = c.user_id
		WHERE u.organization_id = ?
	`

	var total, failed int64
	if err := s.db.QueryRowContext(ctx, query, organizationID).Scan(&total, &failed); err != nil {
		return 0, 0, fmt.Errorf("failed to count queue by organization: %w", err)
	}

	return total, failed, nil
}

// queryItems выполняет запрос и сканирует все элементы очереди
func (s *Storage) queryItems(ctx context.Context, query string, args ...any) ([]*models.SyncQueueItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue items: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	items := []*models.SyncQueueItem{}

	for rows.Next() {
		item, err := scanQueueItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// countInto выполняет GROUP BY запрос и передает пары (ключ, количество)
func (s *Storage) countInto(ctx context.Context, query string, clientID string, add func(key string, count int64)) error {
	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		add(key, count)
	}

	return rows.Err()
}

func scanQueueItem(row scanner) (*models.SyncQueueItem, error) {
	item := &models.SyncQueueItem{}
	var entityType, operation, status, payload string
	var createdAt int64
	var processedAt sql.NullInt64

	err := row.Scan(
		&item.ID,
		&item.ClientID,
		&entityType,
		&operation,
		&payload,
		&status,
		&item.RetryCount,
		&item.ErrorMessage,
		&createdAt,
		&processedAt,
	)

	if err != nil {
		return nil, err
	}

	item.EntityType = models.EntityType(entityType)
	item.Operation = models.Operation(operation)
	item.Status = models.QueueStatus(status)
	item.Payload = []byte(payload)
	item.CreatedAt = unixToTime(createdAt)
	if processedAt.Valid {
		t := unixToTime(processedAt.Int64)
		item.ProcessedAt = &t
	}

	return item, nil
}

// placeholders возвращает строку вида "?,?,?" для IN-условий
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
