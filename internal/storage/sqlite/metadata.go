package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
)

// CreateMetadata inserts a version-1 metadata row for the entity.
// If a row already exists the statement degrades to an update: the version
// is incremented atomically, checksum and modification info are replaced and
// deleted_at is cleared. The version counter is never reset.
func (s *Storage) CreateMetadata(ctx context.Context, meta *models.SyncMetadata) error {
	query := `
		INSERT INTO sync_metadata (
			entity_type, entity_id, version, last_modified_by,
			last_modified_at, checksum, client_id, deleted_at
		) VALUES (?, ?, 1, ?, ?, ?, ?, NULL)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			version = version + 1,
			last_modified_by = CASE WHEN excluded.last_modified_by = ''
				THEN sync_metadata.last_modified_by ELSE excluded.last_modified_by END,
			last_modified_at = excluded.last_modified_at,
			checksum = excluded.checksum,
			client_id = CASE WHEN excluded.client_id = ''
				THEN sync_metadata.client_id ELSE excluded.client_id END,
			deleted_at = NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		meta.EntityType.String(),
		meta.EntityID,
		meta.LastModifiedBy,
		meta.LastModifiedAt.Unix(),
		meta.Checksum,
		meta.ClientID,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert metadata: %w", err)
	}

	return nil
}

// UpdateMetadata bumps the version and replaces the checksum in a single
// statement. Empty Actor/ClientID preserve the stored values.
// Returns false if no row matched the entity key.
func (s *Storage) UpdateMetadata(ctx context.Context, update storage.MetadataUpdate) (bool, error) {
	// Инкремент версии и замена контрольной суммы одним запросом,
	// без чтения текущего состояния
	query := `
		UPDATE sync_metadata
		SET version = version + 1,
		    checksum = ?,
		    last_modified_at = ?,
		    last_modified_by = CASE WHEN ? = '' THEN last_modified_by ELSE ? END,
		    client_id = CASE WHEN ? = '' THEN client_id ELSE ? END,
		    deleted_at = NULL
		WHERE entity_type = ? AND entity_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		update.Checksum,
		update.At.Unix(),
		update.Actor,
		update.Actor,
		update.ClientID,
		update.ClientID,
		update.EntityType.String(),
		update.EntityID,
	)

	if err != nil {
		return false, fmt.Errorf("failed to update metadata: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// MarkMetadataDeleted performs a soft delete: sets deleted_at and bumps the
// version (deletion is a tracked change). Checksum and last_modified_by keep
// their values from the last content mutation.
// Returns false if no row matched the entity key.
func (s *Storage) MarkMetadataDeleted(ctx context.Context, entityType models.EntityType, entityID string, at time.Time) (bool, error) {
	query := `
		UPDATE sync_metadata
		SET version = version + 1,
		    last_modified_at = ?,
		    deleted_at = ?
		WHERE entity_type = ? AND entity_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, at.Unix(), at.Unix(), entityType.String(), entityID)
	if err != nil {
		return false, fmt.Errorf("failed to mark metadata deleted: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// GetMetadata retrieves the metadata row for an entity.
// Returns ErrMetadataNotFound if no row exists.
func (s *Storage) GetMetadata(ctx context.Context, entityType models.EntityType, entityID string) (*models.SyncMetadata, error) {
	query := `
		SELECT entity_type, entity_id, version, last_modified_by,
		       last_modified_at, checksum, client_id, deleted_at
		FROM sync_metadata
		WHERE entity_type = ? AND entity_id = ?
	`

	meta, err := scanMetadata(s.db.QueryRowContext(ctx, query, entityType.String(), entityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMetadataNotFound
		}
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}

	return meta, nil
}

// ListMetadata returns metadata rows matching the query,
// ordered by last_modified_at ascending.
func (s *Storage) ListMetadata(ctx context.Context, query storage.MetadataQuery) ([]*models.SyncMetadata, error) {
	sqlQuery := `
		SELECT entity_type, entity_id, version, last_modified_by,
		       last_modified_at, checksum, client_id, deleted_at
		FROM sync_metadata
		WHERE 1 = 1
	`
	args := []any{}

	if query.EntityType != "" {
		sqlQuery += ` AND entity_type = ?`
		args = append(args, query.EntityType.String())
	}
	if !query.ModifiedSince.IsZero() {
		sqlQuery += ` AND last_modified_at > ?`
		args = append(args, query.ModifiedSince.Unix())
	}
	if !query.IncludeDeleted {
		sqlQuery += ` AND deleted_at IS NULL`
	}

	sqlQuery += ` ORDER BY last_modified_at ASC`

	if query.Limit > 0 {
		sqlQuery += ` LIMIT ?`
		args = append(args, query.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var metas []*models.SyncMetadata

	for rows.Next() {
		meta, err := scanMetadata(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}
		metas = append(metas, meta)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return metas, nil
}

// scanner объединяет sql.Row и sql.Rows для общего кода сканирования
type scanner interface {
	Scan(dest ...any) error
}

func scanMetadata(row scanner) (*models.SyncMetadata, error) {
	meta := &models.SyncMetadata{}
	var entityType string
	var modifiedAt int64
	var deletedAt sql.NullInt64

	err := row.Scan(
		&entityType,
		&meta.EntityID,
		&meta.Version,
		&meta.LastModifiedBy,
		&modifiedAt,
		&meta.Checksum,
		&meta.ClientID,
		&deletedAt,
	)

	if err != nil {
		return nil, err
	}

	meta.EntityType = models.EntityType(entityType)
	meta.LastModifiedAt = unixToTime(modifiedAt)
	if deletedAt.Valid {
		t := unixToTime(deletedAt.Int64)
		meta.DeletedAt = &t
	}

	return meta, nil
}

func unixToTime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0)
}
