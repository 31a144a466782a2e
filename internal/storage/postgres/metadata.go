package postgres

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
		) VALUES ($1, $2, 1, $3, $4, $5, $6, NULL)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			version = sync_metadata.version + 1,
			last_modified_by = CASE WHEN EXCLUDED.last_modified_by = ''
				THEN sync_metadata.last_modified_by ELSE EXCLUDED.last_modified_by END,
			last_modified_at = EXCLUDED.last_modified_at,
			checksum = EXCLUDED.checksum,
			client_id = CASE WHEN EXCLUDED.client_id = ''
				THEN sync_metadata.client_id ELSE EXCLUDED.client_id END,
			deleted_at = NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		meta.EntityType.String(),
		meta.EntityID,
		meta.LastModifiedBy,
		meta.LastModifiedAt,
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
	query := `
		UPDATE sync_metadata
		SET version = version + 1,
		    checksum = $1,
		    last_modified_at = $2,
		    last_modified_by = CASE WHEN $3 = '' THEN last_modified_by ELSE $3 END,
		    client_id = CASE WHEN $4 = '' THEN client_id ELSE $4 END,
		    deleted_at = NULL
		WHERE entity_type = $5 AND entity_id = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		update.Checksum,
		update.At,
		update.Actor,
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
// version. Checksum and last_modified_by keep their values from the last
// content mutation. Returns false if no row matched the entity key.
func (s *Storage) MarkMetadataDeleted(ctx context.Context, entityType models.EntityType, entityID string, at time.Time) (bool, error) {
	query := `
		UPDATE sync_metadata
		SET version = version + 1,
		    last_modified_at = $1,
		    deleted_at = $1
		WHERE entity_type = $2 AND entity_id = $3
	`

	result, err := s.db.ExecContext(ctx, query, at, entityType.String(), entityID)
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
		WHERE entity_type = $1 AND entity_id = $2
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
		args = append(args, query.EntityType.String())
		sqlQuery += fmt.Sprintf(` AND entity_type = $%d`, len(args))
	}
	if !query.ModifiedSince.IsZero() {
		args = append(args, query.ModifiedSince)
		sqlQuery += fmt.Sprintf(` AND last_modified_at > $%d`, len(args))
	}
	if !query.IncludeDeleted {
		sqlQuery += ` AND deleted_at IS NULL`
	}

	sqlQuery += ` ORDER BY last_modified_at ASC`

	if query.Limit > 0 {
		args = append(args, query.Limit)
		sqlQuery += fmt.Sprintf(` LIMIT $%d`, len(args))
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
	var deletedAt sql.NullTime

	err := row.Scan(
		&entityType,
		&meta.EntityID,
		&meta.Version,
		&meta.LastModifiedBy,
		&meta.LastModifiedAt,
		&meta.Checksum,
		&meta.ClientID,
		&deletedAt,
	)

	if err != nil {
		return nil, err
	}

	meta.EntityType = models.EntityType(entityType)
	if deletedAt.Valid {
		meta.DeletedAt = &deletedAt.Time
	}

	return meta, nil
}
