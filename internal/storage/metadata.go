package storage

import (
	"context"
	"time"

	"github.com/upfleet/synckit/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for sync metadata persistence.
// Version increments are atomic single-statement operations: concurrent
// writers must never produce lost updates or skipped versions.
type MetadataStorage interface {
	// CreateMetadata inserts a version-1 metadata row for the entity.
	// If a row already exists the call behaves as an update instead:
	// version is incremented atomically, checksum and modification info
	// are replaced (empty LastModifiedBy/ClientID preserve the stored
	// values) and deleted_at is cleared. Never resets the version.
	CreateMetadata(ctx context.Context, m *models.SyncMetadata) error

	// UpdateMetadata atomically increments the version and applies the
	// update in a single statement. Returns false when no row exists
	// for the entity (the caller decides whether to fall back to create).
	UpdateMetadata(ctx context.Context, up MetadataUpdate) (bool, error)

	// MarkMetadataDeleted increments the version and stamps deleted_at,
	// leaving checksum and last_modified_by untouched. Returns false
	// when no row exists for the entity.
	MarkMetadataDeleted(ctx context.Context, entityType models.EntityType, entityID string, at time.Time) (bool, error)

	// GetMetadata retrieves the metadata row for an entity.
	// Returns ErrMetadataNotFound if no row exists.
	GetMetadata(ctx context.Context, entityType models.EntityType, entityID string) (*models.SyncMetadata, error)

	// ListMetadata retrieves metadata rows matching the query,
	// ordered by last_modified_at ascending.
	// Returns empty slice if nothing matches.
	ListMetadata(ctx context.Context, q MetadataQuery) ([]*models.SyncMetadata, error)
}

// MetadataUpdate describes one tracked modification applied to an
// existing metadata row.
type MetadataUpdate struct {
	At         time.Time         // время изменения
	EntityType models.EntityType // тип сущности
	EntityID   string            // идентификатор сущности
	Checksum   string            // новый checksum изменения
	Actor      string            // кто изменил; "" = сохранить прежнее значение
	ClientID   string            // клиент-источник; "" = сохранить прежнее значение
}

// MetadataQuery filters bulk metadata reads for pull consumers.
type MetadataQuery struct {
	ModifiedSince  time.Time         // нижняя граница last_modified_at (zero = без границы)
	EntityType     models.EntityType // "" = все типы
	Limit          int               // 0 = без лимита
	IncludeDeleted bool              // отдавать ли soft-deleted записи
}
