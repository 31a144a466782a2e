// Package tracker is the interception layer of the sync engine: it wraps
// entity mutations and keeps sync metadata in step with them. Wrap the
// actual persistence call in the mutate callback; the tracker resolves
// affected ids before the mutation runs and records metadata only after
// it commits.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/upfleet/synckit/internal/checksum"
	"github.com/upfleet/synckit/internal/entity"
	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
)

// contextKey тип для ключей контекста
type contextKey string

// clientIDKey ключ для хранения client_id в контексте
const clientIDKey contextKey = "client_id"

// WithClient returns a context carrying the originating sync client id.
// Metadata recorded under this context is attributed to that client.
func WithClient(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// ClientFrom извлекает client_id из контекста; "" если клиент не задан
func ClientFrom(ctx context.Context) string {
	clientID, _ := ctx.Value(clientIDKey).(string)
	return clientID
}

// Tracker records sync metadata around host entity mutations.
type Tracker struct {
	logger   *slog.Logger
	store    storage.MetadataStorage
	registry *entity.Registry
}

// New creates a new mutation tracker.
func New(logger *slog.Logger, store storage.MetadataStorage, registry *entity.Registry) *Tracker {
	return &Tracker{
		logger:   logger,
		store:    store,
		registry: registry,
	}
}

// TrackCreate runs the entity creation and records version-1 metadata for
// the created entity. Creating over an entity that already has metadata
// bumps its version instead of resetting it.
// The created entity is returned even when metadata recording fails.
func (t *Tracker) TrackCreate(ctx context.Context, entityType models.EntityType, payload map[string]any, create func(ctx context.Context) (entity.Entity, error)) (entity.Entity, error) {
	if !models.IsSyncable(entityType) {
		return create(ctx)
	}

	created, err := create(ctx)
	if err != nil {
		return nil, err
	}
	if created == nil || created.EntityID() == "" {
		// Мутация не вернула сущность - нечего отслеживать
		return created, nil
	}

	if err := t.recordUpsert(ctx, entityType, created.EntityID(), payload); err != nil {
		return created, err
	}

	t.logger.Debug("tracked create",
		"entity_type", entityType.String(),
		"entity_id", created.EntityID(),
	)

	return created, nil
}

// TrackUpdate resolves the selector to entity ids, runs the mutation, then
// records one tracked change per affected entity. Entities that have no
// metadata row yet get one on first update. A selector matching nothing
// makes the metadata step a no-op.
func (t *Tracker) TrackUpdate(ctx context.Context, entityType models.EntityType, sel entity.Selector, payload map[string]any, update func(ctx context.Context) error) error {
	if !models.IsSyncable(entityType) {
		return update(ctx)
	}

	// Резолвим затронутые id ДО мутации: после нее селектор может
	// перестать совпадать с измененными записями
	ids, err := t.resolve(ctx, entityType, sel)
	if err != nil {
		return err
	}

	if err := update(ctx); err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	now := time.Now()
	actor := deriveActor(payload)
	clientID := ClientFrom(ctx)

	for _, id := range ids {
		sum, err := checksum.Compute(entityType.String(), id, payload)
		if err != nil {
			return fmt.Errorf("failed to compute checksum: %w", err)
		}

		updated, err := t.store.UpdateMetadata(ctx, storage.MetadataUpdate{
			At:         now,
			EntityType: entityType,
			EntityID:   id,
			Checksum:   sum,
			Actor:      actor,
			ClientID:   clientID,
		})
		if err != nil {
			return fmt.Errorf("failed to record metadata: %w", err)
		}

		// Записи без метаданных получают их при первом изменении
		if !updated {
			err := t.store.CreateMetadata(ctx, &models.SyncMetadata{
				LastModifiedAt: now,
				EntityType:     entityType,
				EntityID:       id,
				LastModifiedBy: actor,
				Checksum:       sum,
				ClientID:       clientID,
			})
			if err != nil {
				return fmt.Errorf("failed to record metadata: %w", err)
			}
		}
	}

	t.logger.Debug("tracked update",
		"entity_type", entityType.String(),
		"entities", len(ids),
	)

	return nil
}

// TrackDelete resolves the selector to entity ids, runs the deletion, then
// soft-deletes the metadata of each affected entity: the version grows and
// deleted_at is stamped, while checksum and last_modified_by keep the
// values of the last content change. Entities without metadata are skipped.
func (t *Tracker) TrackDelete(ctx context.Context, entityType models.EntityType, sel entity.Selector, del func(ctx context.Context) error) error {
	if !models.IsSyncable(entityType) {
		return del(ctx)
	}

	ids, err := t.resolve(ctx, entityType, sel)
	if err != nil {
		return err
	}

	if err := del(ctx); err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	now := time.Now()
	for _, id := range ids {
		// false = у сущности никогда не было метаданных, пропускаем
		if _, err := t.store.MarkMetadataDeleted(ctx, entityType, id, now); err != nil {
			return fmt.Errorf("failed to record metadata: %w", err)
		}
	}

	t.logger.Debug("tracked delete",
		"entity_type", entityType.String(),
		"entities", len(ids),
	)

	return nil
}

// TrackUpsert runs the upsert mutation and records metadata for the
// resulting entity: version 1 when the entity is new, an atomic bump when
// it already existed. The checksum covers the create payload when present,
// otherwise the update payload, otherwise an empty object.
func (t *Tracker) TrackUpsert(ctx context.Context, entityType models.EntityType, createPayload, updatePayload map[string]any, upsert func(ctx context.Context) (entity.Entity, error)) (entity.Entity, error) {
	if !models.IsSyncable(entityType) {
		return upsert(ctx)
	}

	result, err := upsert(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil || result.EntityID() == "" {
		return result, nil
	}

	if err := t.recordUpsert(ctx, entityType, result.EntityID(), upsertPayload(createPayload, updatePayload)); err != nil {
		return result, err
	}

	t.logger.Debug("tracked upsert",
		"entity_type", entityType.String(),
		"entity_id", result.EntityID(),
	)

	return result, nil
}

// GetMetadata returns the sync metadata of one entity. Pull consumers
// compare versions and checksums through it before applying remote state.
func (t *Tracker) GetMetadata(ctx context.Context, entityType models.EntityType, entityID string) (*models.SyncMetadata, error) {
	meta, err := t.store.GetMetadata(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}
	return meta, nil
}

// ListMetadata returns metadata rows matching the query, soft-deleted rows
// included when the query asks for them.
func (t *Tracker) ListMetadata(ctx context.Context, q storage.MetadataQuery) ([]*models.SyncMetadata, error) {
	metas, err := t.store.ListMetadata(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	return metas, nil
}

// recordUpsert записывает метаданные создания: новая запись получает
// версию 1, существующая - атомарный инкремент
func (t *Tracker) recordUpsert(ctx context.Context, entityType models.EntityType, entityID string, payload map[string]any) error {
	sum, err := checksum.Compute(entityType.String(), entityID, payload)
	if err != nil {
		return fmt.Errorf("failed to compute checksum: %w", err)
	}

	meta := &models.SyncMetadata{
		LastModifiedAt: time.Now(),
		EntityType:     entityType,
		EntityID:       entityID,
		LastModifiedBy: deriveActor(payload),
		Checksum:       sum,
		ClientID:       ClientFrom(ctx),
	}

	if err := t.store.CreateMetadata(ctx, meta); err != nil {
		return fmt.Errorf("failed to record metadata: %w", err)
	}

	return nil
}

// resolve превращает селектор в список id через репозиторий хоста
func (t *Tracker) resolve(ctx context.Context, entityType models.EntityType, sel entity.Selector) ([]string, error) {
	repo, ok := t.registry.Lookup(entityType)
	if !ok {
		return nil, fmt.Errorf("no repository registered for entity type %q", entityType)
	}

	found, err := repo.FindMany(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve selector: %w", err)
	}

	ids := make([]string, 0, len(found))
	for _, e := range found {
		if id := e.EntityID(); id != "" {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// deriveActor determines who made the change from the mutation payload:
// updatedByUserId, then createdByUserId, then userId, then "system".
func deriveActor(payload map[string]any) string {
	for _, key := range []string{"updatedByUserId", "createdByUserId", "userId"} {
		if actor, ok := payload[key].(string); ok && actor != "" {
			return actor
		}
	}
	return models.ActorSystem
}

// upsertPayload выбирает payload для checksum: create, затем update,
// затем пустой объект
func upsertPayload(createPayload, updatePayload map[string]any) map[string]any {
	switch {
	case createPayload != nil:
		return createPayload
	case updatePayload != nil:
		return updatePayload
	default:
		return map[string]any{}
	}
}
