package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upfleet/synckit/internal/checksum"
	"github.com/upfleet/synckit/internal/entity"
	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
)

func TestTracker_TrackCreate(t *testing.T) {
	store := &storage.MetadataStorageMock{
		CreateMetadataFunc: func(ctx context.Context, m *models.SyncMetadata) error {
			return nil
		},
	}
	tr := newTestTracker(store, entity.NewRegistry())

	ctx := WithClient(context.Background(), "client-7")
	payload := map[string]any{"name": "pump", "updatedByUserId": "user-9"}

	created, err := tr.TrackCreate(ctx, models.EntityAsset, payload, func(ctx context.Context) (entity.Entity, error) {
		return entity.Fields{"id": "asset-1", "name": "pump"}, nil
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "asset-1", created.EntityID())

	calls := store.CreateMetadataCalls()
	require.Len(t, calls, 1)

	meta := calls[0].M
	assert.Equal(t, models.EntityAsset, meta.EntityType)
	assert.Equal(t, "asset-1", meta.EntityID)
	assert.Equal(t, "user-9", meta.LastModifiedBy)
	assert.Equal(t, "client-7", meta.ClientID)
	assert.WithinDuration(t, time.Now(), meta.LastModifiedAt, time.Second)

	// Контрольная сумма покрывает входной payload мутации
	wantSum, err := checksum.Compute(models.EntityAsset.String(), "asset-1", payload)
	require.NoError(t, err)
	assert.Equal(t, wantSum, meta.Checksum)
}

func TestTracker_TrackCreate_NonSyncableBypasses(t *testing.T) {
	// Нулевой mock: любой вызов хранилища уронит тест паникой
	store := &storage.MetadataStorageMock{}
	tr := newTestTracker(store, entity.NewRegistry())

	mutated := false
	created, err := tr.TrackCreate(context.Background(), models.EntityType("comment"), nil, func(ctx context.Context) (entity.Entity, error) {
		mutated = true
		return entity.Fields{"id": "comment-1"}, nil
	})
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Equal(t, "comment-1", created.EntityID())
	assert.Empty(t, store.CreateMetadataCalls())
}

func TestTracker_TrackCreate_MutationError(t *testing.T) {
	store := &storage.MetadataStorageMock{}
	tr := newTestTracker(store, entity.NewRegistry())

	wantErr := errors.New("constraint violation")
	_, err := tr.TrackCreate(context.Background(), models.EntityAsset, nil, func(ctx context.Context) (entity.Entity, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, store.CreateMetadataCalls())
}

func TestTracker_TrackCreate_NoEntityReturned(t *testing.T) {
	store := &storage.MetadataStorageMock{}
	tr := newTestTracker(store, entity.NewRegistry())

	created, err := tr.TrackCreate(context.Background(), models.EntityAsset, nil, func(ctx context.Context) (entity.Entity, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, created)
	assert.Empty(t, store.CreateMetadataCalls())
}

func TestTracker_TrackUpdate(t *testing.T) {
	var events []string

	store := &storage.MetadataStorageMock{
		UpdateMetadataFunc: func(ctx context.Context, up storage.MetadataUpdate) (bool, error) {
			events = append(events, "metadata")
			return true, nil
		},
	}

	repo := &entity.RepositoryMock{
		FindManyFunc: func(ctx context.Context, sel entity.Selector) ([]entity.Entity, error) {
			events = append(events, "resolve")
			return []entity.Entity{
				entity.Fields{"id": "task-1"},
				entity.Fields{"id": "task-2"},
			}, nil
		},
	}
	registry := entity.NewRegistry()
	require.NoError(t, registry.Register(models.EntityTask, repo))

	tr := newTestTracker(store, registry)

	ctx := WithClient(context.Background(), "client-3")
	payload := map[string]any{"status": "done", "userId": "user-2"}

	err := tr.TrackUpdate(ctx, models.EntityTask, entity.Selector{"status": "open"}, payload, func(ctx context.Context) error {
		events = append(events, "mutate")
		return nil
	})
	require.NoError(t, err)

	// id резолвятся до мутации, метаданные пишутся после
	assert.Equal(t, []string{"resolve", "mutate", "metadata", "metadata"}, events)

	calls := store.UpdateMetadataCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "task-1", calls[0].Up.EntityID)
	assert.Equal(t, "task-2", calls[1].Up.EntityID)

	for _, call := range calls {
		assert.Equal(t, models.EntityTask, call.Up.EntityType)
		assert.Equal(t, "user-2", call.Up.Actor)
		assert.Equal(t, "client-3", call.Up.ClientID)

		wantSum, err := checksum.Compute(models.EntityTask.String(), call.Up.EntityID, payload)
		require.NoError(t, err)
		assert.Equal(t, wantSum, call.Up.Checksum)
	}
}

func TestTracker_TrackUpdate_FallsBackToCreate(t *testing.T) {
	store := &storage.MetadataStorageMock{
		UpdateMetadataFunc: func(ctx context.Context, up storage.MetadataUpdate) (bool, error) {
			return false, nil
		},
		CreateMetadataFunc: func(ctx context.Context, m *models.SyncMetadata) error {
			return nil
		},
	}

	repo := &entity.RepositoryMock{
		FindManyFunc: func(ctx context.Context, sel entity.Selector) ([]entity.Entity, error) {
			return []entity.Entity{entity.Fields{"id": "asset-5"}}, nil
		},
	}
	registry := entity.NewRegistry()
	require.NoError(t, registry.Register(models.EntityAsset, repo))

	tr := newTestTracker(store, registry)

	err := tr.TrackUpdate(context.Background(), models.EntityAsset, entity.Selector{"id": "asset-5"}, nil, func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	// Нет строки метаданных - обновление деградирует в создание
	creates := store.CreateMetadataCalls()
	require.Len(t, creates, 1)
	assert.Equal(t, "asset-5", creates[0].M.EntityID)
	assert.Equal(t, models.ActorSystem, creates[0].M.LastModifiedBy)
}

func TestTracker_TrackUpdate_NoMatches(t *testing.T) {
	store := &storage.MetadataStorageMock{}

	repo := &entity.RepositoryMock{
		FindManyFunc: func(ctx context.Context, sel entity.Selector) ([]entity.Entity, error) {
			return []entity.Entity{}, nil
		},
	}
	registry := entity.NewRegistry()
	require.NoError(t, registry.Register(models.EntityAsset, repo))

	tr := newTestTracker(store, registry)

	mutated := false
	err := tr.TrackUpdate(context.Background(), models.EntityAsset, entity.Selector{"status": "retired"}, nil, func(ctx context.Context) error {
		mutated = true
		return nil
	})
	require.NoError(t, err)

	// Мутация выполняется, метаданные не трогаются
	assert.True(t, mutated)
	assert.Empty(t, store.UpdateMetadataCalls())
	assert.Empty(t, store.CreateMetadataCalls())
}

func TestTracker_TrackUpdate_NoRepository(t *testing.T) {
	store := &storage.MetadataStorageMock{}
	tr := newTestTracker(store, entity.NewRegistry())

	mutated := false
	err := tr.TrackUpdate(context.Background(), models.EntityAsset, entity.Selector{"id": "x"}, nil, func(ctx context.Context) error {
		mutated = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no repository registered")

	// Ошибка конфигурации всплывает до выполнения мутации
	assert.False(t, mutated)
}

func TestTracker_TrackUpdate_MutationError(t *testing.T) {
	store := &storage.MetadataStorageMock{}

	repo := &entity.RepositoryMock{
		FindManyFunc: func(ctx context.Context, sel entity.Selector) ([]entity.Entity, error) {
			return []entity.Entity{entity.Fields{"id": "asset-1"}}, nil
		},
	}
	registry := entity.NewRegistry()
	require.NoError(t, registry.Register(models.EntityAsset, repo))

	tr := newTestTracker(store, registry)

	wantErr := errors.New("deadlock")
	err := tr.TrackUpdate(context.Background(), models.EntityAsset, entity.Selector{"id": "asset-1"}, nil, func(ctx context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, store.UpdateMetadataCalls())
}

func TestTracker_TrackDelete(t *testing.T) {
	var events []string

	store := &storage.MetadataStorageMock{
		MarkMetadataDeletedFunc: func(ctx context.Context, entityType models.EntityType, entityID string, at time.Time) (bool, error) {
			events = append(events, "metadata")
			// Первая сущность без метаданных - false игнорируется
			return entityID != "task-1", nil
		},
	}

	repo := &entity.RepositoryMock{
		FindManyFunc: func(ctx context.Context, sel entity.Selector) ([]entity.Entity, error) {
			events = append(events, "resolve")
			return []entity.Entity{
				entity.Fields{"id": "task-1"},
				entity.Fields{"id": "task-2"},
			}, nil
		},
	}
	registry := entity.NewRegistry()
	require.NoError(t, registry.Register(models.EntityTask, repo))

	tr := newTestTracker(store, registry)

	err := tr.TrackDelete(context.Background(), models.EntityTask, entity.Selector{"projectId": "p1"}, func(ctx context.Context) error {
		events = append(events, "mutate")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"resolve", "mutate", "metadata", "metadata"}, events)

	calls := store.MarkMetadataDeletedCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "task-1", calls[0].EntityID)
	assert.Equal(t, "task-2", calls[1].EntityID)
}

func TestTracker_TrackDelete_NoMatches(t *testing.T) {
	store := &storage.MetadataStorageMock{}

	repo := &entity.RepositoryMock{
		FindManyFunc: func(ctx context.Context, sel entity.Selector) ([]entity.Entity, error) {
			return []entity.Entity{}, nil
		},
	}
	registry := entity.NewRegistry()
	require.NoError(t, registry.Register(models.EntityTask, repo))

	tr := newTestTracker(store, registry)

	mutated := false
	err := tr.TrackDelete(context.Background(), models.EntityTask, entity.Selector{"id": "ghost"}, func(ctx context.Context) error {
		mutated = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Empty(t, store.MarkMetadataDeletedCalls())
}

func TestTracker_TrackUpsert_PayloadFallback(t *testing.T) {
	tests := []struct {
		createPayload map[string]any
		updatePayload map[string]any
		wantPayload   map[string]any
		name          string
	}{
		{
			name:          "create payload wins",
			createPayload: map[string]any{"name": "pump"},
			updatePayload: map[string]any{"name": "ignored"},
			wantPayload:   map[string]any{"name": "pump"},
		},
		{
			name:          "update payload when create missing",
			createPayload: nil,
			updatePayload: map[string]any{"name": "valve"},
			wantPayload:   map[string]any{"name": "valve"},
		},
		{
			name:          "empty object when both missing",
			createPayload: nil,
			updatePayload: nil,
			wantPayload:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storage.MetadataStorageMock{
				CreateMetadataFunc: func(ctx context.Context, m *models.SyncMetadata) error {
					return nil
				},
			}
			tr := newTestTracker(store, entity.NewRegistry())

			result, err := tr.TrackUpsert(context.Background(), models.EntityAsset, tt.createPayload, tt.updatePayload, func(ctx context.Context) (entity.Entity, error) {
				return entity.Fields{"id": "asset-9"}, nil
			})
			require.NoError(t, err)
			assert.Equal(t, "asset-9", result.EntityID())

			calls := store.CreateMetadataCalls()
			require.Len(t, calls, 1)

			wantSum, err := checksum.Compute(models.EntityAsset.String(), "asset-9", tt.wantPayload)
			require.NoError(t, err)
			assert.Equal(t, wantSum, calls[0].M.Checksum)
		})
	}
}

func TestTracker_GetMetadata(t *testing.T) {
	store := &storage.MetadataStorageMock{
		GetMetadataFunc: func(ctx context.Context, entityType models.EntityType, entityID string) (*models.SyncMetadata, error) {
			return &models.SyncMetadata{EntityType: entityType, EntityID: entityID, Version: 4}, nil
		},
	}
	tr := newTestTracker(store, entity.NewRegistry())

	meta, err := tr.GetMetadata(context.Background(), models.EntityAsset, "asset-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), meta.Version)
	assert.Equal(t, "asset-1", meta.EntityID)
}

func TestTracker_GetMetadata_NotFound(t *testing.T) {
	store := &storage.MetadataStorageMock{
		GetMetadataFunc: func(ctx context.Context, entityType models.EntityType, entityID string) (*models.SyncMetadata, error) {
			return nil, storage.ErrMetadataNotFound
		},
	}
	tr := newTestTracker(store, entity.NewRegistry())

	_, err := tr.GetMetadata(context.Background(), models.EntityAsset, "ghost")
	assert.ErrorIs(t, err, storage.ErrMetadataNotFound)
}

func TestTracker_ListMetadata(t *testing.T) {
	store := &storage.MetadataStorageMock{
		ListMetadataFunc: func(ctx context.Context, q storage.MetadataQuery) ([]*models.SyncMetadata, error) {
			return []*models.SyncMetadata{{EntityID: "asset-1"}, {EntityID: "asset-2"}}, nil
		},
	}
	tr := newTestTracker(store, entity.NewRegistry())

	q := storage.MetadataQuery{EntityType: models.EntityAsset, IncludeDeleted: true}
	metas, err := tr.ListMetadata(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	// Запрос передается хранилищу без изменений
	calls := store.ListMetadataCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, q, calls[0].Q)
}

func TestTracker_ClientContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ClientFrom(ctx))

	ctx = WithClient(ctx, "client-42")
	assert.Equal(t, "client-42", ClientFrom(ctx))
}

func TestDeriveActor(t *testing.T) {
	tests := []struct {
		payload map[string]any
		name    string
		want    string
	}{
		{
			name:    "updatedByUserId has highest priority",
			payload: map[string]any{"updatedByUserId": "u1", "createdByUserId": "u2", "userId": "u3"},
			want:    "u1",
		},
		{
			name:    "createdByUserId next",
			payload: map[string]any{"createdByUserId": "u2", "userId": "u3"},
			want:    "u2",
		},
		{
			name:    "userId last",
			payload: map[string]any{"userId": "u3"},
			want:    "u3",
		},
		{
			name:    "system fallback",
			payload: map[string]any{"name": "pump"},
			want:    models.ActorSystem,
		},
		{
			name:    "nil payload",
			payload: nil,
			want:    models.ActorSystem,
		},
		{
			name:    "non-string value skipped",
			payload: map[string]any{"updatedByUserId": 42, "userId": "u3"},
			want:    "u3",
		},
		{
			name:    "empty string skipped",
			payload: map[string]any{"updatedByUserId": "", "userId": "u3"},
			want:    "u3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveActor(tt.payload))
		})
	}
}

func newTestTracker(store storage.MetadataStorage, registry *entity.Registry) *Tracker {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, store, registry)
}
