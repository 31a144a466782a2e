package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
)

func TestQueueStorage_CreateAndGetQueueItem(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	item := &models.SyncQueueItem{
		ID:         uuid.New().String(),
		ClientID:   clientID,
		EntityType: models.EntityAsset,
		Operation:  models.OpUpdate,
		Payload:    []byte(`{"name":"pump"}`),
		Status:     models.StatusPending,
		CreatedAt:  time.Unix(1000, 0),
	}

	err := s.CreateQueueItem(ctx, item)
	require.NoError(t, err)

	retrieved, err := s.GetQueueItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, retrieved.ID)
	assert.Equal(t, clientID, retrieved.ClientID)
	assert.Equal(t, models.EntityAsset, retrieved.EntityType)
	assert.Equal(t, models.OpUpdate, retrieved.Operation)
	assert.JSONEq(t, `{"name":"pump"}`, string(retrieved.Payload))
	assert.Equal(t, models.StatusPending, retrieved.Status)
	assert.Equal(t, 0, retrieved.RetryCount)
	assert.Empty(t, retrieved.ErrorMessage)
	assert.Equal(t, int64(1000), retrieved.CreatedAt.Unix())
	assert.Nil(t, retrieved.ProcessedAt)
}

func TestQueueStorage_GetQueueItem_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetQueueItem(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestQueueStorage_ListPendingItems(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)
	otherClientID := createTestClient(t, ctx, s, userID)

	// Вставляем не по порядку, чтобы проверить сортировку по created_at
	second := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 2000)
	first := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 1000)
	completed := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 500)
	enqueueTestItem(t, ctx, s, otherClientID, models.EntityAsset, 100)

	err := s.MarkItemCompleted(ctx, completed, time.Unix(3000, 0))
	require.NoError(t, err)

	items, err := s.ListPendingItems(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, second, items[1].ID)
}

func TestQueueStorage_ListPendingItems_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	items, err := s.ListPendingItems(ctx, "unknown-client")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestQueueStorage_MarkItemsFailed(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	a := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 1000)
	b := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 2000)

	err := s.MarkItemsFailed(ctx, []string{a, b}, "sync handler crashed", time.Unix(3000, 0))
	require.NoError(t, err)

	for _, id := range []string{a, b} {
		item, err := s.GetQueueItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, item.Status)
		assert.Equal(t, "sync handler crashed", item.ErrorMessage)
		require.NotNil(t, item.ProcessedAt)
		assert.Equal(t, int64(3000), item.ProcessedAt.Unix())
	}
}

func TestQueueStorage_MarkItemsFailed_EmptyIDs(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.MarkItemsFailed(ctx, nil, "message", time.Unix(1000, 0))
	assert.NoError(t, err)
}

func TestQueueStorage_ListRetryableFailed(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	a := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 1000)
	b := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 2000)
	exhausted := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 3000)

	// Исчерпываем лимит попыток у одного элемента
	for i := 0; i < 3; i++ {
		require.NoError(t, s.IncrementItemRetry(ctx, exhausted, "transient error"))
	}

	err := s.MarkItemsFailed(ctx, []string{a, b, exhausted}, "sync failed", time.Unix(4000, 0))
	require.NoError(t, err)

	items, err := s.ListRetryableFailed(ctx, clientID, 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a, items[0].ID)
	assert.Equal(t, b, items[1].ID)
}

func TestQueueStorage_ResetItemsPending(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	a := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 1000)
	b := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 2000)

	require.NoError(t, s.IncrementItemRetry(ctx, a, "transient error"))
	require.NoError(t, s.MarkItemsFailed(ctx, []string{a, b}, "sync failed", time.Unix(3000, 0)))

	count, err := s.ResetItemsPending(ctx, []string{a, b})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	itemA, err := s.GetQueueItem(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, itemA.Status)
	assert.Empty(t, itemA.ErrorMessage)
	assert.Nil(t, itemA.ProcessedAt)

	// Счетчик попыток сохраняется
	assert.Equal(t, 1, itemA.RetryCount)
}

func TestQueueStorage_ResetItemsPending_EmptyIDs(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	count, err := s.ResetItemsPending(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestQueueStorage_MarkItemCompleted(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	id := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 1000)

	err := s.MarkItemCompleted(ctx, id, time.Unix(2000, 0))
	require.NoError(t, err)

	item, err := s.GetQueueItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, item.Status)
	require.NotNil(t, item.ProcessedAt)
	assert.Equal(t, int64(2000), item.ProcessedAt.Unix())
}

func TestQueueStorage_MarkItemCompleted_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.MarkItemCompleted(ctx, uuid.New().String(), time.Unix(1000, 0))
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestQueueStorage_IncrementItemRetry(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	id := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 1000)

	require.NoError(t, s.IncrementItemRetry(ctx, id, "first failure"))
	require.NoError(t, s.IncrementItemRetry(ctx, id, "second failure"))

	item, err := s.GetQueueItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, item.RetryCount)
	assert.Equal(t, "second failure", item.ErrorMessage)

	// Элемент остается в очереди до исчерпания лимита
	assert.Equal(t, models.StatusPending, item.Status)
}

func TestQueueStorage_IncrementItemRetry_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.IncrementItemRetry(ctx, uuid.New().String(), "error")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestQueueStorage_ListCompletedBefore(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	a := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 100)
	b := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 200)
	c := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 300)
	pending := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 400)

	require.NoError(t, s.MarkItemCompleted(ctx, b, time.Unix(2000, 0)))
	require.NoError(t, s.MarkItemCompleted(ctx, a, time.Unix(1000, 0)))
	require.NoError(t, s.MarkItemCompleted(ctx, c, time.Unix(3000, 0)))

	items, err := s.ListCompletedBefore(ctx, time.Unix(2500, 0), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a, items[0].ID)
	assert.Equal(t, b, items[1].ID)

	// Лимит обрезает результат
	items, err = s.ListCompletedBefore(ctx, time.Unix(2500, 0), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a, items[0].ID)

	// PENDING элементы не попадают в выборку
	for _, item := range items {
		assert.NotEqual(t, pending, item.ID)
	}
}

func TestQueueStorage_DeleteCompletedBefore(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	a := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 100)
	b := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 200)
	recent := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 300)
	pending := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 400)

	require.NoError(t, s.MarkItemCompleted(ctx, a, time.Unix(1000, 0)))
	require.NoError(t, s.MarkItemCompleted(ctx, b, time.Unix(2000, 0)))
	require.NoError(t, s.MarkItemCompleted(ctx, recent, time.Unix(5000, 0)))

	count, err := s.DeleteCompletedBefore(ctx, time.Unix(2500, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Старые завершенные удалены
	_, err = s.GetQueueItem(ctx, a)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
	_, err = s.GetQueueItem(ctx, b)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// Свежие завершенные и PENDING остаются
	_, err = s.GetQueueItem(ctx, recent)
	assert.NoError(t, err)
	_, err = s.GetQueueItem(ctx, pending)
	assert.NoError(t, err)
}

func TestQueueStorage_GetQueueStats(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "org-1")
	clientID := createTestClient(t, ctx, s, userID)

	enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 1000)
	enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 2000)
	failed := enqueueTestItem(t, ctx, s, clientID, models.EntityTask, 3000)
	completed := enqueueTestItem(t, ctx, s, clientID, models.EntityAsset, 4000)

	require.NoError(t, s.MarkItemsFailed(ctx, []string{failed}, "sync failed", time.Unix(5000, 0)))
	require.NoError(t, s.MarkItemCompleted(ctx, completed, time.Unix(6000, 0)))

	stats, err := s.GetQueueStats(ctx, clientID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.ByStatus[models.StatusPending])
	assert.Equal(t, int64(1), stats.ByStatus[models.StatusFailed])
	assert.Equal(t, int64(1), stats.ByStatus[models.StatusCompleted])

	assert.Equal(t, int64(1), stats.PendingByType[models.EntityAsset])
	assert.Equal(t, int64(1), stats.PendingByType[models.EntityTask])

	require.NotNil(t, stats.OldestPending)
	assert.Equal(t, int64(1000), stats.OldestPending.Unix())
}

func TestQueueStorage_GetQueueStats_EmptyQueue(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	stats, err := s.GetQueueStats(ctx, "unknown-client")
	require.NoError(t, err)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.PendingByType)
	assert.Nil(t, stats.OldestPending)
}

func TestQueueStorage_CountQueueByOrganization(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Организация A: два клиента, три элемента, один FAILED
	userA := createTestUser(t, ctx, s, "org-a")
	clientA1 := createTestClient(t, ctx, s, userA)
	clientA2 := createTestClient(t, ctx, s, userA)

	enqueueTestItem(t, ctx, s, clientA1, models.EntityAsset, 1000)
	failed := enqueueTestItem(t, ctx, s, clientA1, models.EntityTask, 2000)
	enqueueTestItem(t, ctx, s, clientA2, models.EntityAsset, 3000)
	require.NoError(t, s.MarkItemsFailed(ctx, []string{failed}, "sync failed", time.Unix(4000, 0)))

	// Организация B: один клиент, один элемент
	userB := createTestUser(t, ctx, s, "org-b")
	clientB := createTestClient(t, ctx, s, userB)
	enqueueTestItem(t, ctx, s, clientB, models.EntityAsset, 5000)

	total, failedCount, err := s.CountQueueByOrganization(ctx, "org-a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(1), failedCount)

	total, failedCount, err = s.CountQueueByOrganization(ctx, "org-b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(0), failedCount)

	total, failedCount, err = s.CountQueueByOrganization(ctx, "org-unknown")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(0), failedCount)
}

func enqueueTestItem(t *testing.T, ctx context.Context, s *Storage, clientID string, entityType models.EntityType, createdAt int64) string {
	id := uuid.New().String()
	item := &models.SyncQueueItem{
		ID:         id,
		ClientID:   clientID,
		EntityType: entityType,
		Operation:  models.OpUpdate,
		Payload:    []byte(`{}`),
		Status:     models.StatusPending,
		CreatedAt:  time.Unix(createdAt, 0),
	}

	err := s.CreateQueueItem(ctx, item)
	require.NoError(t, err)

	return id
}
