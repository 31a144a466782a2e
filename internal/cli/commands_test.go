package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upfleet/synckit/internal/archive"
	"github.com/upfleet/synckit/internal/cli/iocli"
	"github.com/upfleet/synckit/internal/clients"
	"github.com/upfleet/synckit/internal/health"
	"github.com/upfleet/synckit/internal/jobs"
	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/router"
	"github.com/upfleet/synckit/internal/storage"
	"github.com/upfleet/synckit/pkg/api"
)

func TestCli_runStats(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	oldest := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	m.queue.GetQueueStatsFunc = func(ctx context.Context, clientID string) (*models.QueueStats, error) {
		return &models.QueueStats{
			OldestPending: &oldest,
			ByStatus: map[models.QueueStatus]int64{
				models.StatusPending: 3,
				models.StatusFailed:  1,
			},
			PendingByType: map[models.EntityType]int64{
				models.EntityTask:  2,
				models.EntityAsset: 1,
			},
		}, nil
	}

	err := c.runStats(ctx, []string{"client-1"})
	require.NoError(t, err)

	calls := m.queue.GetQueueStatsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "client-1", calls[0].ClientID)

	assert.Contains(t, out.String(), "Client: client-1")
	assert.Contains(t, out.String(), "Total:  4")
	assert.Contains(t, out.String(), "PENDING")
	assert.Contains(t, out.String(), "task")
	assert.Contains(t, out.String(), "2025-06-01T08:30:00Z")
}

func TestCli_runStats_MissingClientID(t *testing.T) {
	c, _, _ := newTestCli(t)

	err := c.runStats(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing client ID")
}

func TestCli_runStats_StorageError(t *testing.T) {
	c, m, _ := newTestCli(t)

	m.queue.GetQueueStatsFunc = func(ctx context.Context, clientID string) (*models.QueueStats, error) {
		return nil, fmt.Errorf("disk corrupted")
	}

	err := c.runStats(context.Background(), []string{"client-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get queue stats")
}

func TestCli_runHealth(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.clients.ListClientBacklogsFunc = func(ctx context.Context, organizationID string) ([]models.ClientBacklog, error) {
		return []models.ClientBacklog{{ClientID: "client-1", Pending: 60}}, nil
	}
	m.queue.CountQueueByOrganizationFunc = func(ctx context.Context, organizationID string) (int64, int64, error) {
		return 10, 0, nil
	}

	err := c.runHealth(ctx, []string{"org-1"})
	require.NoError(t, err)

	// Бэклог 60 > 50 снимает штраф 20 со 100
	assert.Contains(t, out.String(), "Organization:   org-1")
	assert.Contains(t, out.String(), "Health score:   80/100")
	assert.Contains(t, out.String(), "Active clients: 1")
	assert.Contains(t, out.String(), "Sync backlog:   60 pending item(s)")
	assert.Contains(t, out.String(), "Failure rate:   0.0%")
	assert.Contains(t, out.String(), "Recommendations:")
}

func TestCli_runHealth_MissingOrgID(t *testing.T) {
	c, _, _ := newTestCli(t)

	err := c.runHealth(context.Background(), []string{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing organization ID")
}

func TestCli_runProcessEvent(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.ListPendingItemsFunc = func(ctx context.Context, clientID string) ([]*models.SyncQueueItem, error) {
		return []*models.SyncQueueItem{
			queueItem("item-1", models.EntityTask, models.OpUpdate),
			queueItem("item-2", models.EntityAsset, models.OpCreate),
		}, nil
	}
	var captured *api.Job
	m.jobQueue.EnqueueFunc = func(ctx context.Context, job *api.Job) error {
		captured = job
		return nil
	}

	err := c.runProcessEvent(ctx, []string{"client-1", "sync-all"})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, api.JobBatchSync, captured.Type)
	assert.ElementsMatch(t, []string{"item-1", "item-2"}, captured.ItemIDs)
	assert.Contains(t, out.String(), "Sync event processed.")
}

func TestCli_runProcessEvent_BadOption(t *testing.T) {
	c, _, _ := newTestCli(t)

	err := c.runProcessEvent(context.Background(), []string{"client-1", "sync-all", "force"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option")
}

func TestCli_runProcessEvent_MissingArgs(t *testing.T) {
	c, _, _ := newTestCli(t)

	err := c.runProcessEvent(context.Background(), []string{"client-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing arguments")
}

func TestCli_runEnqueue(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.CreateQueueItemFunc = func(ctx context.Context, item *models.SyncQueueItem) error {
		return nil
	}

	err := c.runEnqueue(ctx, []string{"client-1", "task", "update", `{"id":"t-1"}`})
	require.NoError(t, err)

	calls := m.queue.CreateQueueItemCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpUpdate, calls[0].Item.Operation)
	assert.Equal(t, models.EntityTask, calls[0].Item.EntityType)
	assert.Contains(t, out.String(), "Queued update task as item")
}

func TestCli_runEnqueue_PromptsForPayload(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestCli(t)

	m.io.ReadInputFunc = func(prompt string) (string, error) {
		return "", nil
	}
	m.queue.CreateQueueItemFunc = func(ctx context.Context, item *models.SyncQueueItem) error {
		return nil
	}

	err := c.runEnqueue(ctx, []string{"client-1", "task", "create"})
	require.NoError(t, err)

	// Пустой ввод превращается в {}
	calls := m.queue.CreateQueueItemCalls()
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{}`, string(calls[0].Item.Payload))

	prompts := m.io.ReadInputCalls()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0].Prompt, "Payload JSON")
}

func TestCli_runEnqueue_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "not enough arguments",
			args:   []string{"client-1", "task"},
			errMsg: "missing arguments",
		},
		{
			name:   "broken payload",
			args:   []string{"client-1", "task", "update", "{oops"},
			errMsg: "payload is not valid JSON",
		},
		{
			name:   "unknown operation",
			args:   []string{"client-1", "task", "patch", "{}"},
			errMsg: "unknown queue operation",
		},
		{
			name:   "untracked entity type",
			args:   []string{"client-1", "comment", "update", "{}"},
			errMsg: "not tracked for sync",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCli(t)

			err := c.runEnqueue(context.Background(), tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCli_runRetry(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.ListRetryableFailedFunc = func(ctx context.Context, clientID string, maxRetries int) ([]*models.SyncQueueItem, error) {
		return []*models.SyncQueueItem{
			queueItem("item-1", models.EntityTask, models.OpUpdate),
			queueItem("item-2", models.EntityTask, models.OpDelete),
		}, nil
	}
	m.queue.ResetItemsPendingFunc = func(ctx context.Context, ids []string) (int64, error) {
		return int64(len(ids)), nil
	}

	err := c.runRetry(ctx, []string{"client-1"})
	require.NoError(t, err)

	require.Len(t, m.jobQueue.EnqueueCalls(), 1)
	assert.Contains(t, out.String(), "Re-queued 2 item(s)")
}

func TestCli_runRetry_NoneEligible(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.ListRetryableFailedFunc = func(ctx context.Context, clientID string, maxRetries int) ([]*models.SyncQueueItem, error) {
		return nil, nil
	}

	err := c.runRetry(ctx, []string{"client-1"})
	require.NoError(t, err)

	assert.Empty(t, m.jobQueue.EnqueueCalls())
	assert.Contains(t, out.String(), "No failed items eligible for retry.")
}

func TestCli_runRetry_InvalidLimit(t *testing.T) {
	c, _, _ := newTestCli(t)

	err := c.runRetry(context.Background(), []string{"client-1", "zero"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid max-retries")
}

func TestCli_runCleanup(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.DeleteCompletedBeforeFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 4, nil
	}

	err := c.runCleanup(ctx, []string{"7"})
	require.NoError(t, err)

	require.Len(t, m.queue.DeleteCompletedBeforeCalls(), 1)
	assert.Contains(t, out.String(), "Deleted 4 completed item(s).")
}

func TestCli_runCleanup_InvalidDays(t *testing.T) {
	c, _, _ := newTestCli(t)

	err := c.runCleanup(context.Background(), []string{"-3"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid days")
}

func TestCli_runRegisterClient(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	require.NoError(t, os.Setenv(EnvDeviceSecret, "long-random-device-secret"))
	defer func() {
		require.NoError(t, os.Unsetenv(EnvDeviceSecret))
	}()

	m.clients.GetUserByIDFunc = func(ctx context.Context, id string) (*models.User, error) {
		return &models.User{ID: id, OrganizationID: "org-1", Username: "tech"}, nil
	}
	m.clients.CreateClientFunc = func(ctx context.Context, client *models.SyncClient) error {
		return nil
	}

	err := c.runRegisterClient(ctx, []string{"org-1", "user-1", "field-tablet-07"})
	require.NoError(t, err)

	require.Len(t, m.clients.CreateClientCalls(), 1)
	assert.Contains(t, out.String(), "=== Client Registered ===")
	assert.Contains(t, out.String(), "Device:       field-tablet-07")
	assert.Contains(t, out.String(), "Device token:")
}

func TestCli_runRegisterClient_MissingArgs(t *testing.T) {
	c, _, _ := newTestCli(t)

	err := c.runRegisterClient(context.Background(), []string{"org-1", "user-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing arguments")
}

func TestCli_runRegisterSync(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.clients.GetClientByDeviceFunc = func(ctx context.Context, userID, deviceID string) (*models.SyncClient, error) {
		return &models.SyncClient{
			CreatedAt: time.Now(),
			ID:        "client-9",
			UserID:    userID,
			DeviceID:  deviceID,
			SyncToken: models.SyncToken{Cursor: "c-41", Version: models.SyncTokenVersion},
		}, nil
	}
	m.clients.GetUserByIDFunc = func(ctx context.Context, id string) (*models.User, error) {
		return &models.User{ID: id, OrganizationID: "org-1", Username: "tech"}, nil
	}
	m.clients.UpdateSyncTokenFunc = func(ctx context.Context, clientID string, token models.SyncToken) error {
		return nil
	}

	err := c.runRegisterSync(ctx, []string{"org-1", "user-1", "field-tablet-07", "sync-tasks", "30m"})
	require.NoError(t, err)

	calls := m.clients.UpdateSyncTokenCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Token.BackgroundSync)
	assert.Equal(t, "sync-tasks", calls[0].Token.BackgroundSync.Tag)
	assert.Equal(t, int64(1800000), calls[0].Token.BackgroundSync.MinInterval)

	assert.Contains(t, out.String(), "=== Background Sync Registered ===")
	assert.Contains(t, out.String(), "Interval: 30m0s")
}

func TestCli_runRegisterSync_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "not enough arguments",
			args:   []string{"org-1", "user-1", "field-tablet-07"},
			errMsg: "missing arguments",
		},
		{
			name:   "uppercase tag",
			args:   []string{"org-1", "user-1", "field-tablet-07", "Sync-Tasks"},
			errMsg: "invalid sync tag",
		},
		{
			name:   "unparseable interval",
			args:   []string{"org-1", "user-1", "field-tablet-07", "sync-tasks", "soon"},
			errMsg: "invalid interval",
		},
		{
			name:   "negative interval",
			args:   []string{"org-1", "user-1", "field-tablet-07", "sync-tasks", "-5m"},
			errMsg: "interval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCli(t)

			err := c.runRegisterSync(context.Background(), tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCli_runArchive(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.ListCompletedBeforeFunc = func(ctx context.Context, cutoff time.Time, limit int) ([]*models.SyncQueueItem, error) {
		return []*models.SyncQueueItem{completedQueueItem("item-1")}, nil
	}
	m.queue.DeleteCompletedBeforeFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 1, nil
	}

	err := c.runArchive(ctx, []string{"90"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "=== Archive Created ===")
	assert.Contains(t, out.String(), "Manifest items: 1")
	assert.Contains(t, out.String(), "Data key:       batches/")
}

func TestCli_runArchive_NothingToArchive(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.ListCompletedBeforeFunc = func(ctx context.Context, cutoff time.Time, limit int) ([]*models.SyncQueueItem, error) {
		return nil, nil
	}

	err := c.runArchive(ctx, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No completed items older than 30 day(s).")
}

func TestCli_runArchive_NotEnabled(t *testing.T) {
	c := New(nil, nil, nil, nil, nil, Secrets{})

	err := c.runArchive(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "archiving is not enabled")
}

func TestCli_runVerifyArchive(t *testing.T) {
	ctx := context.Background()
	c, m, out := newTestCli(t)

	m.queue.ListCompletedBeforeFunc = func(ctx context.Context, cutoff time.Time, limit int) ([]*models.SyncQueueItem, error) {
		return []*models.SyncQueueItem{completedQueueItem("item-1")}, nil
	}
	m.queue.DeleteCompletedBeforeFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 1, nil
	}
	require.NoError(t, c.runArchive(ctx, nil))
	out.Reset()

	// Без аргументов проверяются все манифесты
	err := c.runVerifyArchive(ctx, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "✓ manifests/")
	assert.Contains(t, out.String(), "checksum OK")
}

func TestCli_runVerifyArchive_NoManifests(t *testing.T) {
	ctx := context.Background()
	c, _, out := newTestCli(t)

	err := c.runVerifyArchive(ctx, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No archive manifests found.")
}

// Helper functions

type cliMocks struct {
	io       *iocli.IOMock
	queue    *storage.QueueStorageMock
	clients  *storage.ClientStorageMock
	jobQueue *jobs.QueueMock
	objects  *archive.ObjectStoreMock
}

func newTestCli(t *testing.T) (*Cli, *cliMocks, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	m := &cliMocks{
		io: &iocli.IOMock{
			PrintlnFunc: func(a ...any) {
				fmt.Fprintln(out, a...)
			},
			PrintfFunc: func(format string, a ...any) {
				fmt.Fprintf(out, format, a...)
			},
			WriteFunc: func(p []byte) (int, error) {
				return out.Write(p)
			},
		},
		queue:   &storage.QueueStorageMock{},
		clients: &storage.ClientStorageMock{},
		jobQueue: &jobs.QueueMock{
			EnqueueFunc: func(ctx context.Context, job *api.Job) error { return nil },
		},
		objects: newMemoryObjects(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := router.New(logger, m.queue, m.clients, m.jobQueue, nil, router.DefaultPolicy())
	h := health.New(logger, m.queue, m.clients, health.DefaultThresholds())
	cs := clients.NewService(logger, m.clients, clients.TokenConfig{Secret: []byte("test-secret-key"), TTL: time.Hour})
	ar := archive.NewArchiver(logger, m.queue, m.objects)

	return New(m.io, r, h, cs, ar, Secrets{}), m, out
}

// newMemoryObjects собирает ObjectStore поверх map для архивных тестов.
func newMemoryObjects() *archive.ObjectStoreMock {
	var mu sync.Mutex
	objects := map[string][]byte{}

	store := &archive.ObjectStoreMock{}
	store.PutFunc = func(ctx context.Context, key string, data []byte) error {
		mu.Lock()
		defer mu.Unlock()
		objects[key] = data
		return nil
	}
	store.GetFunc = func(ctx context.Context, key string) ([]byte, error) {
		mu.Lock()
		defer mu.Unlock()
		data, ok := objects[key]
		if !ok {
			return nil, fmt.Errorf("no such key %q", key)
		}
		return data, nil
	}
	store.ListFunc = func(ctx context.Context, prefix string) ([]string, error) {
		mu.Lock()
		defer mu.Unlock()
		var keys []string
		for key := range objects {
			if strings.HasPrefix(key, prefix) {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		return keys, nil
	}
	return store
}

func queueItem(id string, entityType models.EntityType, op models.Operation) *models.SyncQueueItem {
	return &models.SyncQueueItem{
		CreatedAt:  time.Now(),
		ID:         id,
		ClientID:   "client-1",
		EntityType: entityType,
		Operation:  op,
		Status:     models.StatusPending,
	}
}

func completedQueueItem(id string) *models.SyncQueueItem {
	processed := time.Now().AddDate(0, 0, -45)
	item := queueItem(id, models.EntityTask, models.OpUpdate)
	item.Status = models.StatusCompleted
	item.ProcessedAt = &processed
	return item
}
