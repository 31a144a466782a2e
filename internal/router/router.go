// Package router turns periodic background-sync events into jobs for
// the background queue and owns the maintenance operations of the sync
// queue: retries, cleanup and stats.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/upfleet/synckit/internal/jobs"
	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
	"github.com/upfleet/synckit/pkg/api"
)

// ErrForbidden is returned when the addressed client belongs to another
// organization than the caller.
var ErrForbidden = errors.New("client belongs to another organization")

// abandonedMessage записывается в error_message брошенных элементов.
// Клиенты показывают текст как есть, менять формулировку нельзя.
const abandonedMessage = "Max retries exceeded - sync abandoned"

// Policy holds the tunable limits of the sync engine.
type Policy struct {
	MaxRetries  int // попыток обработки до abandon на last-chance проходе
	CleanupDays int // сколько дней хранить COMPLETED элементы
}

// DefaultPolicy returns the limits used when the host doesn't override them.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:  3,
		CleanupDays: 30,
	}
}

// Router classifies sync events by tag and dispatches them as jobs.
type Router struct {
	logger   *slog.Logger
	queue    storage.QueueStorage
	clients  storage.ClientStorage
	jobs     jobs.Queue
	notifier NotificationSink
	policy   Policy
}

// New creates a Router. A nil notifier falls back to LogSink, zero
// policy fields fall back to DefaultPolicy.
func New(logger *slog.Logger, queue storage.QueueStorage, clients storage.ClientStorage, jobQueue jobs.Queue, notifier NotificationSink, policy Policy) *Router {
	if notifier == nil {
		notifier = NewLogSink(logger)
	}
	defaults := DefaultPolicy()
	if policy.MaxRetries <= 0 {
		policy.MaxRetries = defaults.MaxRetries
	}
	if policy.CleanupDays <= 0 {
		policy.CleanupDays = defaults.CleanupDays
	}

	return &Router{
		logger:   logger,
		queue:    queue,
		clients:  clients,
		jobs:     jobQueue,
		notifier: notifier,
		policy:   policy,
	}
}

// ProcessSyncEvent handles one periodic background-sync event.
// It loads the client's PENDING items, on a last-chance event abandons
// the ones with an exhausted retry budget, classifies the tag and
// enqueues a single job covering the remaining items. An empty queue or
// an empty tag subset is a no-op.
func (r *Router) ProcessSyncEvent(ctx context.Context, event *api.SyncEvent) error {
	if event.ClientID == "" {
		return fmt.Errorf("sync event has no client id")
	}
	if event.Tag == "" {
		return fmt.Errorf("sync event has no tag")
	}

	// Проверка принадлежности клиента выполняется до любых изменений.
	if event.OrganizationID != "" {
		if err := r.authorize(ctx, event.ClientID, event.OrganizationID); err != nil {
			return err
		}
	}

	items, err := r.queue.ListPendingItems(ctx, event.ClientID)
	if err != nil {
		return fmt.Errorf("failed to list pending items: %w", err)
	}
	if len(items) == 0 {
		r.logger.Debug("sync event with empty queue",
			"client_id", event.ClientID,
			"tag", event.Tag)
		return nil
	}

	if event.LastChance {
		items, err = r.abandonExhausted(ctx, event.ClientID, items)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
	}

	job := r.routeJob(event, items)
	if job == nil {
		r.logger.Debug("sync event matched no queue items",
			"client_id", event.ClientID,
			"tag", event.Tag)
		return nil
	}

	if err := r.jobs.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue %s job: %w", job.Type, err)
	}

	r.logger.Info("sync job enqueued",
		"job_id", job.ID,
		"type", job.Type,
		"client_id", event.ClientID,
		"items", len(job.ItemIDs))

	return nil
}

// authorize проверяет, что клиент принадлежит организации вызывающей стороны.
func (r *Router) authorize(ctx context.Context, clientID, organizationID string) error {
	client, err := r.clients.GetClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to load client: %w", err)
	}

	user, err := r.clients.GetUserByID(ctx, client.UserID)
	if err != nil {
		return fmt.Errorf("failed to load client owner: %w", err)
	}

	if user.OrganizationID != organizationID {
		return ErrForbidden
	}

	return nil
}

// abandonExhausted переводит элементы с исчерпанным лимитом попыток в
// FAILED и возвращает те, которые ещё можно обрабатывать. Владелец
// клиента получает одно sync_failed уведомление на проход.
func (r *Router) abandonExhausted(ctx context.Context, clientID string, items []*models.SyncQueueItem) ([]*models.SyncQueueItem, error) {
	live := make([]*models.SyncQueueItem, 0, len(items))
	var abandoned []string
	for _, item := range items {
		if item.Exhausted(r.policy.MaxRetries) {
			abandoned = append(abandoned, item.ID)
			continue
		}
		live = append(live, item)
	}
	if len(abandoned) == 0 {
		return live, nil
	}

	if err := r.queue.MarkItemsFailed(ctx, abandoned, abandonedMessage, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to abandon exhausted items: %w", err)
	}

	r.logger.Warn("abandoned sync items on last-chance event",
		"client_id", clientID,
		"count", len(abandoned))

	// Элементы очереди не хранят владельца, его определяет клиент.
	client, err := r.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client for notification: %w", err)
	}

	n := &api.Notification{
		CreatedAt: time.Now(),
		UserID:    client.UserID,
		Type:      api.NotificationSyncFailed,
		Title:     "Sync failed",
		Message:   fmt.Sprintf("%d offline changes could not be synced and were abandoned", len(abandoned)),
	}
	if err := r.notifier.Notify(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to send %s notification: %w", api.NotificationSyncFailed, err)
	}

	return live, nil
}

// routeJob классифицирует sync-тег и собирает задание для очереди.
// Возвращает nil, когда под тег не попал ни один элемент.
func (r *Router) routeJob(event *api.SyncEvent, items []*models.SyncQueueItem) *api.Job {
	job := &api.Job{
		EnqueuedAt: time.Now(),
		ID:         uuid.New().String(),
		ClientID:   event.ClientID,
	}

	switch {
	case event.Tag == api.TagSyncAll:
		job.Type = api.JobBatchSync
		job.ItemIDs = itemIDs(items)

	case event.Tag == api.TagSyncCritical:
		job.Type = api.JobCriticalSync
		job.Priority = api.PriorityCritical
		job.ItemIDs = itemIDs(filterOperation(items, models.OpUpdate))

	default:
		plural, trimmed := strings.CutPrefix(event.Tag, api.TagPrefix)
		entityType, known := models.EntityTypeFromPlural(plural)
		if trimmed && known {
			job.Type = api.JobTypeSync
			job.EntityType = string(entityType)
			job.ItemIDs = itemIDs(filterType(items, entityType))
		} else {
			job.Type = api.JobCustomSync
			job.Tag = event.Tag
			job.ItemIDs = itemIDs(items)
		}
	}

	if len(job.ItemIDs) == 0 {
		return nil
	}

	return job
}

func itemIDs(items []*models.SyncQueueItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func filterOperation(items []*models.SyncQueueItem, op models.Operation) []*models.SyncQueueItem {
	out := make([]*models.SyncQueueItem, 0, len(items))
	for _, item := range items {
		if item.Operation == op {
			out = append(out, item)
		}
	}
	return out
}

func filterType(items []*models.SyncQueueItem, entityType models.EntityType) []*models.SyncQueueItem {
	out := make([]*models.SyncQueueItem, 0, len(items))
	for _, item := range items {
		if item.EntityType == entityType {
			out = append(out, item)
		}
	}
	return out
}
