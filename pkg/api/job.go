package api

import "time"

// JobType identifies the downstream handler for an enqueued sync job.
type JobType string

// Job types produced by the event router.
const (
	JobBatchSync    JobType = "batch-sync"    // полная синхронизация всех ожидающих элементов
	JobCriticalSync JobType = "critical-sync" // приоритетная синхронизация UPDATE-операций
	JobTypeSync     JobType = "type-sync"     // синхронизация одного типа сущностей
	JobCustomSync   JobType = "custom-sync"   // обработчик произвольного тега
	JobRetrySync    JobType = "retry-sync"    // повторная обработка сброшенных FAILED элементов
)

// PriorityCritical is assigned to critical-sync jobs.
const PriorityCritical = 10

// Job is the unit of work handed to the background job queue.
// Delivery is at least once; handlers must tolerate duplicates.
type Job struct {
	EnqueuedAt time.Time `json:"enqueued_at"`           // время постановки
	ID         string    `json:"id"`                    // UUID задания
	Type       JobType   `json:"type"`                  // тип обработчика
	ClientID   string    `json:"client_id"`             // клиент, чьи элементы обрабатываются
	Tag        string    `json:"tag,omitempty"`         // исходный sync-тег (для custom-sync)
	EntityType string    `json:"entity_type,omitempty"` // тип сущностей (для type-sync)
	ItemIDs    []string  `json:"item_ids"`              // идентификаторы элементов очереди
	Priority   int       `json:"priority"`              // приоритет для планировщика (0 = обычный)
}
