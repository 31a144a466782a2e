package models

import (
	"encoding/json"
	"time"
)

// SyncQueueItem представляет одно офлайн-изменение, ожидающее доставки
// на сервер. Элементы создаются клиентами в статусе PENDING и проходят
// жизненный цикл PENDING -> COMPLETED либо PENDING -> FAILED.
type SyncQueueItem struct {
	CreatedAt    time.Time       `json:"created_at"`    // время постановки в очередь
	ProcessedAt  *time.Time      `json:"processed_at"`  // время завершения или отказа (nil = ещё в очереди)
	ID           string          `json:"id"`            // UUID элемента
	ClientID     string          `json:"client_id"`     // клиент, создавший изменение
	EntityType   EntityType      `json:"entity_type"`   // тип измененной сущности
	Operation    Operation       `json:"operation"`     // CREATE, UPDATE или DELETE
	Status       QueueStatus     `json:"status"`        // PENDING, FAILED или COMPLETED
	ErrorMessage string          `json:"error_message"` // текст последней ошибки ("" = не было)
	Payload      json.RawMessage `json:"payload"`       // снимок изменения в JSON
	RetryCount   int             `json:"retry_count"`   // количество выполненных попыток обработки
}

// Exhausted reports whether the item has used up its retry budget
// and must be abandoned on a last-chance pass.
func (i *SyncQueueItem) Exhausted(maxRetries int) bool {
	return i.RetryCount >= maxRetries
}

// QueueStats is an aggregate snapshot of one client's queue.
type QueueStats struct {
	// OldestPending is the created_at of the oldest PENDING item,
	// nil when the client has no pending items.
	OldestPending *time.Time            `json:"oldest_pending"`
	ByStatus      map[QueueStatus]int64 `json:"by_status"`
	PendingByType map[EntityType]int64  `json:"pending_by_type"`
}

// ClientBacklog is the pending-queue depth of a single sync client.
// Used by the health evaluator.
type ClientBacklog struct {
	ClientID string `json:"client_id"`
	Pending  int64  `json:"pending"`
}
