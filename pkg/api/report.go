package api

import "time"

// QueueStats is the per-client queue snapshot returned by the stats API.
type QueueStats struct {
	OldestPending *time.Time       `json:"oldest_pending,omitempty"` // created_at самого старого PENDING элемента
	ByStatus      map[string]int64 `json:"by_status"`                // количество элементов по статусам
	PendingByType map[string]int64 `json:"pending_by_type"`          // PENDING элементы по типам сущностей
	ClientID      string           `json:"client_id"`
	Total         int64            `json:"total"`
}

// HealthReport is the organization-wide sync health snapshot.
type HealthReport struct {
	OrganizationID  string   `json:"organization_id"`
	Recommendations []string `json:"recommendations"` // подсказки оператору, пустой срез = все в порядке
	ActiveClients   int      `json:"active_clients"`  // количество зарегистрированных клиентов
	SyncBacklog     int64    `json:"sync_backlog"`    // сумма PENDING элементов по всем клиентам
	FailureRate     float64  `json:"failure_rate"`    // доля FAILED среди всех элементов, [0, 1]
	HealthScore     int      `json:"health_score"`    // итоговая оценка, [0, 100]
}

// Notification types emitted by the sync engine.
const (
	NotificationSyncFailed = "sync_failed"
)

// Notification is a user-facing message produced by the engine,
// delivered through the host application's notification sink.
type Notification struct {
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
}
