package api

// Well-known sync tags. Any other tag routes to a custom-sync job.
const (
	TagSyncAll      = "sync-all"
	TagSyncCritical = "sync-critical"
	TagPrefix       = "sync-"
)

// SyncEvent представляет событие периодической фоновой синхронизации,
// полученное от клиентского устройства (service worker periodic sync).
type SyncEvent struct {
	Tag            string `json:"tag"`                       // sync-тег события
	ClientID       string `json:"client_id"`                 // клиент, для которого пришло событие
	OrganizationID string `json:"organization_id,omitempty"` // организация вызывающей стороны ("" = без проверки)
	LastChance     bool   `json:"last_chance"`               // браузер больше не будет повторять событие
}
