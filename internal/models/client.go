package models

import "time"

// SyncTokenVersion is the current schema version of the SyncToken record.
const SyncTokenVersion = 1

// BackgroundSyncRegistration описывает регистрацию фоновой синхронизации,
// полученную от клиентского устройства (service worker).
type BackgroundSyncRegistration struct {
	RegisteredAt     time.Time `json:"registered_at"`     // время регистрации
	Tag              string    `json:"tag"`               // sync-тег, на который подписано устройство
	MinInterval      int64     `json:"min_interval_ms"`   // минимальный интервал между попытками, мс
	MaxRetries       int       `json:"max_retries"`       // лимит попыток на стороне устройства
	RequiresNetwork  bool      `json:"requires_network"`  // ждать появления сети
	RequiresCharging bool      `json:"requires_charging"` // синхронизировать только на зарядке
}

// SyncToken is the per-client sync configuration record persisted as a
// single JSON column. Sections are explicitly typed; updating one section
// must preserve the others.
type SyncToken struct {
	LastFullSyncAt *time.Time                  `json:"last_full_sync_at,omitempty"` // время последней полной синхронизации
	BackgroundSync *BackgroundSyncRegistration `json:"background_sync,omitempty"`   // секция фоновой синхронизации
	Cursor         string                      `json:"cursor,omitempty"`            // курсор последней доставленной выгрузки
	Version        int                         `json:"version"`                     // версия схемы записи
}

// WithBackgroundSync returns a copy of the token with the background sync
// section replaced and every other section preserved.
func (t SyncToken) WithBackgroundSync(reg *BackgroundSyncRegistration) SyncToken {
	merged := t
	merged.BackgroundSync = reg
	if merged.Version == 0 {
		merged.Version = SyncTokenVersion
	}
	return merged
}

// SyncClient представляет зарегистрированное клиентское устройство.
// Пара (user_id, device_id) уникальна: одно устройство пользователя
// регистрируется один раз.
type SyncClient struct {
	CreatedAt     time.Time  `json:"created_at"`      // время регистрации
	LastSeenAt    *time.Time `json:"last_seen_at"`    // время последней активности (nil = не отмечалось)
	ID            string     `json:"id"`              // UUID клиента
	UserID        string     `json:"user_id"`         // владелец устройства
	DeviceID      string     `json:"device_id"`       // стабильный идентификатор устройства
	DeviceKeyHash string     `json:"device_key_hash"` // argon2id хеш секрета устройства
	SyncToken     SyncToken  `json:"sync_token"`      // типизированная конфигурация синхронизации
}
