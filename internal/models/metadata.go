package models

import "time"

// ActorSystem is recorded as lastModifiedBy when no user id can be
// derived from the mutation payload.
const ActorSystem = "system"

// SyncMetadata представляет запись отслеживания синхронизации для одной
// сущности. Ключ записи - пара (entity_type, entity_id), на сущность
// существует не более одной записи.
type SyncMetadata struct {
	LastModifiedAt time.Time  `json:"last_modified_at"` // время последнего отслеженного изменения
	DeletedAt      *time.Time `json:"deleted_at"`       // время soft delete (nil = запись жива)
	EntityType     EntityType `json:"entity_type"`      // тип сущности (asset, task, ...)
	EntityID       string     `json:"entity_id"`        // идентификатор сущности
	LastModifiedBy string     `json:"last_modified_by"` // id пользователя или "system"
	Checksum       string     `json:"checksum"`         // SHA-256 hex от канонического представления изменения
	ClientID       string     `json:"client_id"`        // id клиента, внесшего изменение ("" = сервер)
	Version        int64      `json:"version"`          // монотонно растущая версия, начинается с 1
}

// SyncVersion returns the current version of the metadata record.
// Implements the optimistic lock guard's Versioned interface.
// Safe on a nil receiver: a missing record reports version 0.
func (m *SyncMetadata) SyncVersion() int64 {
	if m == nil {
		return 0
	}
	return m.Version
}

// IsDeleted reports whether the tracked entity is soft-deleted.
func (m *SyncMetadata) IsDeleted() bool {
	return m.DeletedAt != nil
}

// Clone создает глубокую копию записи метаданных.
func (m *SyncMetadata) Clone() *SyncMetadata {
	clone := *m
	if m.DeletedAt != nil {
		deletedAt := *m.DeletedAt
		clone.DeletedAt = &deletedAt
	}
	return &clone
}
