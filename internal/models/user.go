package models

import "time"

// User представляет пользователя-владельца sync-клиентов. Записи
// принадлежат хост-приложению; движку синхронизации нужны только
// привязка к организации и маршрутизация уведомлений.
type User struct {
	CreatedAt      time.Time `json:"created_at"`      // время создания
	ID             string    `json:"id"`              // UUID пользователя
	OrganizationID string    `json:"organization_id"` // организация (tenant)
	Username       string    `json:"username"`        // уникальный username
}
