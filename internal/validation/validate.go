package validation

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/upfleet/synckit/internal/models"
)

// DeviceIDPattern определяет допустимый формат идентификатора устройства
// Только латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 3-64 символа
var DeviceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

// TagPattern определяет допустимый формат тега события синхронизации
// Строчные латинские буквы, цифры и дефисы, начинается с буквы
var TagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

const (
	// MinDeviceIDLen минимальная длина идентификатора устройства
	MinDeviceIDLen = 3
	// MaxDeviceIDLen максимальная длина идентификатора устройства
	MaxDeviceIDLen = 64
	// MaxTagLen максимальная длина тега события синхронизации
	MaxTagLen = 64
)

// ValidateEntityType проверяет, что тип сущности отслеживается синхронизацией
func ValidateEntityType(entityType string) error {
	if entityType == "" {
		return fmt.Errorf("entity type cannot be empty")
	}

	if !models.IsSyncable(models.EntityType(entityType)) {
		return fmt.Errorf("entity type %q is not tracked for sync", entityType)
	}

	return nil
}

// ValidateSyncTag проверяет формат тега события синхронизации
// Формат: строчные латинские буквы (a-z), цифры (0-9), дефисы (-)
// Длина: до 64 символов
func ValidateSyncTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("sync tag cannot be empty")
	}

	if len(tag) > MaxTagLen {
		return fmt.Errorf("sync tag must not exceed %d characters", MaxTagLen)
	}

	if !TagPattern.MatchString(tag) {
		return fmt.Errorf("sync tag can only contain lowercase letters (a-z), numbers (0-9), and hyphens (-)")
	}

	return nil
}

// ValidateDeviceID проверяет, что идентификатор устройства соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 3-64 символа
func ValidateDeviceID(deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("device id cannot be empty")
	}

	if len(deviceID) < MinDeviceIDLen {
		return fmt.Errorf("device id must be at least %d characters long", MinDeviceIDLen)
	}

	if len(deviceID) > MaxDeviceIDLen {
		return fmt.Errorf("device id must not exceed %d characters", MaxDeviceIDLen)
	}

	if !DeviceIDPattern.MatchString(deviceID) {
		return fmt.Errorf("device id can only contain letters (a-z, A-Z), numbers (0-9), hyphens (-), and underscores (_)")
	}

	return nil
}

// ValidateClientID проверяет, что идентификатор клиента является корректным UUID
func ValidateClientID(clientID string) error {
	if clientID == "" {
		return fmt.Errorf("client id cannot be empty")
	}

	if _, err := uuid.Parse(clientID); err != nil {
		return fmt.Errorf("client id must be a valid UUID: %w", err)
	}

	return nil
}
