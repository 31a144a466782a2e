package clients

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для хеширования секрета устройства
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного ключа в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
	// MinDeviceSecretLen минимальная длина секрета устройства
	MinDeviceSecretLen = 12
)

// GenerateSalt генерирует криптографически случайную соль указанного размера
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashDeviceSecret хеширует секрет устройства через Argon2id.
// Формат результата: base64(salt):base64(key)
func HashDeviceSecret(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("device secret cannot be empty")
	}
	if len(secret) < MinDeviceSecretLen {
		return "", fmt.Errorf("device secret must be at least %d characters long", MinDeviceSecretLen)
	}

	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(secret), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)

	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(key), nil
}

// VerifyDeviceSecret проверяет, соответствует ли секрет сохраненному хешу
func VerifyDeviceSecret(secret, encoded string) error {
	if secret == "" {
		return fmt.Errorf("device secret cannot be empty")
	}

	saltPart, keyPart, found := strings.Cut(encoded, ":")
	if !found {
		return fmt.Errorf("malformed device key hash")
	}

	salt, err := base64.StdEncoding.DecodeString(saltPart)
	if err != nil {
		return fmt.Errorf("failed to decode salt: %w", err)
	}
	if len(salt) != SaltSize {
		return fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	key, err := base64.StdEncoding.DecodeString(keyPart)
	if err != nil {
		return fmt.Errorf("failed to decode key: %w", err)
	}

	computed := argon2.IDKey([]byte(secret), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)

	if subtle.ConstantTimeCompare(computed, key) != 1 {
		return fmt.Errorf("invalid device secret")
	}

	return nil
}
