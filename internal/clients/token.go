package clients

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/upfleet/synckit/internal/models"
)

// tokenIssuer подставляется в iss каждого выданного токена
const tokenIssuer = "synckit"

// DeviceClaims представляет JWT claims токена устройства
type DeviceClaims struct {
	ClientID string `json:"client_id"`
	UserID   string `json:"user_id"`
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}

// TokenConfig содержит конфигурацию для JWT токенов устройств
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// GenerateDeviceToken создает JWT токен для зарегистрированного клиента
func GenerateDeviceToken(cfg TokenConfig, client *models.SyncClient) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.TTL)

	claims := DeviceClaims{
		ClientID: client.ID,
		UserID:   client.UserID,
		DeviceID: client.DeviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(cfg.TTL.Seconds()), nil
}

// ValidateDeviceToken валидирует и парсит JWT токен устройства
func ValidateDeviceToken(cfg TokenConfig, tokenString string) (*DeviceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*DeviceClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
