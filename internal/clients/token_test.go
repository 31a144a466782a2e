package clients

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upfleet/synckit/internal/models"
)

func TestGenerateDeviceToken(t *testing.T) {
	cfg := TokenConfig{
		Secret: []byte("test-secret-key"),
		TTL:    time.Hour,
	}
	client := &models.SyncClient{
		ID:       "client-1",
		UserID:   "user-1",
		DeviceID: "pixel7",
	}

	tokenString, expiresIn, err := GenerateDeviceToken(cfg, client)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := ValidateDeviceToken(cfg, tokenString)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.ClientID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "pixel7", claims.DeviceID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateDeviceToken_WrongSecret(t *testing.T) {
	cfg := TokenConfig{Secret: []byte("test-secret-key"), TTL: time.Hour}
	client := &models.SyncClient{ID: "client-1", UserID: "user-1", DeviceID: "pixel7"}

	tokenString, _, err := GenerateDeviceToken(cfg, client)
	require.NoError(t, err)

	_, err = ValidateDeviceToken(TokenConfig{Secret: []byte("other-secret")}, tokenString)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestValidateDeviceToken_Expired(t *testing.T) {
	cfg := TokenConfig{Secret: []byte("test-secret-key"), TTL: -time.Hour}
	client := &models.SyncClient{ID: "client-1", UserID: "user-1", DeviceID: "pixel7"}

	tokenString, _, err := GenerateDeviceToken(cfg, client)
	require.NoError(t, err)

	_, err = ValidateDeviceToken(TokenConfig{Secret: []byte("test-secret-key")}, tokenString)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateDeviceToken_Garbage(t *testing.T) {
	_, err := ValidateDeviceToken(TokenConfig{Secret: []byte("test-secret-key")}, "not-a-token")
	require.Error(t, err)
}
