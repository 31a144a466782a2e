package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncToken_WithBackgroundSync(t *testing.T) {
	lastSync := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token := SyncToken{
		Version:        SyncTokenVersion,
		Cursor:         "cursor-42",
		LastFullSyncAt: &lastSync,
	}

	reg := &BackgroundSyncRegistration{
		Tag:             "sync-all",
		MinInterval:     60000,
		MaxRetries:      5,
		RequiresNetwork: true,
		RegisteredAt:    time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
	}

	merged := token.WithBackgroundSync(reg)

	// Секция background sync заменена
	require.NotNil(t, merged.BackgroundSync)
	assert.Equal(t, "sync-all", merged.BackgroundSync.Tag)
	assert.Equal(t, int64(60000), merged.BackgroundSync.MinInterval)

	// Остальные секции сохранены без изменений
	assert.Equal(t, "cursor-42", merged.Cursor)
	require.NotNil(t, merged.LastFullSyncAt)
	assert.True(t, merged.LastFullSyncAt.Equal(lastSync))
	assert.Equal(t, SyncTokenVersion, merged.Version)

	// Исходный токен не модифицирован
	assert.Nil(t, token.BackgroundSync)
}

func TestSyncToken_WithBackgroundSync_ZeroToken(t *testing.T) {
	var token SyncToken

	merged := token.WithBackgroundSync(&BackgroundSyncRegistration{Tag: "sync-tasks"})

	require.NotNil(t, merged.BackgroundSync)
	assert.Equal(t, "sync-tasks", merged.BackgroundSync.Tag)
	// Пустой токен получает актуальную версию схемы
	assert.Equal(t, SyncTokenVersion, merged.Version)
	assert.Empty(t, merged.Cursor)
	assert.Nil(t, merged.LastFullSyncAt)
}

func TestSyncToken_WithBackgroundSync_Replace(t *testing.T) {
	token := SyncToken{
		Version:        SyncTokenVersion,
		BackgroundSync: &BackgroundSyncRegistration{Tag: "sync-all", MaxRetries: 3},
	}

	merged := token.WithBackgroundSync(&BackgroundSyncRegistration{Tag: "sync-assets", MaxRetries: 1})

	require.NotNil(t, merged.BackgroundSync)
	assert.Equal(t, "sync-assets", merged.BackgroundSync.Tag)
	assert.Equal(t, 1, merged.BackgroundSync.MaxRetries)
}
