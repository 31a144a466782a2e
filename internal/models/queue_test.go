package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncQueueItem_Exhausted(t *testing.T) {
	tests := []struct {
		name       string
		retryCount int
		maxRetries int
		want       bool
	}{
		{name: "fresh item", retryCount: 0, maxRetries: 3, want: false},
		{name: "below ceiling", retryCount: 2, maxRetries: 3, want: false},
		{name: "at ceiling", retryCount: 3, maxRetries: 3, want: true},
		{name: "above ceiling", retryCount: 5, maxRetries: 3, want: true},
		{name: "custom ceiling", retryCount: 3, maxRetries: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &SyncQueueItem{RetryCount: tt.retryCount}
			assert.Equal(t, tt.want, item.Exhausted(tt.maxRetries))
		})
	}
}

func TestSyncMetadata_Clone(t *testing.T) {
	deletedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m := &SyncMetadata{
		EntityType:     EntityAsset,
		EntityID:       "asset-1",
		Version:        4,
		LastModifiedBy: "user-1",
		Checksum:       "abc",
		DeletedAt:      &deletedAt,
	}

	clone := m.Clone()
	assert.Equal(t, m, clone)

	// Копия глубокая: изменение DeletedAt не затрагивает оригинал
	*clone.DeletedAt = clone.DeletedAt.Add(time.Hour)
	assert.True(t, m.DeletedAt.Equal(deletedAt))
	assert.True(t, m.IsDeleted())
}
