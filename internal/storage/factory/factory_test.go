package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store)
}

func TestOpen_DefaultDriver(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, "", ":memory:")
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store)
}

func TestOpen_UnknownDriver(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
