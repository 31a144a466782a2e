// Package factory opens a concrete storage backend by driver name.
// Вынесен в отдельный пакет, чтобы не создавать цикл импортов между
// storage и его реализациями.
package factory

import (
	"context"
	"fmt"

	"github.com/upfleet/synckit/internal/storage"
	"github.com/upfleet/synckit/internal/storage/postgres"
	"github.com/upfleet/synckit/internal/storage/sqlite"
)

// Open creates a storage backend.
// Supported drivers: "sqlite" (default) and "postgres".
func Open(ctx context.Context, driver, dsn string) (storage.Store, error) {
	switch driver {
	case "", "sqlite":
		return sqlite.New(ctx, dsn)
	case "postgres":
		return postgres.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
