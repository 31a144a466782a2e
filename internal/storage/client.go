package storage

import (
	"context"
	"time"

	"github.com/upfleet/synckit/internal/models"
)

//go:generate moq -out client_mock.go . ClientStorage

// ClientStorage defines interface for sync client and user persistence.
type ClientStorage interface {
	// CreateClient registers a new sync client.
	// Returns ErrClientAlreadyExists if the (user_id, device_id) pair
	// is already registered.
	CreateClient(ctx context.Context, client *models.SyncClient) error

	// GetClient retrieves a sync client by id.
	// Returns ErrClientNotFound if the client doesn't exist.
	GetClient(ctx context.Context, id string) (*models.SyncClient, error)

	// GetClientByDevice retrieves a sync client by its owning user and
	// device id. Returns ErrClientNotFound if the client doesn't exist.
	GetClientByDevice(ctx context.Context, userID, deviceID string) (*models.SyncClient, error)

	// UpdateSyncToken replaces the client's sync token record.
	// Returns ErrClientNotFound if the client doesn't exist.
	UpdateSyncToken(ctx context.Context, clientID string, token models.SyncToken) error

	// UpdateClientLastSeen stamps the client's last activity time.
	// Returns ErrClientNotFound if the client doesn't exist.
	UpdateClientLastSeen(ctx context.Context, clientID string, at time.Time) error

	// ListClientBacklogs returns every registered client of the
	// organization with its pending-queue depth.
	// Returns empty slice if the organization has no clients.
	ListClientBacklogs(ctx context.Context, organizationID string) ([]models.ClientBacklog, error)

	// CreateUser creates a new user in the storage.
	// Returns ErrUserAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves user by ID.
	// Returns ErrUserNotFound if user doesn't exist.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// Store bundles every persistence interface the engine needs. Both the
// sqlite and postgres backends implement it on a single struct.
type Store interface {
	MetadataStorage
	QueueStorage
	ClientStorage

	// Close releases the underlying database connection.
	Close() error
}
