package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
)

// uniqueViolation - код ошибки PostgreSQL для нарушения UNIQUE ограничения
const uniqueViolation = "23505"

// CreateClient registers a new sync client
// Returns ErrClientAlreadyExists if the (user_id, device_id) pair is taken
func (s *Storage) CreateClient(ctx context.Context, client *models.SyncClient) error {
	token, err := json.Marshal(client.SyncToken)
	if err != nil {
		return fmt.Errorf("failed to marshal sync token: %w", err)
	}

	query := `
		INSERT INTO sync_clients (id, user_id, device_id, device_key_hash, sync_token, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = s.db.ExecContext(ctx, query,
		client.ID,
		client.UserID,
		client.DeviceID,
		client.DeviceKeyHash,
		string(token),
		client.CreatedAt,
		client.LastSeenAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrClientAlreadyExists
		}
		return fmt.Errorf("failed to insert client: %w", err)
	}

	return nil
}

// GetClient retrieves a client by ID
// Returns ErrClientNotFound if the client doesn't exist
func (s *Storage) GetClient(ctx context.Context, id string) (*models.SyncClient, error) {
	query := `
		SELECT id, user_id, device_id, device_key_hash, sync_token, created_at, last_seen_at
		FROM sync_clients
		WHERE id = $1
	`

	return s.scanClientRow(s.db.QueryRowContext(ctx, query, id))
}

// GetClientByDevice retrieves a client by its (user_id, device_id) pair
// Returns ErrClientNotFound if the client doesn't exist
func (s *Storage) GetClientByDevice(ctx context.Context, userID, deviceID string) (*models.SyncClient, error) {
	query := `
		SELECT id, user_id, device_id, device_key_hash, sync_token, created_at, last_seen_at
		FROM sync_clients
		WHERE user_id = $1 AND device_id = $2
	`

	return s.scanClientRow(s.db.QueryRowContext(ctx, query, userID, deviceID))
}

// UpdateSyncToken replaces the client's sync token
// Returns ErrClientNotFound if the client doesn't exist
func (s *Storage) UpdateSyncToken(ctx context.Context, clientID string, token models.SyncToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal sync token: %w", err)
	}

	query := `UPDATE sync_clients SET sync_token = $1 WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, string(data), clientID)
	if err != nil {
		return fmt.Errorf("failed to update sync token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrClientNotFound
	}

	return nil
}

// UpdateClientLastSeen updates the last seen timestamp
// Returns ErrClientNotFound if the client doesn't exist
func (s *Storage) UpdateClientLastSeen(ctx context.Context, clientID string, at time.Time) error {
	query := `UPDATE sync_clients SET last_seen_at = $1 WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, at, clientID)
	if err != nil {
		return fmt.Errorf("failed to update last seen: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrClientNotFound
	}

	return nil
}

// ListClientBacklogs returns the pending item count per client for all
// clients belonging to the organization, including clients with an empty
// queue
func (s *Storage) ListClientBacklogs(ctx context.Context, organizationID string) ([]models.ClientBacklog, error) {
	query := `
		SELECT c.id,
		       COALESCE(SUM(CASE WHEN q.status = 'PENDING' THEN 1 ELSE 0 END), 0)
		FROM sync_clients c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN sync_queue_items q ON q.client_id = c.id
		WHERE u.organization_id = $1
		GROUP BY c.id
		ORDER BY c.id
	`

	rows, err := s.db.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query client backlogs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	backlogs := []models.ClientBacklog{}

	for rows.Next() {
		var b models.ClientBacklog
		if err := rows.Scan(&b.ClientID, &b.Pending); err != nil {
			return nil, fmt.Errorf("failed to scan client backlog: %w", err)
		}
		backlogs = append(backlogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return backlogs, nil
}

// CreateUser creates a new user in the storage
// Returns ErrUserAlreadyExists if the username is taken
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, organization_id, username, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.OrganizationID,
		user.Username,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves user by ID
// Returns ErrUserNotFound if the user doesn't exist
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, organization_id, username, created_at
		FROM users
		WHERE id = $1
	`

	user := &models.User{}

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.OrganizationID,
		&user.Username,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Storage) scanClientRow(row scanner) (*models.SyncClient, error) {
	client := &models.SyncClient{}
	var token []byte
	var lastSeen sql.NullTime

	err := row.Scan(
		&client.ID,
		&client.UserID,
		&client.DeviceID,
		&client.DeviceKeyHash,
		&token,
		&client.CreatedAt,
		&lastSeen,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if err := json.Unmarshal(token, &client.SyncToken); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sync token: %w", err)
	}

	if lastSeen.Valid {
		client.LastSeenAt = &lastSeen.Time
	}

	return client, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
