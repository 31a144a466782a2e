// Package clients manages sync client registration, device
// authentication and the per-client sync token.
package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
	"github.com/upfleet/synckit/internal/validation"
)

// ErrForbidden is returned when the addressed client belongs to another
// organization than the caller.
var ErrForbidden = errors.New("client belongs to another organization")

// Service handles sync client registration and device tokens.
type Service struct {
	logger *slog.Logger
	store  storage.ClientStorage
	tokens TokenConfig
}

// NewService creates a clients Service.
func NewService(logger *slog.Logger, store storage.ClientStorage, tokens TokenConfig) *Service {
	return &Service{
		logger: logger,
		store:  store,
		tokens: tokens,
	}
}

// RegisterClient registers a device of the user as a sync client and
// issues its device token. organizationID guards cross-tenant calls,
// empty skips the check. Returns storage.ErrClientAlreadyExists when
// the (user, device) pair is already registered.
func (s *Service) RegisterClient(ctx context.Context, organizationID, userID, deviceID, deviceSecret string) (*models.SyncClient, string, error) {
	if err := validation.ValidateDeviceID(deviceID); err != nil {
		return nil, "", err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}
	if organizationID != "" && user.OrganizationID != organizationID {
		return nil, "", ErrForbidden
	}

	hash, err := HashDeviceSecret(deviceSecret)
	if err != nil {
		return nil, "", err
	}

	client := &models.SyncClient{
		CreatedAt:     time.Now(),
		ID:            uuid.New().String(),
		UserID:        userID,
		DeviceID:      deviceID,
		DeviceKeyHash: hash,
		SyncToken:     models.SyncToken{Version: models.SyncTokenVersion},
	}
	if err := s.store.CreateClient(ctx, client); err != nil {
		return nil, "", fmt.Errorf("failed to register client: %w", err)
	}

	token, _, err := GenerateDeviceToken(s.tokens, client)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("sync client registered",
		"client_id", client.ID,
		"user_id", userID,
		"device_id", deviceID)

	return client, token, nil
}

// Authenticate verifies the device secret and issues a fresh device
// token. Returns storage.ErrClientNotFound for unknown devices.
func (s *Service) Authenticate(ctx context.Context, userID, deviceID, deviceSecret string) (*models.SyncClient, string, error) {
	client, err := s.store.GetClientByDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load client: %w", err)
	}

	if err := VerifyDeviceSecret(deviceSecret, client.DeviceKeyHash); err != nil {
		return nil, "", err
	}

	now := time.Now()
	if err := s.store.UpdateClientLastSeen(ctx, client.ID, now); err != nil {
		return nil, "", fmt.Errorf("failed to update last seen: %w", err)
	}
	client.LastSeenAt = &now

	token, _, err := GenerateDeviceToken(s.tokens, client)
	if err != nil {
		return nil, "", err
	}

	return client, token, nil
}

// RegisterBackgroundSync stores a background sync registration on the
// client's sync token, replacing only that section and preserving the
// rest. Returns storage.ErrClientNotFound for unknown devices. The
// cross-tenant check runs before any mutation; empty organizationID
// skips it.
func (s *Service) RegisterBackgroundSync(ctx context.Context, organizationID, userID, deviceID string, reg *models.BackgroundSyncRegistration) (*models.SyncClient, error) {
	client, err := s.store.GetClientByDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	if organizationID != "" {
		user, err := s.store.GetUserByID(ctx, client.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load client owner: %w", err)
		}
		if user.OrganizationID != organizationID {
			return nil, ErrForbidden
		}
	}

	// nil registration снимает подписку, остальные секции не меняются.
	token := client.SyncToken.WithBackgroundSync(reg)
	if err := s.store.UpdateSyncToken(ctx, client.ID, token); err != nil {
		return nil, fmt.Errorf("failed to update sync token: %w", err)
	}
	client.SyncToken = token

	tag := ""
	if reg != nil {
		tag = reg.Tag
	}
	s.logger.Info("background sync registered",
		"client_id", client.ID,
		"user_id", userID,
		"device_id", deviceID,
		"tag", tag)

	return client, nil
}
