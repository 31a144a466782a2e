package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/validation"
)

// defaultMinInterval используется для register-sync, если интервал не задан.
const defaultMinInterval = 15 * time.Minute

func (c *Cli) runRegisterClient(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("missing arguments. Usage: synckit register-client <org-id> <user-id> <device-id>")
	}

	secret, err := c.getDeviceSecret(c.secrets)
	if err != nil {
		return fmt.Errorf("failed to get device secret: %w", err)
	}

	client, token, err := c.clients.RegisterClient(ctx, args[0], args[1], args[2], secret)
	if err != nil {
		return fmt.Errorf("failed to register client: %w", err)
	}

	c.io.Println("=== Client Registered ===")
	c.io.Println()
	c.io.Printf("Client ID:    %s\n", client.ID)
	c.io.Printf("Device:       %s\n", client.DeviceID)
	c.io.Printf("Device token: %s\n", token)
	c.io.Println()
	c.io.Println("Store the token securely, the device presents it on every sync call.")
	return nil
}

func (c *Cli) runRegisterSync(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("missing arguments. Usage: synckit register-sync <org-id> <user-id> <device-id> <tag> [interval]")
	}

	if err := validation.ValidateSyncTag(args[3]); err != nil {
		return fmt.Errorf("invalid sync tag: %w", err)
	}

	interval := defaultMinInterval
	if len(args) > 4 {
		parsed, err := time.ParseDuration(args[4])
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", args[4], err)
		}
		if parsed <= 0 {
			return fmt.Errorf("interval must be positive, got %q", args[4])
		}
		interval = parsed
	}

	reg := &models.BackgroundSyncRegistration{
		RegisteredAt:    time.Now(),
		Tag:             args[3],
		MinInterval:     interval.Milliseconds(),
		MaxRetries:      3,
		RequiresNetwork: true,
	}

	client, err := c.clients.RegisterBackgroundSync(ctx, args[0], args[1], args[2], reg)
	if err != nil {
		return fmt.Errorf("failed to register background sync: %w", err)
	}

	c.io.Println("=== Background Sync Registered ===")
	c.io.Println()
	c.io.Printf("Client:   %s\n", client.ID)
	c.io.Printf("Tag:      %s\n", reg.Tag)
	c.io.Printf("Interval: %s\n", interval)
	return nil
}
