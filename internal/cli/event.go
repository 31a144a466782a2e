package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/pkg/api"
)

func (c *Cli) runProcessEvent(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: synckit process-event <client-id> <tag> [last-chance]")
	}

	event := &api.SyncEvent{
		Tag:      args[1],
		ClientID: args[0],
	}
	if len(args) > 2 {
		if args[2] != "last-chance" {
			return fmt.Errorf("unknown option %q, expected 'last-chance'", args[2])
		}
		event.LastChance = true
	}

	if err := c.router.ProcessSyncEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to process sync event: %w", err)
	}

	c.io.Println("Sync event processed.")
	return nil
}

func (c *Cli) runEnqueue(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("missing arguments. Usage: synckit enqueue <client-id> <entity-type> <create|update|delete> [payload]")
	}

	var payload string
	if len(args) > 3 {
		payload = args[3]
	} else {
		// Интерактивный ввод, как при add у обычных CLI менеджеров
		input, err := c.io.ReadInput("Payload JSON (empty for {}): ")
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		payload = input
	}
	if payload == "" {
		payload = "{}"
	}
	if !json.Valid([]byte(payload)) {
		return fmt.Errorf("payload is not valid JSON")
	}

	op := models.Operation(strings.ToUpper(args[2]))
	item, err := c.router.EnqueueChange(ctx, args[0], models.EntityType(args[1]), op, json.RawMessage(payload))
	if err != nil {
		return fmt.Errorf("failed to enqueue change: %w", err)
	}

	c.io.Printf("Queued %s %s as item %s.\n", strings.ToLower(args[2]), args[1], item.ID)
	return nil
}
