package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runRetry(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing client ID. Usage: synckit retry <client-id> [max-retries]")
	}

	maxRetries := 0 // 0 означает лимит из политики роутера
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid max-retries %q, expected a positive number", args[1])
		}
		maxRetries = n
	}

	count, err := c.router.RetryFailedItems(ctx, args[0], maxRetries)
	if err != nil {
		return fmt.Errorf("failed to retry queue items: %w", err)
	}

	if count == 0 {
		c.io.Println("No failed items eligible for retry.")
		return nil
	}

	c.io.Printf("Re-queued %d item(s) and scheduled a retry job.\n", count)
	return nil
}

func (c *Cli) runCleanup(ctx context.Context, args []string) error {
	days := 0 // 0 означает срок хранения из политики роутера
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid days %q, expected a positive number", args[0])
		}
		days = n
	}

	deleted, err := c.router.CleanupQueue(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to clean up queue: %w", err)
	}

	c.io.Printf("Deleted %d completed item(s).\n", deleted)
	return nil
}
