package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStats(ctx context.Context, args []string) error {
	// Проверяем наличие ID
	if len(args) == 0 {
		return fmt.Errorf("missing client ID. Usage: synckit stats <client-id>")
	}

	stats, err := c.router.QueueStats(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get queue stats: %w", err)
	}

	return c.renderTemplate("stats", statsTemplate, stats)
}
