package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// defaultArchiveDays задает возраст завершенных элементов для архивации.
const defaultArchiveDays = 30

func (c *Cli) runArchive(ctx context.Context, args []string) error {
	if c.archiver == nil {
		return fmt.Errorf("archiving is not enabled, set archive.enabled in the config file")
	}

	days := defaultArchiveDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid days %q, expected a positive number", args[0])
		}
		days = n
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	manifest, err := c.archiver.Archive(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to archive queue items: %w", err)
	}
	if manifest == nil {
		c.io.Printf("No completed items older than %d day(s).\n", days)
		return nil
	}

	return c.renderTemplate("manifest", manifestTemplate, manifest)
}

func (c *Cli) runVerifyArchive(ctx context.Context, args []string) error {
	if c.archiver == nil {
		return fmt.Errorf("archiving is not enabled, set archive.enabled in the config file")
	}

	// Без аргументов проверяем все манифесты подряд
	keys := args
	if len(keys) == 0 {
		var err error
		keys, err = c.archiver.ListManifests(ctx)
		if err != nil {
			return fmt.Errorf("failed to list manifests: %w", err)
		}
		if len(keys) == 0 {
			c.io.Println("No archive manifests found.")
			return nil
		}
	}

	for _, key := range keys {
		manifest, err := c.archiver.VerifyArchive(ctx, key)
		if err != nil {
			return fmt.Errorf("verification failed for %s: %w", key, err)
		}
		c.io.Printf("✓ %s: %d item(s), checksum OK\n", key, manifest.Items)
	}

	return nil
}
