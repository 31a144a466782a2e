package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/upfleet/synckit/internal/archive"
	"github.com/upfleet/synckit/internal/cli"
	"github.com/upfleet/synckit/internal/cli/iocli"
	"github.com/upfleet/synckit/internal/clients"
	"github.com/upfleet/synckit/internal/config"
	"github.com/upfleet/synckit/internal/health"
	"github.com/upfleet/synckit/internal/jobs"
	"github.com/upfleet/synckit/internal/router"
	"github.com/upfleet/synckit/internal/storage/factory"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "synckit.yaml", "Path to config file")
	secret := flag.String("secret", "", "Device secret (not recommended, use env var or file)")
	secretFile := flag.String("secret-file", "", "Path to file containing the device secret")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	// Открываем хранилище метаданных и очереди
	store, err := factory.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	// Локальная очередь sync-заданий
	jobQueue, err := jobs.NewBoltQueue(cfg.Jobs.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open job queue: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := jobQueue.Close(); err != nil {
			logger.Error("failed to close job queue", "error", err)
		}
	}()

	r := router.New(logger, store, store, jobQueue, nil, router.Policy{
		MaxRetries:  cfg.Policy.MaxRetries,
		CleanupDays: cfg.Policy.CleanupDays,
	})
	h := health.New(logger, store, store, health.Thresholds{
		FailureRateWarn: cfg.Health.FailureRateWarn,
		BacklogLimit:    cfg.Health.BacklogLimit,
		BacklogPenalty:  cfg.Health.BacklogPenalty,
	})
	cs := clients.NewService(logger, store, clients.TokenConfig{
		Secret: []byte(cfg.Tokens.Secret),
		TTL:    cfg.Tokens.TTL.Std(),
	})

	// Архиватор собирается только при включенном объектном хранилище
	var archiver *archive.Archiver
	if cfg.Archive.Enabled {
		objects, err := archive.NewS3Store(ctx, cfg.Archive.S3)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to init object storage: %v\n", err)
			os.Exit(1)
		}
		archiver = archive.NewArchiver(logger, store, objects)
	}

	secrets := cli.Secrets{
		FromFile: *secretFile,
		FromArgs: *secret,
	}

	c := cli.New(iocli.NewStdio(), r, h, cs, archiver, secrets)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Synckit CLI\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
