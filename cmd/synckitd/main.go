package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/upfleet/synckit/internal/archive"
	"github.com/upfleet/synckit/internal/config"
	"github.com/upfleet/synckit/internal/daemon"
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
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "synckit.yaml", "Path to config file")
	once := flag.Bool("once", false, "Run a single maintenance sweep and exit")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	// Останавливаемся по Ctrl+C и SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	var archiver *archive.Archiver
	if cfg.Archive.Enabled {
		objects, err := archive.NewS3Store(ctx, cfg.Archive.S3)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to init object storage: %v\n", err)
			os.Exit(1)
		}
		archiver = archive.NewArchiver(logger, store, objects)
	}

	d := daemon.New(logger, r, h, archiver, daemon.Options{
		Organizations: cfg.Daemon.Organizations,
		Interval:      cfg.Daemon.SweepInterval.Std(),
		CleanupDays:   cfg.Policy.CleanupDays,
	})

	if *once {
		d.Sweep(ctx)
		return
	}

	if err := d.Run(ctx); err != nil {
		logger.Error("daemon exited with error", "error", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Synckit Daemon\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
