package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/blablab-app/blablab-server/internal/config"
	"github.com/blablab-app/blablab-server/internal/ingest"
	"github.com/blablab-app/blablab-server/internal/logger"
	"github.com/blablab-app/blablab-server/internal/pipeline"
	"github.com/blablab-app/blablab-server/internal/server"
	"github.com/blablab-app/blablab-server/internal/watcher"
)

func main() {
	ctx := context.Background()

	// Load .env if present
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, falling back to environment variables")
	}

	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Blablab Audio Processing API")
	log.Info(ctx, "========================================")

	pipe, err := pipeline.NewFromConfig(cfg, config.CredentialsFromEnv(), log)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	srv := server.New(pipe, log, cfg.Limits.MaxUploadBytes)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Listen(cfg.Server.Addr); err != nil {
			errChan <- err
		}
	}()

	if cfg.Watch.Enabled {
		if err := ensureDirectories(cfg); err != nil {
			log.Error(ctx, "Failed to create watch directories: %v", err)
			os.Exit(1)
		}

		ing := ingest.New(pipe, cfg, log)
		w, err := watcher.New(cfg.Watch.Input, ing.Handle, log, cfg.Watch.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()

		log.Info(ctx, "Watch mode enabled: %s -> %s (voice=%s, max concurrent: %d)",
			cfg.Watch.Input, cfg.Watch.Output, cfg.Watch.Voice, cfg.Watch.MaxConcurrent)
	}

	log.Info(ctx, "Listening on %s", cfg.Server.Addr)
	log.Info(ctx, "Segmentation threshold: %d bytes, pacing: %dms", cfg.Limits.SegmentBytes, cfg.Limits.PacingMs)
	log.Info(ctx, "Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Blablab stopped")
}

// ensureDirectories creates the watch-mode directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Watch.Input,
		cfg.Watch.Output,
		cfg.Watch.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
