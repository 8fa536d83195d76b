// Homedeck - Smart Home Dashboard Service
//
// This is the main entry point for the Homedeck service: a
// single-process smart home dashboard over a fixed set of simulated
// devices. It serves rendered dashboard screens, device command
// endpoints, an action journal, and a simulated power figure.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/homedeck/internal/actionlog"
	"github.com/nerrad567/homedeck/internal/api"
	"github.com/nerrad567/homedeck/internal/device"
	"github.com/nerrad567/homedeck/internal/infrastructure/config"
	"github.com/nerrad567/homedeck/internal/infrastructure/logging"
	"github.com/nerrad567/homedeck/internal/view"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Homedeck",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	cfg, err := loadConfig(log)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Initialise device registry with the fixed demo devices
	registry, err := device.NewRegistry(device.Seed())
	if err != nil {
		return fmt.Errorf("seeding device registry: %w", err)
	}
	registry.SetLogger(log)
	log.Info("device registry initialised", "devices", registry.Count())

	// Action journal
	actions := actionlog.New(cfg.Dashboard.ActionLogCapacity)
	log.Info("action journal initialised", "capacity", actions.Capacity())

	// Navigation router
	views, err := view.NewRouter(registry, actions)
	if err != nil {
		return fmt.Errorf("initialising view router: %w", err)
	}

	// Start API server
	server, err := api.New(api.Deps{
		Config:      cfg.API,
		Logger:      log,
		Registry:    registry,
		ActionLog:   actions,
		Views:       views,
		DefaultUser: cfg.Dashboard.DefaultUser,
		Version:     version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server started", "host", cfg.API.Host, "port", cfg.API.Port)

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("Homedeck stopped")
	return nil
}

// loadConfig loads configuration from HOMEDECK_CONFIG or the default
// path. A missing file at the default path is not an error; the
// built-in defaults are used so the demo runs with no setup. An
// explicitly configured path must exist.
func loadConfig(log *logging.Logger) (*config.Config, error) {
	path := os.Getenv("HOMEDECK_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			log.Info("no config file found, using defaults", "path", path)
			return config.Default(), nil
		}
		return nil, err
	}

	log.Info("configuration loaded", "path", path)
	return cfg, nil
}
