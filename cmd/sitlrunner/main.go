// sitlrunner - debug entry point for the SITL launcher.
//
// It launches one ArduPilot SITL instance with flight logging enabled,
// keeps it alive for the configured run duration (or until interrupted),
// then tears the simulator and its scratch workspace down.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nimbus-aero/sitl-core/internal/infrastructure/config"
	"github.com/nimbus-aero/sitl-core/internal/infrastructure/logging"
	"github.com/nimbus-aero/sitl-core/internal/sim"
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
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) so the deferred
	// teardown still runs
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
	log.Info("starting sitl runner",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// Build the launcher. This is a debug runner, so flight logging is
	// always on regardless of the configured value.
	launcher, err := sim.NewLauncher(sim.Config{
		Binary:       cfg.Simulator.Binary,
		VehicleType:  cfg.Simulator.VehicleType,
		VehicleID:    cfg.Simulator.VehicleID,
		VehicleModel: cfg.Simulator.VehicleModel,
		EnableLogs:   true,
		LogDir:       cfg.Simulator.LogDir,
		WipeEEPROM:   cfg.Simulator.WipeEEPROM,
		ParamFile:    cfg.Simulator.ParamFile,
	})
	if err != nil {
		return fmt.Errorf("creating launcher: %w", err)
	}
	launcher.SetLogger(log.With("component", "sim"))
	defer func() {
		log.Info("tearing down simulator")
		if closeErr := launcher.Close(); closeErr != nil {
			log.Error("error tearing down simulator", "error", closeErr)
		}
	}()

	log.Info("launching simulator", "workspace", launcher.Workspace())
	if err := launcher.Launch(ctx); err != nil {
		return fmt.Errorf("launching simulator: %w", err)
	}

	// Keep the simulator alive for the configured duration or until a
	// shutdown signal arrives
	duration := cfg.GetRunDuration()
	log.Info("simulator running", "duration", duration)

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case <-time.After(duration):
		log.Info("run duration elapsed")
	}

	log.Info("sitl runner stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SITL_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SITL_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
