package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the sitl runner.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Simulator SimulatorConfig `yaml:"simulator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SimulatorConfig contains settings for the managed SITL subprocess.
type SimulatorConfig struct {
	// Binary is the simulator launch command.
	// Default: "sim_vehicle.py" (resolved via PATH)
	Binary string `yaml:"binary"`

	// VehicleType is the ArduPilot vehicle type passed via -v.
	// Default: "ArduCopter"
	VehicleType string `yaml:"vehicle_type"`

	// VehicleID is the MAVLink system ID for this vehicle (--sysid).
	// Must be positive. Default: 1
	VehicleID int `yaml:"vehicle_id"`

	// VehicleModel selects a specific frame model.
	// Reserved for future use; currently not passed to the simulator.
	VehicleModel string `yaml:"vehicle_model,omitempty"`

	// EnableLogs enables simulator flight logging (--aircraft).
	EnableLogs bool `yaml:"enable_logs"`

	// LogDir is where the simulator writes flight logs when enabled.
	// If empty, a "logs" directory next to the running executable is used.
	LogDir string `yaml:"log_dir,omitempty"`

	// WipeEEPROM wipes the simulated EEPROM on startup (-w).
	WipeEEPROM bool `yaml:"wipe_eeprom"`

	// ParamFile is an extra parameter file passed via --add-param-file.
	// If empty, the default parameter file shipped inside the binary is used.
	ParamFile string `yaml:"param_file,omitempty"`

	// RunDurationSeconds is how long the debug runner keeps the simulator
	// alive before tearing it down.
	// Default: 60
	RunDurationSeconds int `yaml:"run_duration_seconds"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: SITL_SECTION_KEY
// For example: SITL_SIM_BINARY, SITL_LOG_DIR
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Simulator: SimulatorConfig{
			Binary:             "sim_vehicle.py",
			VehicleType:        "ArduCopter",
			VehicleID:          1,
			RunDurationSeconds: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: SITL_SECTION_KEY
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SITL_SIM_BINARY"); v != "" {
		cfg.Simulator.Binary = v
	}
	if v := os.Getenv("SITL_LOG_DIR"); v != "" {
		cfg.Simulator.LogDir = v
	}
	if v := os.Getenv("SITL_VEHICLE_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing SITL_VEHICLE_ID: %w", err)
		}
		cfg.Simulator.VehicleID = id
	}
	if v := os.Getenv("SITL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Simulator.Binary == "" {
		errs = append(errs, "simulator.binary is required")
	}
	if c.Simulator.VehicleType == "" {
		errs = append(errs, "simulator.vehicle_type is required")
	}
	if c.Simulator.VehicleID < 1 {
		errs = append(errs, "simulator.vehicle_id must be a positive integer")
	}
	if c.Simulator.RunDurationSeconds < 0 {
		errs = append(errs, "simulator.run_duration_seconds must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetRunDuration returns the debug runner duration as a Duration.
func (c *Config) GetRunDuration() time.Duration {
	return time.Duration(c.Simulator.RunDurationSeconds) * time.Second
}
