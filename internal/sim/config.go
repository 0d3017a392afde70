package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Defaults applied by NewLauncher for zero-valued Config fields.
const (
	// DefaultBinary is the ArduPilot SITL launch wrapper, resolved via PATH.
	DefaultBinary = "sim_vehicle.py"

	// DefaultVehicleType is the vehicle type passed via -v.
	DefaultVehicleType = "ArduCopter"

	// DefaultVehicleID is the MAVLink system ID used when none is configured.
	DefaultVehicleID = 1
)

// Config holds the configuration for a SITL simulator instance.
type Config struct {
	// Binary is the simulator launch command.
	// Default: "sim_vehicle.py"
	Binary string `yaml:"binary"`

	// VehicleType is the ArduPilot vehicle type (-v flag).
	// Default: "ArduCopter"
	VehicleType string `yaml:"vehicle_type"`

	// VehicleID is the MAVLink system ID for this vehicle (--sysid).
	// Must be positive. Default: 1
	VehicleID int `yaml:"vehicle_id"`

	// VehicleModel selects a specific frame model.
	// Reserved for future use; currently not passed to the simulator.
	VehicleModel string `yaml:"vehicle_model,omitempty"`

	// EnableLogs enables flight logging to LogDir (--aircraft flag).
	EnableLogs bool `yaml:"enable_logs"`

	// LogDir is where the simulator writes flight logs when enabled.
	// If empty, a "logs" directory next to the running executable is used.
	LogDir string `yaml:"log_dir,omitempty"`

	// WipeEEPROM wipes the simulated EEPROM on startup (-w flag).
	WipeEEPROM bool `yaml:"wipe_eeprom"`

	// ParamFile is an extra parameter file passed via --add-param-file.
	// If empty, the default parameter file embedded in the binary is
	// written into the scratch workspace and used.
	ParamFile string `yaml:"param_file,omitempty"`
}

// applyDefaults fills zero-valued fields with their defaults.
func (c *Config) applyDefaults() {
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.VehicleType == "" {
		c.VehicleType = DefaultVehicleType
	}
	if c.VehicleID == 0 {
		c.VehicleID = DefaultVehicleID
	}
	if c.LogDir == "" {
		c.LogDir = defaultLogDir()
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("simulator binary is required")
	}

	if c.VehicleType == "" {
		return fmt.Errorf("vehicle_type is required")
	}

	if c.VehicleID < 1 {
		return fmt.Errorf("vehicle_id must be a positive integer, got %d", c.VehicleID)
	}

	if c.EnableLogs {
		if err := validateSafePathComponent(c.LogDir, "log_dir"); err != nil {
			return err
		}
	}

	if c.ParamFile != "" {
		if err := validateSafePathComponent(c.ParamFile, "param_file"); err != nil {
			return err
		}
	}

	return nil
}

// BuildArgs constructs the command-line arguments for sim_vehicle.py.
//
// paramFile is the resolved path of the extra parameter file; the
// launcher supplies the workspace copy of the embedded defaults when no
// file is configured.
//
// Flags that do not apply are omitted entirely, never passed as empty
// strings.
func (c *Config) BuildArgs(paramFile string) []string {
	args := []string{"-v", c.VehicleType}

	// MAVLink system ID (--sysid)
	args = append(args, fmt.Sprintf("--sysid=%d", c.VehicleID))

	// Extra parameters on top of the SITL defaults
	args = append(args, fmt.Sprintf("--add-param-file=%s", paramFile))

	// Flight log directory (--aircraft) - only when logging is enabled
	if c.EnableLogs {
		args = append(args, fmt.Sprintf("--aircraft=%s", c.LogDir))
	}

	// Wipe the simulated EEPROM (-w)
	if c.WipeEEPROM {
		args = append(args, "-w")
	}

	return args
}

// defaultLogDir returns the flight log directory used when none is
// configured: a "logs" directory alongside the running executable.
func defaultLogDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "logs"
	}
	return filepath.Join(filepath.Dir(exe), "logs")
}

// safePathPattern allows alphanumeric, hyphen, underscore, dot, forward
// slash, and colon. This prevents shell metacharacters from reaching the
// subprocess argument list.
var safePathPattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-/:]+$`)

// validateSafePathComponent ensures a string doesn't contain shell metacharacters.
func validateSafePathComponent(value, fieldName string) error {
	if !safePathPattern.MatchString(value) {
		return fmt.Errorf("%s contains invalid characters (allowed: alphanumeric, hyphen, underscore, dot, slash, colon)", fieldName)
	}
	for _, c := range []string{";", "|", "&", "$", "`", "(", ")", "{", "}", "<", ">", "!", "\\", "'", "\""} {
		if strings.Contains(value, c) {
			return fmt.Errorf("%s contains forbidden character %q", fieldName, c)
		}
	}
	return nil
}
