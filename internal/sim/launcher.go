package sim

import (
	"context"
	"fmt"
	"os"

	"github.com/nimbus-aero/sitl-core/internal/process"
)

// Logger defines the logging interface for the launcher.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// procHandle is the subset of process.Handle the launcher needs.
// Tests substitute a fake so no real subprocess is spawned.
type procHandle interface {
	Kill() error
	PID() int
}

// startFunc spawns the simulator subprocess. The default implementation
// delegates to the process package.
type startFunc func(ctx context.Context, cfg process.Config, logger process.Logger) (procHandle, error)

func defaultStart(ctx context.Context, cfg process.Config, logger process.Logger) (procHandle, error) {
	h, err := process.Start(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Launcher manages the lifecycle of one SITL simulator subprocess.
//
// A Launcher owns at most one live process handle and an exclusively
// owned scratch workspace used as the child's working directory. It is
// not safe for concurrent use: Launch, Terminate and Close are plain
// synchronous calls intended to be made from a single goroutine.
//
// The owner must call Close when done with the Launcher. Close is the
// only cleanup guarantee: it kills a still-referenced process and
// removes the scratch workspace, exactly once, on every exit path the
// owner routes through it (typically via defer).
type Launcher struct {
	config    Config
	logger    Logger
	workspace string
	paramFile string

	start  startFunc
	handle procHandle
	closed bool
}

// NewLauncher creates a launcher for one simulator instance.
//
// It applies defaults to the configuration, validates it, and creates a
// fresh, uniquely named scratch workspace. When no parameter file is
// configured, the embedded defaults are written into the workspace.
//
// Filesystem faults creating the workspace or the parameter file are
// returned to the caller; nothing is left behind on failure.
func NewLauncher(cfg Config) (*Launcher, error) {
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulator config: %w", err)
	}

	workspace, err := os.MkdirTemp("", "sitl-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch workspace: %w", err)
	}

	paramFile := cfg.ParamFile
	if paramFile == "" {
		paramFile, err = writeDefaultParams(workspace)
		if err != nil {
			// Don't leak the workspace when construction fails partway.
			_ = os.RemoveAll(workspace)
			return nil, err
		}
	}

	return &Launcher{
		config:    cfg,
		logger:    noopLogger{},
		workspace: workspace,
		paramFile: paramFile,
		start:     defaultStart,
	}, nil
}

// SetLogger sets the logger for the launcher.
func (l *Launcher) SetLogger(logger Logger) {
	l.logger = logger
}

// Workspace returns the path of the scratch workspace. The directory
// exists from construction until Close.
func (l *Launcher) Workspace() string {
	return l.workspace
}

// ParamFile returns the path of the parameter file the simulator is
// launched with.
func (l *Launcher) ParamFile() string {
	return l.paramFile
}

// Launch starts the simulator subprocess with the configured arguments
// and the scratch workspace as its working directory.
//
// Launch returns an error if a previous handle is still held: the
// caller must Terminate first. Spawn faults (command not found,
// permission denied) are returned to the caller unretried.
func (l *Launcher) Launch(ctx context.Context) error {
	if l.closed {
		return fmt.Errorf("launcher is closed")
	}
	if l.handle != nil {
		return fmt.Errorf("simulator already launched (pid %d), terminate it first", l.handle.PID())
	}

	args := l.config.BuildArgs(l.paramFile)

	l.logger.Info("launching simulator",
		"binary", l.config.Binary,
		"vehicle_type", l.config.VehicleType,
		"vehicle_id", l.config.VehicleID,
		"workspace", l.workspace,
	)

	handle, err := l.start(ctx, process.Config{
		Name:    "sitl",
		Binary:  l.config.Binary,
		Args:    args,
		WorkDir: l.workspace,
	}, l.logger)
	if err != nil {
		return fmt.Errorf("launching simulator: %w", err)
	}

	l.handle = handle
	return nil
}

// Terminate hard-kills the simulator subprocess and clears the handle.
//
// Terminate with no live handle is a silent no-op. The handle is
// cleared even when the kill signal fails, so a subsequent Launch is
// always possible.
func (l *Launcher) Terminate() error {
	if l.handle == nil {
		return nil
	}

	handle := l.handle
	l.handle = nil

	l.logger.Info("terminating simulator", "pid", handle.PID())

	if err := handle.Kill(); err != nil {
		return fmt.Errorf("terminating simulator: %w", err)
	}

	return nil
}

// Close releases everything the launcher owns: a still-held process
// handle is terminated, then the scratch workspace is removed
// recursively.
//
// Close is idempotent; only the first call does any work. The owning
// context must call it explicitly (normally via defer) — there is no
// finalizer-based cleanup.
func (l *Launcher) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	termErr := l.Terminate()

	l.logger.Info("removing scratch workspace", "path", l.workspace)
	if err := os.RemoveAll(l.workspace); err != nil {
		return fmt.Errorf("removing scratch workspace: %w", err)
	}

	return termErr
}
