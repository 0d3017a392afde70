package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Config holds configuration for a spawned subprocess.
type Config struct {
	// Name is a human-readable identifier for logging.
	Name string

	// Binary is the path to the executable, or a bare command name
	// resolved via PATH.
	Binary string

	// Args are command-line arguments to pass to the binary.
	Args []string

	// Env are additional environment variables (key=value format).
	// If nil, inherits from parent process.
	Env []string

	// WorkDir is the working directory for the process.
	// If empty, inherits from parent process.
	WorkDir string
}

// Logger defines the logging interface for the process package.
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

// Handle is an in-memory reference to a spawned OS process.
//
// A Handle does not track the liveness of the process it refers to: the
// child may exit at any time without the Handle noticing. The only
// operation on a Handle is Kill.
type Handle struct {
	name   string
	cmd    *exec.Cmd
	logger Logger
}

// Start spawns a subprocess with the given configuration and returns a
// Handle for signalling it later.
//
// The command is executed directly, never through a shell, so arguments
// are passed to the child verbatim. A background goroutine reaps the
// child when it exits so that a later Kill does not leave a zombie.
//
// Returns an error if the binary cannot be found or the process cannot
// be created. The error is the spawn fault wrapped with context; no
// retry is attempted.
func Start(ctx context.Context, cfg Config, logger Logger) (*Handle, error) {
	if logger == nil {
		logger = noopLogger{}
	}
	if cfg.Binary == "" {
		return nil, errors.New("process: binary is required")
	}

	logger.Info("starting process",
		"name", cfg.Name,
		"binary", cfg.Binary,
		"args", cfg.Args,
		"workdir", cfg.WorkDir,
	)

	cmd := exec.CommandContext(ctx, cfg.Binary, cfg.Args...)

	// Set environment
	if cfg.Env != nil {
		cmd.Env = append(os.Environ(), cfg.Env...)
	}

	// Set working directory
	if cfg.WorkDir != "" {
		cmd.Dir = cfg.WorkDir
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", cfg.Name, err)
	}

	h := &Handle{
		name:   cfg.Name,
		cmd:    cmd,
		logger: logger,
	}

	// Reap the child on exit. The exit status is not inspected; this
	// only prevents zombie processes after a Kill.
	go func() {
		err := cmd.Wait()
		logger.Debug("process exited", "name", cfg.Name, "error", err)
	}()

	logger.Info("process started",
		"name", cfg.Name,
		"pid", cmd.Process.Pid,
	)

	return h, nil
}

// Kill sends an immediate, forceful termination signal to the process.
// There is no graceful shutdown phase.
//
// Killing a process that has already exited is not an error.
func (h *Handle) Kill() error {
	if h == nil || h.cmd == nil || h.cmd.Process == nil {
		return nil
	}

	pid := h.cmd.Process.Pid
	h.logger.Info("killing process", "name", h.name, "pid", pid)

	if err := h.cmd.Process.Kill(); err != nil {
		// The child may have exited and been reaped already.
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return fmt.Errorf("killing %s: %w", h.name, err)
	}

	return nil
}

// PID returns the operating system process ID of the child.
func (h *Handle) PID() int {
	if h == nil || h.cmd == nil || h.cmd.Process == nil {
		return 0
	}
	return h.cmd.Process.Pid
}
