package process

import (
	"context"
	"testing"
	"time"
)

func TestStart_MissingBinary(t *testing.T) {
	_, err := Start(context.Background(), Config{
		Name:   "bad-binary",
		Binary: "/nonexistent/binary",
	}, nil)
	if err == nil {
		t.Fatal("Start() with invalid binary expected error, got nil")
	}
}

func TestStart_EmptyBinary(t *testing.T) {
	_, err := Start(context.Background(), Config{Name: "empty"}, nil)
	if err == nil {
		t.Fatal("Start() with empty binary expected error, got nil")
	}
}

func TestStart_AndKill(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, err := Start(ctx, Config{
		Name:   "test-sleep",
		Binary: "/bin/sleep",
		Args:   []string{"60"},
	}, nil)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if h.PID() == 0 {
		t.Error("PID() = 0 after Start()")
	}

	if err := h.Kill(); err != nil {
		t.Errorf("Kill() error: %v", err)
	}
}

func TestKill_AlreadyExited(t *testing.T) {
	ctx := context.Background()

	h, err := Start(ctx, Config{
		Name:   "test-true",
		Binary: "/bin/true",
	}, nil)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// Wait for the reaper to collect the exit
	time.Sleep(200 * time.Millisecond)

	if err := h.Kill(); err != nil {
		t.Errorf("Kill() on exited process error = %v, want nil", err)
	}
}

func TestKill_NilHandle(t *testing.T) {
	var h *Handle
	if err := h.Kill(); err != nil {
		t.Errorf("Kill() on nil handle error = %v, want nil", err)
	}
	if h.PID() != 0 {
		t.Errorf("PID() on nil handle = %d, want 0", h.PID())
	}
}

func TestStart_WorkDir(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	h, err := Start(ctx, Config{
		Name:    "test-pwd",
		Binary:  "/bin/sleep",
		Args:    []string{"60"},
		WorkDir: dir,
	}, nil)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer h.Kill()

	if h.cmd.Dir != dir {
		t.Errorf("cmd.Dir = %q, want %q", h.cmd.Dir, dir)
	}
}
