package runner

import (
	"context"
	"fmt"
	"os/exec"
)

// HostRunner executes commands against the host operating system.
// It is the single seam between provisioning steps and the host, so tests can
// substitute a fake and assert on invocations without touching the machine.
type HostRunner interface {
	// Run executes the named command with args and returns its combined
	// stdout/stderr output. A non-nil error indicates a non-zero exit or a
	// failure to start the command; the output captured so far is still returned.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports whether the named binary is resolvable on PATH.
	LookPath(name string) bool
}

// ExecHostRunner runs host commands via os/exec.
type ExecHostRunner struct{}

// NewExecHostRunner creates a HostRunner backed by os/exec.
func NewExecHostRunner() *ExecHostRunner {
	return &ExecHostRunner{}
}

// Run executes the command and returns its combined output.
func (r *ExecHostRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("run %s: %w", name, err)
	}

	return string(output), nil
}

// LookPath reports whether the named binary is resolvable on PATH.
func (r *ExecHostRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)

	return err == nil
}
