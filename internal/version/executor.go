// Package version provides the version-authority and version-query
// capabilities: the external tools that compute version increments, update
// the manifest, publish, tag, and read the current version back.
// This file abstracts command execution for testability.
package version

import (
	"context"
	"os/exec"
)

// CommandExecutor abstracts command execution so tests can inject fakes
// instead of spawning real subprocesses.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the PATH.
	LookPath(file string) (string, error)

	// Run executes a command in dir and returns its combined output.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// DefaultCommandExecutor implements CommandExecutor using os/exec.
type DefaultCommandExecutor struct{}

// LookPath searches for an executable in the PATH.
func (e *DefaultCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its combined output.
func (e *DefaultCommandExecutor) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //#nosec G204 -- command and args come from validated configuration
	cmd.Dir = dir
	// Ensure output is captured and not printed to terminal
	cmd.Stdin = nil
	output, err := cmd.CombinedOutput()
	return string(output), err
}
