// Package version provides the version-authority and version-query
// capabilities.
// This file implements the Authority which wraps the external release tool.
package version

import (
	"context"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/ctxutil"
	relcuterrors "github.com/relcut/relcut/internal/errors"
)

// Authority defines the version-authority capability. The external tool
// behind it owns all version arithmetic: relcut only sequences calls to it.
type Authority interface {
	// EnsureInstalled makes sure the authority tool is available,
	// installing it when missing. The call is idempotent and has no
	// semantic effect on versions.
	EnsureInstalled(ctx context.Context) error

	// Release performs a full release of the given kind against the
	// current version: compute the next release version, update the
	// manifest, publish, and record the release point (tag). The call is
	// opaque from relcut's point of view; it either succeeds or fails.
	Release(ctx context.Context, kind string) error

	// SetVersion writes the given version string into the manifest.
	SetVersion(ctx context.Context, manifestPath, version string) error
}

// ToolSpec describes how to invoke the external authority tool.
// All fields come from validated configuration.
type ToolSpec struct {
	// Command is the executable name, e.g. "cargo-release".
	Command string

	// ReleaseArgs are the leading arguments for a release invocation.
	// The release kind (patch|minor|major) is appended last.
	ReleaseArgs []string

	// SetArgs are the leading arguments for a set-version invocation.
	// The target version string is appended last.
	SetArgs []string

	// ManifestFlag, when non-empty, is passed with the manifest path on
	// set-version invocations (e.g. "--manifest-path").
	ManifestFlag string

	// InstallCommand is the full command line used to install the tool
	// when it is missing from PATH. Empty means not installable.
	InstallCommand []string
}

// CLIAuthority implements Authority by invoking the configured external tool.
type CLIAuthority struct {
	executor CommandExecutor
	workDir  string
	spec     ToolSpec
}

// NewCLIAuthority creates a CLIAuthority running in workDir.
func NewCLIAuthority(executor CommandExecutor, workDir string, spec ToolSpec) *CLIAuthority {
	return &CLIAuthority{
		executor: executor,
		workDir:  workDir,
		spec:     spec,
	}
}

// EnsureInstalled checks PATH for the tool and installs it when missing.
// When the tool is already present this is a no-op, so calling it twice
// produces the same state as calling it once.
func (a *CLIAuthority) EnsureInstalled(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if _, err := a.executor.LookPath(a.spec.Command); err == nil {
		return nil
	}

	if len(a.spec.InstallCommand) == 0 {
		return fmt.Errorf("%w: %s is not on PATH and no install command is configured", relcuterrors.ErrToolUnavailable, a.spec.Command)
	}

	output, err := a.executor.Run(ctx, a.workDir, a.spec.InstallCommand[0], a.spec.InstallCommand[1:]...)
	if err != nil {
		return commandError(fmt.Sprintf("install %s", a.spec.Command), output, err)
	}

	if _, err := a.executor.LookPath(a.spec.Command); err != nil {
		return fmt.Errorf("%w: %s still missing after install", relcuterrors.ErrToolUnavailable, a.spec.Command)
	}

	return nil
}

// Release invokes the tool's release operation with the given kind.
func (a *CLIAuthority) Release(ctx context.Context, kind string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	args := append(append([]string{}, a.spec.ReleaseArgs...), kind)
	output, err := a.executor.Run(ctx, a.workDir, a.spec.Command, args...)
	if err != nil {
		return commandError(fmt.Sprintf("%s release", a.spec.Command), output, err)
	}

	return nil
}

// SetVersion writes the given version string into the manifest.
func (a *CLIAuthority) SetVersion(ctx context.Context, manifestPath, version string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if version == "" {
		return fmt.Errorf("version cannot be empty: %w", relcuterrors.ErrEmptyValue)
	}

	args := append([]string{}, a.spec.SetArgs...)
	if a.spec.ManifestFlag != "" && manifestPath != "" {
		args = append(args, a.spec.ManifestFlag, manifestPath)
	}
	args = append(args, version)

	output, err := a.executor.Run(ctx, a.workDir, a.spec.Command, args...)
	if err != nil {
		return commandError(fmt.Sprintf("%s set-version", a.spec.Command), output, err)
	}

	return nil
}

// commandError wraps a failed external invocation with its trailing output,
// which is where CLI tools put the reason for the failure.
func commandError(what, output string, err error) error {
	trimmed := strings.TrimSpace(output)
	if trimmed != "" {
		return fmt.Errorf("%s failed: %s: %w: %w", what, lastLine(trimmed), relcuterrors.ErrCommandFailed, err)
	}
	return fmt.Errorf("%s failed: %w: %w", what, relcuterrors.ErrCommandFailed, err)
}

// lastLine returns the final non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return s
}
