// Package version provides the version-authority and version-query
// capabilities.
// This file implements the Query which reads the manifest's current version.
package version

import (
	"context"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/ctxutil"
	relcuterrors "github.com/relcut/relcut/internal/errors"
)

// Query defines the version-query capability: reading the manifest's
// current version string back.
type Query interface {
	// EnsureInstalled makes sure the query tool is available, installing
	// it when missing. Idempotent, like the authority's check.
	EnsureInstalled(ctx context.Context) error

	// Current returns the version string currently recorded in the manifest.
	Current(ctx context.Context) (string, error)
}

// QuerySpec describes how to invoke the external query tool.
type QuerySpec struct {
	// Command is the executable name, e.g. "cargo-get".
	Command string

	// Args are the arguments that make the tool print the current version
	// on stdout.
	Args []string

	// InstallCommand is the full command line used to install the tool
	// when it is missing from PATH. Empty means not installable.
	InstallCommand []string
}

// CLIQuery implements Query by invoking the configured external tool.
type CLIQuery struct {
	executor CommandExecutor
	workDir  string
	spec     QuerySpec
}

// NewCLIQuery creates a CLIQuery running in workDir.
func NewCLIQuery(executor CommandExecutor, workDir string, spec QuerySpec) *CLIQuery {
	return &CLIQuery{
		executor: executor,
		workDir:  workDir,
		spec:     spec,
	}
}

// EnsureInstalled checks PATH for the query tool and installs it when
// missing. Like the authority's check, it is idempotent.
func (q *CLIQuery) EnsureInstalled(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if _, err := q.executor.LookPath(q.spec.Command); err == nil {
		return nil
	}

	if len(q.spec.InstallCommand) == 0 {
		return fmt.Errorf("%w: %s is not on PATH and no install command is configured", relcuterrors.ErrToolUnavailable, q.spec.Command)
	}

	output, err := q.executor.Run(ctx, q.workDir, q.spec.InstallCommand[0], q.spec.InstallCommand[1:]...)
	if err != nil {
		return commandError(fmt.Sprintf("install %s", q.spec.Command), output, err)
	}

	if _, err := q.executor.LookPath(q.spec.Command); err != nil {
		return fmt.Errorf("%w: %s still missing after install", relcuterrors.ErrToolUnavailable, q.spec.Command)
	}

	return nil
}

// Current returns the version string currently recorded in the manifest.
// The tool's stdout is taken verbatim apart from whitespace trimming;
// interpreting the string is the caller's business.
func (q *CLIQuery) Current(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	output, err := q.executor.Run(ctx, q.workDir, q.spec.Command, q.spec.Args...)
	if err != nil {
		return "", commandError(fmt.Sprintf("%s query", q.spec.Command), output, err)
	}

	current := strings.TrimSpace(output)
	if current == "" {
		return "", fmt.Errorf("%s printed no version: %w", q.spec.Command, relcuterrors.ErrEmptyValue)
	}

	return current, nil
}
