// Package errors provides centralized error handling for relcut.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrDirtyWorkTree indicates the working tree has uncommitted changes to
	// tracked files at pipeline start. The release pipeline never runs on
	// top of unreviewed local modifications.
	ErrDirtyWorkTree = errors.New("working tree is dirty")

	// ErrToolUnavailable indicates a required external tool is missing and
	// could not be installed.
	ErrToolUnavailable = errors.New("required tool unavailable")

	// ErrReleaseFailed indicates the version-authority release call reported
	// failure (publish rejected, network error, version conflict).
	ErrReleaseFailed = errors.New("release failed")

	// ErrSnapshotBump indicates a version-authority call failed after a
	// successful release, leaving the repository released but not advanced.
	ErrSnapshotBump = errors.New("snapshot bump failed")

	// ErrPersistFailed indicates the snapshot commit or push failed after
	// version files were already rewritten locally.
	ErrPersistFailed = errors.New("persist failed")

	// ErrInvalidReleaseType indicates a release-type value outside
	// {patch, minor, major} was supplied explicitly.
	ErrInvalidReleaseType = errors.New("invalid release type")

	// ErrInvalidVersion indicates a version string that does not parse as
	// MAJOR.MINOR.PATCH with an optional -SNAPSHOT suffix.
	ErrInvalidVersion = errors.New("invalid version string")

	// ErrGitOperation indicates that a git command (status, add, commit,
	// push, etc.) failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrNotGitRepo indicates that a git repository is required but not found.
	ErrNotGitRepo = errors.New("not in a git repository")

	// ErrCommandFailed indicates that an external command execution failed.
	ErrCommandFailed = errors.New("command failed")

	// ErrCommandNotConfigured indicates that a mock command was not configured in tests.
	ErrCommandNotConfigured = errors.New("command not configured")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidRelease indicates an invalid release configuration value.
	ErrConfigInvalidRelease = errors.New("invalid release configuration")

	// ErrConfigInvalidGit indicates an invalid Git configuration value.
	ErrConfigInvalidGit = errors.New("invalid Git configuration")

	// ErrConfigInvalidTools indicates an invalid tools configuration value.
	ErrConfigInvalidTools = errors.New("invalid tools configuration")

	// ErrConfigExists indicates an attempt to initialize a config file that
	// already exists.
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrMissingRequiredTools indicates that required tools are missing.
	ErrMissingRequiredTools = errors.New("required tools are missing")
)
