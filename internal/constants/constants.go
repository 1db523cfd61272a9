// Package constants provides shared constant values for relcut.
//
// This package MUST NOT import any other internal packages.
package constants

// Application identity.
const (
	// AppName is the canonical binary and product name.
	AppName = "relcut"

	// RelcutHome is the name of the relcut home directory (~/.relcut).
	RelcutHome = ".relcut"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global relcut configuration file.
	// This file is located in the relcut home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project-specific configuration file.
	// This file is located in the project root directory.
	ProjectConfigName = ".relcut.yaml"
)

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.relcut/logs/relcut.log
	CLILogFileName = "relcut.log"
)

// Release pipeline defaults.
const (
	// DefaultReleaseType is the release kind used when the caller supplies none.
	DefaultReleaseType = "patch"

	// SnapshotSuffix marks a version string as an unreleased development build.
	SnapshotSuffix = "-SNAPSHOT"

	// SnapshotCommitMessage is the fixed message for the post-release
	// snapshot commit.
	SnapshotCommitMessage = "prepare for further development"

	// DefaultRemote is the standard Git remote name.
	DefaultRemote = "origin"

	// DefaultManifestFile is the package manifest holding the version string.
	DefaultManifestFile = "Cargo.toml"

	// DefaultLockFile is the manifest's lock companion. It is staged as
	// opaque bytes alongside the manifest, never parsed.
	DefaultLockFile = "Cargo.lock"
)

// External tool names.
const (
	// ToolGit is the git CLI.
	ToolGit = "git"

	// ToolAuthority is the default version-authority CLI responsible for
	// computing version increments, updating the manifest, publishing,
	// and tagging.
	ToolAuthority = "cargo-release"

	// ToolQuery is the default version-query CLI that prints the manifest's
	// current version string.
	ToolQuery = "cargo-get"
)

// Version flags used for tool detection.
const (
	// VersionFlagStandard is the conventional long version flag.
	VersionFlagStandard = "--version"
)
