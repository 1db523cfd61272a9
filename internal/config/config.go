// Package config provides configuration management for relcut with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (bound by the cli package)
//  2. Environment variables (RELCUT_* prefix)
//  3. Project config (.relcut.yaml)
//  4. Global config (~/.relcut/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/release or other internal packages.
package config

// Config is the root configuration structure for relcut.
type Config struct {
	// Release contains settings for the release pipeline itself.
	Release ReleaseConfig `yaml:"release" mapstructure:"release"`

	// Git contains settings for git operations.
	Git GitConfig `yaml:"git" mapstructure:"git"`

	// Tools contains settings for the external version-authority and
	// version-query tools.
	Tools ToolsConfig `yaml:"tools" mapstructure:"tools"`
}

// ReleaseConfig contains settings for the release pipeline.
type ReleaseConfig struct {
	// Type is the release kind used when no flag is given.
	// One of "patch", "minor", "major". Default: "patch"
	Type string `yaml:"type" mapstructure:"type"`

	// CommitMessage is the message for the post-release snapshot commit.
	// Default: "prepare for further development"
	CommitMessage string `yaml:"commit_message" mapstructure:"commit_message"`

	// ManifestFiles are the paths staged for the snapshot commit: the
	// manifest holding the version string and its lock companion. The lock
	// file is treated as opaque bytes, never parsed.
	// Default: [Cargo.toml, Cargo.lock]
	ManifestFiles []string `yaml:"manifest_files" mapstructure:"manifest_files"`
}

// GitConfig contains settings for git operations.
type GitConfig struct {
	// Remote is the remote the snapshot commit is pushed to.
	// Default: "origin"
	Remote string `yaml:"remote" mapstructure:"remote"`

	// Branch is the branch to push. Empty means the currently checked out
	// branch. Default: ""
	Branch string `yaml:"branch" mapstructure:"branch"`
}

// ToolsConfig contains settings for the external tools relcut delegates to.
type ToolsConfig struct {
	// Authority configures the version-authority tool (release + set-version).
	Authority AuthorityToolConfig `yaml:"authority" mapstructure:"authority"`

	// Query configures the version-query tool.
	Query QueryToolConfig `yaml:"query" mapstructure:"query"`
}

// AuthorityToolConfig configures the version-authority tool invocation.
type AuthorityToolConfig struct {
	// Command is the executable name. Default: "cargo-release"
	Command string `yaml:"command" mapstructure:"command"`

	// ReleaseArgs are the leading arguments for a release invocation;
	// the release kind is appended last.
	ReleaseArgs []string `yaml:"release_args" mapstructure:"release_args"`

	// SetArgs are the leading arguments for a set-version invocation;
	// the version string is appended last.
	SetArgs []string `yaml:"set_args" mapstructure:"set_args"`

	// ManifestFlag, when non-empty, is passed with the manifest path on
	// set-version invocations.
	ManifestFlag string `yaml:"manifest_flag" mapstructure:"manifest_flag"`

	// InstallCommand is the command line used to install the tool when it
	// is missing from PATH.
	InstallCommand []string `yaml:"install_command" mapstructure:"install_command"`
}

// QueryToolConfig configures the version-query tool invocation.
type QueryToolConfig struct {
	// Command is the executable name. Default: "cargo-get"
	Command string `yaml:"command" mapstructure:"command"`

	// Args are the arguments that make the tool print the current version.
	Args []string `yaml:"args" mapstructure:"args"`

	// InstallCommand is the command line used to install the tool when it
	// is missing from PATH.
	InstallCommand []string `yaml:"install_command" mapstructure:"install_command"`
}
