package config

import (
	"github.com/relcut/relcut/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - Release type must be one of patch, minor, major
//   - Commit message must not be empty
//   - At least one manifest file must be configured
//   - Git remote must not be empty
//   - Authority and query tool commands must not be empty
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateReleaseConfig(&cfg.Release); err != nil {
		return err
	}

	if err := validateGitConfig(&cfg.Git); err != nil {
		return err
	}

	if err := validateToolsConfig(&cfg.Tools); err != nil {
		return err
	}

	return nil
}

// validateReleaseConfig checks release-specific configuration values.
func validateReleaseConfig(cfg *ReleaseConfig) error {
	switch cfg.Type {
	case "patch", "minor", "major":
	default:
		return errors.Wrapf(errors.ErrConfigInvalidRelease,
			"release.type must be patch, minor, or major, got %q", cfg.Type)
	}

	if cfg.CommitMessage == "" {
		return errors.Wrap(errors.ErrConfigInvalidRelease,
			"release.commit_message must not be empty")
	}

	if len(cfg.ManifestFiles) == 0 {
		return errors.Wrap(errors.ErrConfigInvalidRelease,
			"release.manifest_files must list at least the manifest")
	}

	return nil
}

// validateGitConfig checks Git-specific configuration values.
func validateGitConfig(cfg *GitConfig) error {
	if cfg.Remote == "" {
		return errors.Wrap(errors.ErrConfigInvalidGit,
			"git.remote must not be empty")
	}

	return nil
}

// validateToolsConfig checks the external-tool configuration values.
func validateToolsConfig(cfg *ToolsConfig) error {
	if cfg.Authority.Command == "" {
		return errors.Wrap(errors.ErrConfigInvalidTools,
			"tools.authority.command must not be empty")
	}

	if cfg.Query.Command == "" {
		return errors.Wrap(errors.ErrConfigInvalidTools,
			"tools.query.command must not be empty")
	}

	return nil
}
