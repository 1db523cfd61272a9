package config

import (
	"github.com/relcut/relcut/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
//
// The out-of-the-box tool wiring targets a Cargo package released with
// cargo-release and queried with cargo-get; other ecosystems override the
// tools section in their config.
func DefaultConfig() *Config {
	return &Config{
		Release: ReleaseConfig{
			// Type: "patch" matches the most common release cadence and is
			// the documented fallback when the caller supplies nothing.
			Type: constants.DefaultReleaseType,

			// CommitMessage: fixed message marking the snapshot commit.
			CommitMessage: constants.SnapshotCommitMessage,

			// ManifestFiles: the manifest plus its lock companion, both
			// staged for the snapshot commit.
			ManifestFiles: []string{
				constants.DefaultManifestFile,
				constants.DefaultLockFile,
			},
		},
		Git: GitConfig{
			// Remote: "origin" is the standard Git remote name.
			Remote: constants.DefaultRemote,

			// Branch: empty pushes the currently checked out branch.
			Branch: "",
		},
		Tools: ToolsConfig{
			Authority: AuthorityToolConfig{
				Command: constants.ToolAuthority,

				// --execute --no-confirm: run non-interactively; relcut
				// itself is the confirmation step.
				ReleaseArgs: []string{"release", "--execute", "--no-confirm"},

				SetArgs:      []string{"release", "version"},
				ManifestFlag: "--manifest-path",

				InstallCommand: []string{"cargo", "install", constants.ToolAuthority},
			},
			Query: QueryToolConfig{
				Command:        constants.ToolQuery,
				Args:           []string{"package.version", "--pretty"},
				InstallCommand: []string{"cargo", "install", constants.ToolQuery},
			},
		},
	}
}

// setDefaults registers default values on a viper instance so that config
// files and environment variables only need to override what differs.
func setDefaults(v viperSetter) {
	defaults := DefaultConfig()

	v.SetDefault("release.type", defaults.Release.Type)
	v.SetDefault("release.commit_message", defaults.Release.CommitMessage)
	v.SetDefault("release.manifest_files", defaults.Release.ManifestFiles)

	v.SetDefault("git.remote", defaults.Git.Remote)
	v.SetDefault("git.branch", defaults.Git.Branch)

	v.SetDefault("tools.authority.command", defaults.Tools.Authority.Command)
	v.SetDefault("tools.authority.release_args", defaults.Tools.Authority.ReleaseArgs)
	v.SetDefault("tools.authority.set_args", defaults.Tools.Authority.SetArgs)
	v.SetDefault("tools.authority.manifest_flag", defaults.Tools.Authority.ManifestFlag)
	v.SetDefault("tools.authority.install_command", defaults.Tools.Authority.InstallCommand)

	v.SetDefault("tools.query.command", defaults.Tools.Query.Command)
	v.SetDefault("tools.query.args", defaults.Tools.Query.Args)
	v.SetDefault("tools.query.install_command", defaults.Tools.Query.InstallCommand)
}

// viperSetter is the subset of *viper.Viper used by setDefaults.
// Declared as an interface to keep defaults testable without a real viper.
type viperSetter interface {
	SetDefault(key string, value any)
}
