// Package cli provides the command-line interface for relcut.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/relcut/relcut/internal/config"
	"github.com/relcut/relcut/internal/errors"
	"github.com/relcut/relcut/internal/release"
	"github.com/relcut/relcut/internal/vcs"
	"github.com/relcut/relcut/internal/version"
)

// AddReleaseCommand adds the release command to the root command.
func AddReleaseCommand(root *cobra.Command) {
	root.AddCommand(newReleaseCmd())
}

func newReleaseCmd() *cobra.Command {
	var releaseType string

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Cut a release and advance to the next snapshot version",
		Long: `Run the release pipeline: check the working tree is clean, release the
current version through the version authority (bump + publish + tag),
advance to the next patch version, re-mark it as -SNAPSHOT, and commit +
push the manifest changes.

The release type defaults to "patch" and can be set via --type, the
RELEASE_TYPE environment variable, or release.type in the config file.

Examples:
  relcut release
  relcut release --type minor
  RELEASE_TYPE=major relcut release`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRelease(cmd.Context(), cmd, releaseType, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&releaseType, "type", "t", "", "release type (patch|minor|major)")

	return cmd
}

// resolveReleaseType picks the release type with flag > environment >
// config precedence. An empty result at every level falls back to the
// default inside ParseType; an invalid explicit value errors out before
// any external call.
func resolveReleaseType(flagValue string, cfg *config.Config) (release.Type, error) {
	if flagValue != "" {
		return release.ParseType(flagValue)
	}
	if env := os.Getenv("RELCUT_RELEASE_TYPE"); env != "" {
		return release.ParseType(env)
	}
	// Bare RELEASE_TYPE is honored for drop-in compatibility with release
	// scripts that predate relcut.
	if env := os.Getenv("RELEASE_TYPE"); env != "" {
		return release.ParseType(env)
	}
	return release.ParseType(cfg.Release.Type)
}

func runRelease(ctx context.Context, cmd *cobra.Command, releaseType string, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := GetLogger()
	outputFormat := cmd.Flag("output").Value.String()

	cfg, err := config.Load(logger.WithContext(ctx))
	if err != nil {
		return err
	}

	kind, err := resolveReleaseType(releaseType, cfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := vcs.NewRunner(ctx, workDir)
	if err != nil {
		return err
	}

	executor := &version.DefaultCommandExecutor{}
	authority := version.NewCLIAuthority(executor, workDir, version.ToolSpec{
		Command:        cfg.Tools.Authority.Command,
		ReleaseArgs:    cfg.Tools.Authority.ReleaseArgs,
		SetArgs:        cfg.Tools.Authority.SetArgs,
		ManifestFlag:   cfg.Tools.Authority.ManifestFlag,
		InstallCommand: cfg.Tools.Authority.InstallCommand,
	})
	query := version.NewCLIQuery(executor, workDir, version.QuerySpec{
		Command:        cfg.Tools.Query.Command,
		Args:           cfg.Tools.Query.Args,
		InstallCommand: cfg.Tools.Query.InstallCommand,
	})

	orch := release.New(repo, authority, query, cfg, logger)

	result, err := orch.Run(ctx, kind)
	if err != nil {
		printFailure(cmd.ErrOrStderr(), err)
		return err
	}

	return printResult(w, outputFormat, result)
}

// printFailure writes the user-facing message and suggested action for a
// pipeline failure to stderr.
func printFailure(w io.Writer, err error) {
	fmt.Fprintln(w, errors.UserMessage(err))
	if action := errors.Actionable(err); action != "" {
		fmt.Fprintln(w, action)
	}
}

// releaseOutput is the JSON shape of a successful run.
type releaseOutput struct {
	ReleaseType     string `json:"release_type"`
	NextDevelopment string `json:"next_development"`
	Branch          string `json:"branch"`
}

// printResult writes the run result in the requested output format.
func printResult(w io.Writer, format string, result *release.Result) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(releaseOutput{
			ReleaseType:     result.ReleaseType.String(),
			NextDevelopment: result.NextDevelopment.String(),
			Branch:          result.Branch,
		})
	}

	fmt.Fprintf(w, "Released (%s). Now at %s on %s.\n",
		result.ReleaseType, result.NextDevelopment, result.Branch)
	return nil
}
