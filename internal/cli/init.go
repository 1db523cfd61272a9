// Package cli provides the command-line interface for relcut.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/relcut/relcut/internal/config"
	"github.com/relcut/relcut/internal/errors"
)

// AddInitCommand adds the init command to the root command.
func AddInitCommand(root *cobra.Command) {
	root.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	var (
		global bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the default relcut configuration to .relcut.yaml in the current
directory, or to ~/.relcut/config.yaml with --global. The generated file
spells out every setting so overrides only need to change what differs.

Examples:
  relcut init
  relcut init --global
  relcut init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(global, force, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "write the global config instead of the project config")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(global, force bool, out io.Writer) error {
	path := config.ProjectConfigPath()
	if global {
		globalPath, err := config.GlobalConfigPath()
		if err != nil {
			return err
		}
		path = globalPath
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", errors.ErrConfigExists, path)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
