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
)

// AddDoctorCommand adds the doctor command to the root command.
func AddDoctorCommand(root *cobra.Command) {
	root.AddCommand(newDoctorCmd())
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the external tools the release pipeline depends on",
		Long: `Detect the availability and versions of the external tools relcut
delegates to: git, the version authority, and the version query tool.

Missing authority/query tools are not fatal here; the pipeline installs
them on demand. A missing git is fatal.

Examples:
  relcut doctor
  relcut doctor --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.Context(), cmd, os.Stdout)
		},
	}
}

func runDoctor(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := GetLogger()
	outputFormat := cmd.Flag("output").Value.String()

	cfg, err := config.Load(logger.WithContext(ctx))
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	detector := config.NewToolDetector(cfg)
	result, err := detector.Detect(ctx)
	if err != nil {
		return err
	}

	if outputFormat == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printToolTable(w, result)
	}

	if result.HasMissingRequired {
		return fmt.Errorf("%w: %s", errors.ErrMissingRequiredTools, missingNames(result))
	}
	return nil
}

// printToolTable writes a human-readable tool status listing.
func printToolTable(w io.Writer, result *config.ToolDetectionResult) {
	for _, tool := range result.Tools {
		marker := "ok"
		if tool.Status == config.ToolStatusMissing {
			marker = "missing"
		}

		line := fmt.Sprintf("%-16s %-8s", tool.Name, marker)
		if tool.CurrentVersion != "" {
			line += " " + tool.CurrentVersion
		}
		fmt.Fprintln(w, line)

		if tool.Status == config.ToolStatusMissing && tool.InstallHint != "" {
			fmt.Fprintf(w, "  %s\n", tool.InstallHint)
		}
	}
}

// missingNames joins the names of missing required tools.
func missingNames(result *config.ToolDetectionResult) string {
	names := ""
	for _, tool := range result.MissingRequiredTools() {
		if names != "" {
			names += ", "
		}
		names += tool.Name
	}
	return names
}
