// Package config provides configuration management for relcut.
// This file implements the tool detection system behind 'relcut doctor'.
package config

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/relcut/relcut/internal/constants"
)

// Pre-compiled regexes for version parsing (compiled once at package init).
//
//nolint:gochecknoglobals // Package-level compiled regexes are a Go best practice for performance
var (
	gitVersionRe     = regexp.MustCompile(`git version (\d+\.\d+(?:\.\d+)?)`)
	genericVersionRe = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)
)

// ToolStatus represents the installation status of an external tool.
type ToolStatus int

const (
	// ToolStatusMissing indicates the tool is not installed.
	ToolStatusMissing ToolStatus = iota

	// ToolStatusInstalled indicates the tool is installed.
	ToolStatusInstalled
)

// String returns a human-readable representation of the tool status.
func (s ToolStatus) String() string {
	switch s {
	case ToolStatusInstalled:
		return "installed"
	case ToolStatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for human-readable JSON output.
func (s ToolStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Tool represents an external tool that relcut depends on.
type Tool struct {
	// Name is the tool identifier (e.g., "git", "cargo-release").
	Name string `json:"name"`

	// Required indicates if the tool is mandatory for relcut to function.
	// Non-required tools can be installed on demand by the pipeline.
	Required bool `json:"required"`

	// CurrentVersion is the detected installed version.
	CurrentVersion string `json:"current_version"`

	// Status is the current installation status.
	Status ToolStatus `json:"status"`

	// InstallHint provides installation instructions for missing tools.
	InstallHint string `json:"install_hint"`
}

// ToolDetectionResult holds the results of detecting all tools.
type ToolDetectionResult struct {
	// Tools contains the detection result for each tool.
	Tools []Tool `json:"tools"`

	// HasMissingRequired indicates if any required tools are missing.
	HasMissingRequired bool `json:"has_missing_required"`
}

// MissingRequiredTools returns a list of required tools that are missing.
func (r *ToolDetectionResult) MissingRequiredTools() []Tool {
	var missing []Tool
	for _, tool := range r.Tools {
		if tool.Required && tool.Status == ToolStatusMissing {
			missing = append(missing, tool)
		}
	}
	return missing
}

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the PATH.
	LookPath(file string) (string, error)

	// Run executes a command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// DefaultCommandExecutor implements CommandExecutor using os/exec.
type DefaultCommandExecutor struct{}

// LookPath searches for an executable in the PATH.
func (e *DefaultCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *DefaultCommandExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //#nosec G204 -- tool names come from validated configuration
	cmd.Stdin = nil
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// toolConfig holds the configuration for detecting a specific tool.
type toolConfig struct {
	name        string
	versionFlag string
	required    bool
	installHint string
	parseFunc   func(output string) string
}

// toolConfigs returns the detection configuration for the tools the
// configured pipeline depends on.
func toolConfigs(cfg *Config) []toolConfig {
	return []toolConfig{
		{
			name:        constants.ToolGit,
			versionFlag: constants.VersionFlagStandard,
			required:    true,
			installHint: "Install Git from https://git-scm.com/downloads",
			parseFunc:   parseGitVersion,
		},
		{
			name:        cfg.Tools.Authority.Command,
			versionFlag: constants.VersionFlagStandard,
			required:    false, // installed on demand by the pipeline
			installHint: installHint(cfg.Tools.Authority.InstallCommand),
			parseFunc:   parseGenericVersion,
		},
		{
			name:        cfg.Tools.Query.Command,
			versionFlag: constants.VersionFlagStandard,
			required:    false, // installed on demand by the pipeline
			installHint: installHint(cfg.Tools.Query.InstallCommand),
			parseFunc:   parseGenericVersion,
		},
	}
}

// installHint renders an install command line as a user-facing hint.
func installHint(installCommand []string) string {
	if len(installCommand) == 0 {
		return "No install command configured; install the tool manually."
	}
	return "Install with: " + strings.Join(installCommand, " ")
}

// ToolDetector detects the installation status of external tools.
type ToolDetector interface {
	// Detect checks all configured tools and returns their status.
	Detect(ctx context.Context) (*ToolDetectionResult, error)
}

// DefaultToolDetector implements ToolDetector.
type DefaultToolDetector struct {
	cfg      *Config
	executor CommandExecutor
}

// NewToolDetector creates a new DefaultToolDetector with the default executor.
func NewToolDetector(cfg *Config) *DefaultToolDetector {
	return &DefaultToolDetector{
		cfg:      cfg,
		executor: &DefaultCommandExecutor{},
	}
}

// NewToolDetectorWithExecutor creates a new DefaultToolDetector with a custom executor.
func NewToolDetectorWithExecutor(cfg *Config, executor CommandExecutor) *DefaultToolDetector {
	return &DefaultToolDetector{
		cfg:      cfg,
		executor: executor,
	}
}

// Detect checks all configured tools in parallel and returns their status.
func (d *DefaultToolDetector) Detect(ctx context.Context) (*ToolDetectionResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	configs := toolConfigs(d.cfg)
	tools := make([]Tool, len(configs))

	g, gctx := errgroup.WithContext(ctx)
	for i, tc := range configs {
		i, tc := i, tc
		g.Go(func() error {
			tools[i] = d.detectTool(gctx, tc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &ToolDetectionResult{Tools: tools}
	for _, tool := range tools {
		if tool.Required && tool.Status == ToolStatusMissing {
			result.HasMissingRequired = true
		}
	}
	return result, nil
}

// detectTool checks a single tool's availability and version.
func (d *DefaultToolDetector) detectTool(ctx context.Context, tc toolConfig) Tool {
	tool := Tool{
		Name:        tc.name,
		Required:    tc.required,
		Status:      ToolStatusMissing,
		InstallHint: tc.installHint,
	}

	if _, err := d.executor.LookPath(tc.name); err != nil {
		return tool
	}

	tool.Status = ToolStatusInstalled

	// Version is informational; a tool that won't report one is still usable.
	output, err := d.executor.Run(ctx, tc.name, tc.versionFlag)
	if err != nil {
		return tool
	}
	tool.CurrentVersion = tc.parseFunc(output)

	return tool
}

// parseGitVersion extracts the version from `git --version` output.
func parseGitVersion(output string) string {
	if m := gitVersionRe.FindStringSubmatch(output); len(m) > 1 {
		return m[1]
	}
	return ""
}

// parseGenericVersion extracts the first semver-looking token from output.
func parseGenericVersion(output string) string {
	if m := genericVersionRe.FindStringSubmatch(output); len(m) > 1 {
		return m[1]
	}
	return ""
}

// CompareVersions compares two dotted version strings segment by segment.
// Returns -1 if a < b, 0 if equal, 1 if a > b. Missing segments count as zero.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
