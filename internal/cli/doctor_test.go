package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relcut/relcut/internal/config"
)

func TestPrintToolTable(t *testing.T) {
	t.Parallel()

	result := &config.ToolDetectionResult{
		Tools: []config.Tool{
			{Name: "git", Status: config.ToolStatusInstalled, CurrentVersion: "2.43.0", Required: true},
			{Name: "cargo-release", Status: config.ToolStatusMissing, InstallHint: "cargo install cargo-release"},
		},
	}

	buf := new(bytes.Buffer)
	printToolTable(buf, result)

	out := buf.String()
	assert.Contains(t, out, "git")
	assert.Contains(t, out, "2.43.0")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "cargo install cargo-release")
}

func TestMissingNames(t *testing.T) {
	t.Parallel()

	result := &config.ToolDetectionResult{
		Tools: []config.Tool{
			{Name: "git", Status: config.ToolStatusMissing, Required: true},
			{Name: "cargo-get", Status: config.ToolStatusMissing, Required: false},
			{Name: "cargo-release", Status: config.ToolStatusMissing, Required: true},
		},
	}

	assert.Equal(t, "git, cargo-release", missingNames(result))
}
