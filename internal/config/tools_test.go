package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/internal/testutil"
)

// fakeToolExecutor simulates tool presence and version output.
type fakeToolExecutor struct {
	installed map[string]string // tool name -> version output
}

func (f *fakeToolExecutor) LookPath(file string) (string, error) {
	if _, ok := f.installed[file]; ok {
		return "/usr/local/bin/" + file, nil
	}
	return "", testutil.ErrMockToolMissing
}

func (f *fakeToolExecutor) Run(_ context.Context, name string, _ ...string) (string, error) {
	return f.installed[name], nil
}

func TestDetectAllInstalled(t *testing.T) {
	exec := &fakeToolExecutor{installed: map[string]string{
		"git":           "git version 2.43.0",
		"cargo-release": "cargo-release 0.25.10",
		"cargo-get":     "cargo-get 1.1.0",
	}}
	d := NewToolDetectorWithExecutor(DefaultConfig(), exec)

	result, err := d.Detect(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)
	assert.False(t, result.HasMissingRequired)
	assert.Empty(t, result.MissingRequiredTools())

	byName := make(map[string]Tool, len(result.Tools))
	for _, tool := range result.Tools {
		byName[tool.Name] = tool
	}

	assert.Equal(t, ToolStatusInstalled, byName["git"].Status)
	assert.Equal(t, "2.43.0", byName["git"].CurrentVersion)
	assert.Equal(t, "0.25.10", byName["cargo-release"].CurrentVersion)
	assert.True(t, byName["git"].Required)
	assert.False(t, byName["cargo-release"].Required)
}

func TestDetectMissingRequired(t *testing.T) {
	exec := &fakeToolExecutor{installed: map[string]string{
		"cargo-release": "cargo-release 0.25.10",
	}}
	d := NewToolDetectorWithExecutor(DefaultConfig(), exec)

	result, err := d.Detect(context.Background())
	require.NoError(t, err)
	assert.True(t, result.HasMissingRequired)

	missing := result.MissingRequiredTools()
	require.Len(t, missing, 1)
	assert.Equal(t, "git", missing[0].Name)
	assert.NotEmpty(t, missing[0].InstallHint)
}

func TestDetectMissingOptionalHasInstallHint(t *testing.T) {
	exec := &fakeToolExecutor{installed: map[string]string{
		"git": "git version 2.43.0",
	}}
	d := NewToolDetectorWithExecutor(DefaultConfig(), exec)

	result, err := d.Detect(context.Background())
	require.NoError(t, err)
	// Missing authority/query tools are not fatal: the pipeline installs
	// them on demand.
	assert.False(t, result.HasMissingRequired)

	for _, tool := range result.Tools {
		if tool.Name == "cargo-release" {
			assert.Equal(t, ToolStatusMissing, tool.Status)
			assert.Contains(t, tool.InstallHint, "cargo install cargo-release")
		}
	}
}

func TestToolStatusString(t *testing.T) {
	assert.Equal(t, "installed", ToolStatusInstalled.String())
	assert.Equal(t, "missing", ToolStatusMissing.String())
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2.43.0", "2.43.0", 0},
		{"2.43", "2.43.0", 0},
		{"2.42.0", "2.43.0", -1},
		{"3.0.0", "2.99.99", 1},
		{"0.25.10", "0.25.9", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareVersions(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}
