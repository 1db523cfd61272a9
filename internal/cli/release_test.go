package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/internal/config"
	"github.com/relcut/relcut/internal/errors"
	"github.com/relcut/relcut/internal/release"
	"github.com/relcut/relcut/internal/semver"
)

func TestResolveReleaseType_FlagWins(t *testing.T) {
	t.Setenv("RELCUT_RELEASE_TYPE", "major")
	t.Setenv("RELEASE_TYPE", "major")

	cfg := config.DefaultConfig()
	cfg.Release.Type = "major"

	kind, err := resolveReleaseType("minor", cfg)
	require.NoError(t, err)
	assert.Equal(t, release.TypeMinor, kind)
}

func TestResolveReleaseType_PrefixedEnvBeatsBareEnv(t *testing.T) {
	t.Setenv("RELCUT_RELEASE_TYPE", "minor")
	t.Setenv("RELEASE_TYPE", "major")

	kind, err := resolveReleaseType("", config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, release.TypeMinor, kind)
}

func TestResolveReleaseType_BareEnvBeatsConfig(t *testing.T) {
	t.Setenv("RELCUT_RELEASE_TYPE", "")
	t.Setenv("RELEASE_TYPE", "major")

	cfg := config.DefaultConfig()
	cfg.Release.Type = "minor"

	kind, err := resolveReleaseType("", cfg)
	require.NoError(t, err)
	assert.Equal(t, release.TypeMajor, kind)
}

func TestResolveReleaseType_ConfigFallback(t *testing.T) {
	t.Setenv("RELCUT_RELEASE_TYPE", "")
	t.Setenv("RELEASE_TYPE", "")

	cfg := config.DefaultConfig()
	cfg.Release.Type = "minor"

	kind, err := resolveReleaseType("", cfg)
	require.NoError(t, err)
	assert.Equal(t, release.TypeMinor, kind)
}

func TestResolveReleaseType_DefaultsToPatch(t *testing.T) {
	t.Setenv("RELCUT_RELEASE_TYPE", "")
	t.Setenv("RELEASE_TYPE", "")

	cfg := config.DefaultConfig()
	cfg.Release.Type = ""

	kind, err := resolveReleaseType("", cfg)
	require.NoError(t, err)
	assert.Equal(t, release.TypePatch, kind)
}

func TestResolveReleaseType_InvalidFlag(t *testing.T) {
	t.Setenv("RELCUT_RELEASE_TYPE", "")
	t.Setenv("RELEASE_TYPE", "")

	_, err := resolveReleaseType("hotfix", config.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidReleaseType)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}

func TestResolveReleaseType_InvalidEnv(t *testing.T) {
	t.Setenv("RELCUT_RELEASE_TYPE", "")
	t.Setenv("RELEASE_TYPE", "hotfix")

	_, err := resolveReleaseType("", config.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidReleaseType)
}

func TestPrintResult_Text(t *testing.T) {
	t.Parallel()

	next, err := semver.Parse("1.2.1-SNAPSHOT")
	require.NoError(t, err)

	result := &release.Result{
		ReleaseType:     release.TypePatch,
		NextDevelopment: next,
		Branch:          "main",
	}

	buf := new(bytes.Buffer)
	require.NoError(t, printResult(buf, OutputText, result))

	out := buf.String()
	assert.Contains(t, out, "patch")
	assert.Contains(t, out, "1.2.1-SNAPSHOT")
	assert.Contains(t, out, "main")
}

func TestPrintResult_JSON(t *testing.T) {
	t.Parallel()

	next, err := semver.Parse("2.0.0-SNAPSHOT")
	require.NoError(t, err)

	result := &release.Result{
		ReleaseType:     release.TypeMinor,
		NextDevelopment: next,
		Branch:          "develop",
	}

	buf := new(bytes.Buffer)
	require.NoError(t, printResult(buf, OutputJSON, result))

	var decoded releaseOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "minor", decoded.ReleaseType)
	assert.Equal(t, "2.0.0-SNAPSHOT", decoded.NextDevelopment)
	assert.Equal(t, "develop", decoded.Branch)
}

func TestPrintFailure_IncludesAction(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	printFailure(buf, errors.ErrDirtyWorkTree)

	out := buf.String()
	assert.NotEmpty(t, out)
	assert.Equal(t, errors.UserMessage(errors.ErrDirtyWorkTree)+"\n"+errors.Actionable(errors.ErrDirtyWorkTree)+"\n", out)
}
