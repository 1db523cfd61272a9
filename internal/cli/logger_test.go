package cli

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/relcut/relcut/internal/logging"
)

func TestSelectLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    zerolog.Level
	}{
		{"default is info", false, false, zerolog.InfoLevel},
		{"verbose is debug", true, false, zerolog.DebugLevel},
		{"quiet is warn", false, true, zerolog.WarnLevel},
		{"verbose wins over quiet", true, true, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, selectLevel(tt.verbose, tt.quiet))
		})
	}
}

func TestInitLoggerWithWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := InitLoggerWithWriter(true, false, buf)

	logger.Debug().Str("stage", "dirty-check").Msg("stage complete")

	out := buf.String()
	assert.Contains(t, out, "stage complete")
	assert.Contains(t, out, "dirty-check")
}

func TestInitLoggerWithWriter_FilteredFileOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := InitLoggerWithWriter(false, false, logging.NewFilteringWriter(buf))

	logger.Info().Str("output", "CARGO_REGISTRY_TOKEN=cioAbCdEf1234567890AbCdEf1234567890").Msg("publishing")

	out := buf.String()
	assert.Contains(t, out, "publishing")
	assert.NotContains(t, out, "cioAbCdEf1234567890AbCdEf1234567890")
}
