package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Version
		wantErr  bool
	}{
		{
			name:     "bare release version",
			input:    "1.2.3",
			expected: Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:     "snapshot version",
			input:    "1.2.3-SNAPSHOT",
			expected: Version{Major: 1, Minor: 2, Patch: 3, Snapshot: true},
		},
		{
			name:     "zero version",
			input:    "0.0.0",
			expected: Version{},
		},
		{
			name:     "leading v tolerated",
			input:    "v2.0.1",
			expected: Version{Major: 2, Minor: 0, Patch: 1},
		},
		{
			name:     "surrounding whitespace tolerated",
			input:    "  1.2.0-SNAPSHOT\n",
			expected: Version{Major: 1, Minor: 2, Patch: 0, Snapshot: true},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "two segments",
			input:   "1.2",
			wantErr: true,
		},
		{
			name:    "four segments",
			input:   "1.2.3.4",
			wantErr: true,
		},
		{
			name:    "non-numeric segment",
			input:   "1.x.3",
			wantErr: true,
		},
		{
			name:    "negative segment",
			input:   "1.-2.3",
			wantErr: true,
		},
		{
			name:    "leading zero segment",
			input:   "1.02.3",
			wantErr: true,
		},
		{
			name:    "other pre-release marker rejected",
			input:   "1.2.3-rc.1",
			wantErr: true,
		},
		{
			name:    "lowercase snapshot rejected",
			input:   "1.2.3-snapshot",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  Version
		expected string
	}{
		{
			name:     "release",
			version:  Version{Major: 1, Minor: 2, Patch: 3},
			expected: "1.2.3",
		},
		{
			name:     "snapshot",
			version:  Version{Major: 1, Minor: 2, Patch: 3, Snapshot: true},
			expected: "1.2.3-SNAPSHOT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.version.String())
		})
	}
}

func TestSnapshotMarking(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 1}

	marked := v.WithSnapshot()
	assert.True(t, marked.Snapshot)
	assert.Equal(t, "1.2.1-SNAPSHOT", marked.String())
	assert.Equal(t, "1.2.1", marked.Bare())

	// Original is unchanged; Version is a value type.
	assert.False(t, v.Snapshot)

	cleared := marked.WithoutSnapshot()
	assert.Equal(t, v, cleared)
}

// drawVersion generates an arbitrary version for property tests.
func drawVersion(t *rapid.T) Version {
	return Version{
		Major:    rapid.IntRange(0, 999).Draw(t, "major"),
		Minor:    rapid.IntRange(0, 999).Draw(t, "minor"),
		Patch:    rapid.IntRange(0, 999).Draw(t, "patch"),
		Snapshot: rapid.Bool().Draw(t, "snapshot"),
	}
}

func TestProperty_ParseFormatRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawVersion(t)
		parsed, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", v.String(), err)
		}
		if parsed != v {
			t.Fatalf("round trip changed version: %v != %v", parsed, v)
		}
	})
}

func TestProperty_SnapshotMarkingIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawVersion(t)
		once := v.WithSnapshot()
		twice := once.WithSnapshot()
		if once != twice {
			t.Fatalf("WithSnapshot not idempotent: %v != %v", once, twice)
		}
		if once.Bare() != v.Bare() {
			t.Fatalf("WithSnapshot changed numeric components: %s != %s", once.Bare(), v.Bare())
		}
	})
}
