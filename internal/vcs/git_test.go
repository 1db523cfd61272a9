package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGitStatus(t *testing.T) {
	tests := []struct {
		name          string
		output        string
		wantBranch    string
		wantStaged    int
		wantUnstaged  int
		wantUntracked int
		wantAhead     int
		wantBehind    int
	}{
		{
			name:       "clean tree",
			output:     "## main...origin/main",
			wantBranch: "main",
		},
		{
			name:         "unstaged modification",
			output:       "## main\n M Cargo.toml",
			wantBranch:   "main",
			wantUnstaged: 1,
		},
		{
			name:       "staged addition",
			output:     "## main\nA  src/new.rs",
			wantBranch: "main",
			wantStaged: 1,
		},
		{
			name:          "untracked only",
			output:        "## main\n?? scratch.txt",
			wantBranch:    "main",
			wantUntracked: 1,
		},
		{
			name:         "staged and unstaged same file",
			output:       "## main\nMM Cargo.toml",
			wantBranch:   "main",
			wantStaged:   1,
			wantUnstaged: 1,
		},
		{
			name:       "ahead and behind counts",
			output:     "## main...origin/main [ahead 2, behind 1]",
			wantBranch: "main",
			wantAhead:  2,
			wantBehind: 1,
		},
		{
			name:       "rename records old path",
			output:     "## main\nR  old.rs -> new.rs",
			wantBranch: "main",
			wantStaged: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := parseGitStatus(tt.output)
			assert.Equal(t, tt.wantBranch, status.Branch)
			assert.Len(t, status.Staged, tt.wantStaged)
			assert.Len(t, status.Unstaged, tt.wantUnstaged)
			assert.Len(t, status.Untracked, tt.wantUntracked)
			assert.Equal(t, tt.wantAhead, status.Ahead)
			assert.Equal(t, tt.wantBehind, status.Behind)
		})
	}
}

func TestParseGitStatusRename(t *testing.T) {
	status := parseGitStatus("## main\nR  old.rs -> new.rs")
	assert.Equal(t, "new.rs", status.Staged[0].Path)
	assert.Equal(t, "old.rs", status.Staged[0].OldPath)
	assert.Equal(t, ChangeRenamed, status.Staged[0].Status)
}

func TestStatusDirty(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		dirty  bool
	}{
		{
			name:  "empty status is clean",
			dirty: false,
		},
		{
			name:   "untracked files do not count as dirty",
			status: Status{Untracked: []string{"scratch.txt"}},
			dirty:  false,
		},
		{
			name:   "unstaged change is dirty",
			status: Status{Unstaged: []FileChange{{Path: "Cargo.toml", Status: ChangeModified}}},
			dirty:  true,
		},
		{
			name:   "staged change is dirty",
			status: Status{Staged: []FileChange{{Path: "src/lib.rs", Status: ChangeAdded}}},
			dirty:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dirty, tt.status.Dirty())
		})
	}
}

func TestStatusIsClean(t *testing.T) {
	clean := Status{}
	assert.True(t, clean.IsClean())

	withUntracked := Status{Untracked: []string{"notes.md"}}
	assert.False(t, withUntracked.IsClean())
	// Dirty is stricter than IsClean: untracked files block neither stage.
	assert.False(t, withUntracked.Dirty())
}
