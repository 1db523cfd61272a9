// Package vcs provides the source-control capability the release pipeline
// sequences around: working-tree status, staging, commit, and push.
// This file defines types used by the Runner.
package vcs

// Status represents the current state of a Git working tree.
type Status struct {
	Staged    []FileChange // Files staged for commit
	Unstaged  []FileChange // Modified but not staged
	Untracked []string     // Untracked files
	Branch    string       // Current branch name
	Ahead     int          // Commits ahead of upstream
	Behind    int          // Commits behind upstream
}

// FileChange represents a changed file in the working tree.
type FileChange struct {
	Path    string     // File path relative to repo root
	Status  ChangeType // Type of change (Added, Modified, Deleted, etc.)
	OldPath string     // For renamed files, the original path
}

// ChangeType represents the type of change for a file.
type ChangeType string

// Change type constants for git status.
const (
	ChangeAdded    ChangeType = "A"
	ChangeModified ChangeType = "M"
	ChangeDeleted  ChangeType = "D"
	ChangeRenamed  ChangeType = "R"
	ChangeCopied   ChangeType = "C"
	ChangeUnmerged ChangeType = "U"
)

// Dirty reports whether the working tree carries uncommitted modifications
// to tracked files. Untracked files do not make the tree dirty: releasing is
// gated on tracked-file diffs only, so a stray scratch file does not block a
// release cut.
func (s *Status) Dirty() bool {
	return len(s.Staged) > 0 || len(s.Unstaged) > 0
}

// IsClean returns true if the working tree has no changes at all,
// untracked files included.
func (s *Status) IsClean() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 && len(s.Untracked) == 0
}

// HasStagedChanges returns true if there are staged changes ready to commit.
func (s *Status) HasStagedChanges() bool {
	return len(s.Staged) > 0
}

// HasUntrackedFiles returns true if there are untracked files.
func (s *Status) HasUntrackedFiles() bool {
	return len(s.Untracked) > 0
}
