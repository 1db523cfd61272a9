// Package vcs provides the source-control capability the release pipeline
// sequences around.
// This file defines the Runner interface for git CLI operations.
package vcs

import "context"

// Runner defines the repository operations the release pipeline needs.
// All operations run in the runner's working directory and use context for
// cancellation.
type Runner interface {
	// Status returns the current working tree status including staged,
	// unstaged, and untracked files.
	Status(ctx context.Context) (*Status, error)

	// Add stages files for commit. If paths is empty, stages all changes.
	Add(ctx context.Context, paths []string) error

	// Commit creates a commit with the given message.
	Commit(ctx context.Context, message string) error

	// Push pushes commits to the remote repository. An empty branch pushes
	// the currently checked out branch.
	Push(ctx context.Context, remote, branch string) error

	// CurrentBranch returns the name of the currently checked out branch.
	// Returns an error if in detached HEAD state.
	CurrentBranch(ctx context.Context) (string, error)
}
