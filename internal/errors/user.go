package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrDirtyWorkTree,
		info: ErrorInfo{
			Message: "The working tree has uncommitted changes. Releases are only cut from a clean tree.",
			Action:  "Commit or stash your local changes and re-run.",
		},
	},
	{
		err: ErrToolUnavailable,
		info: ErrorInfo{
			Message: "A required external tool is missing and could not be installed.",
			Action:  "Run 'relcut doctor' to see which tools are missing and how to install them.",
		},
	},
	{
		err: ErrReleaseFailed,
		info: ErrorInfo{
			Message: "The version authority reported a release failure. Nothing past the release stage ran.",
			Action:  "Check registry credentials and network access, then re-run once the cause is fixed.",
		},
	},
	{
		err: ErrSnapshotBump,
		info: ErrorInfo{
			Message: "The release succeeded but advancing to the next development version failed.",
			Action:  "The repository is released but not advanced. Bump the manifest to the next -SNAPSHOT version by hand and commit.",
		},
	},
	{
		err: ErrPersistFailed,
		info: ErrorInfo{
			Message: "The snapshot commit or push failed. The version bump is still on disk, uncommitted.",
			Action:  "Inspect 'git status', then commit and push the manifest changes manually.",
		},
	},
	{
		err: ErrInvalidReleaseType,
		info: ErrorInfo{
			Message: "The release type must be one of: patch, minor, major.",
			Action:  "Pass a valid value via --type or the RELEASE_TYPE environment variable.",
		},
	},
	{
		err: ErrNotGitRepo,
		info: ErrorInfo{
			Message: "The current directory is not inside a git repository.",
			Action:  "Run relcut from the root of the package repository.",
		},
	},
	{
		err: ErrGitOperation,
		info: ErrorInfo{
			Message: "A git operation failed.",
			Action:  "Check the error details and repository state, then retry.",
		},
	},
	{
		err: ErrMissingRequiredTools,
		info: ErrorInfo{
			Message: "One or more required tools are missing.",
			Action:  "Run 'relcut doctor' for per-tool install hints.",
		},
	},
	{
		err: ErrConfigExists,
		info: ErrorInfo{
			Message: "A configuration file already exists at the target path.",
			Action:  "Remove the existing file or use --force to overwrite it.",
		},
	},
}

// UserMessage returns a user-friendly message for the given error.
// Falls back to the error's own text when no mapping exists.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns a suggested action for the given error, or an empty
// string when there is nothing actionable to suggest.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
