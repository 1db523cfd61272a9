// Package testutil provides testing utilities for relcut.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockPublishRejected simulates a registry rejecting a publish.
	ErrMockPublishRejected = errors.New("publish rejected")

	// ErrMockNetwork indicates a mock network error occurred.
	ErrMockNetwork = errors.New("network error")

	// ErrMockGitFailed indicates a mock git command failed.
	ErrMockGitFailed = errors.New("git command failed")

	// ErrMockToolMissing simulates an external tool not being on PATH.
	ErrMockToolMissing = errors.New("executable file not found in $PATH")

	// ErrMockInstallFailed simulates a failed tool installation.
	ErrMockInstallFailed = errors.New("install failed")
)
