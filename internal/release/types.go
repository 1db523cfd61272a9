// Package release implements the release-preparation pipeline: verify the
// working tree is clean, delegate the release bump + publish + tag to the
// version authority, advance to the next development version, re-mark it as
// a snapshot, and persist the result with a commit and push.
// This file defines the release type enum and the pipeline result.
package release

import (
	"fmt"

	"github.com/relcut/relcut/internal/constants"
	"github.com/relcut/relcut/internal/errors"
	"github.com/relcut/relcut/internal/semver"
)

// Type is the kind of version increment requested for the release stage.
type Type string

// Release kinds understood by the version authority.
const (
	// TypePatch bumps the PATCH component.
	TypePatch Type = "patch"
	// TypeMinor bumps the MINOR component and resets PATCH.
	TypeMinor Type = "minor"
	// TypeMajor bumps the MAJOR component and resets MINOR and PATCH.
	TypeMajor Type = "major"
)

// Types returns the valid release type values.
func Types() []Type {
	return []Type{TypePatch, TypeMinor, TypeMajor}
}

// ParseType validates a release-type string. An empty value falls back to
// the configuration default ("patch"); any other unrecognized value is an
// error. The distinction matters: an absent value is a default, an invalid
// explicit value must abort before any external call runs.
func ParseType(s string) (Type, error) {
	if s == "" {
		return Type(constants.DefaultReleaseType), nil
	}

	t := Type(s)
	for _, valid := range Types() {
		if t == valid {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidReleaseType, s, Types())
}

// String returns the release type as a string.
func (t Type) String() string {
	return string(t)
}

// Result describes a completed pipeline run.
type Result struct {
	// ReleaseType is the kind of release that was cut.
	ReleaseType Type

	// NextDevelopment is the snapshot version the repository was advanced
	// to after the release: always one patch level past the released
	// version, carrying the -SNAPSHOT marker. The released version itself
	// is the authority's business; relcut never recomputes it.
	NextDevelopment semver.Version

	// Branch is the branch the snapshot commit was pushed to.
	Branch string
}
