// Package semver provides parsing and formatting for the version strings
// relcut moves between stages: MAJOR.MINOR.PATCH with an optional -SNAPSHOT
// pre-release marker.
//
// Computing version increments is the external version authority's job.
// This package only validates and re-marks version strings; it deliberately
// contains no bump arithmetic.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/relcut/relcut/internal/constants"
	"github.com/relcut/relcut/internal/errors"
)

// Version is a parsed MAJOR.MINOR.PATCH[-SNAPSHOT] version string.
type Version struct {
	// Major is the MAJOR component.
	Major int
	// Minor is the MINOR component.
	Minor int
	// Patch is the PATCH component.
	Patch int
	// Snapshot is true when the version carries the -SNAPSHOT suffix,
	// marking it as an unreleased development build.
	Snapshot bool
}

// Parse parses a version string of the form MAJOR.MINOR.PATCH with an
// optional -SNAPSHOT suffix. Leading/trailing whitespace and a leading "v"
// are tolerated since external tools are inconsistent about both.
func Parse(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Version{}, fmt.Errorf("%w: empty string", errors.ErrInvalidVersion)
	}

	trimmed := strings.TrimPrefix(raw, "v")

	snapshot := false
	if rest, ok := strings.CutSuffix(trimmed, constants.SnapshotSuffix); ok {
		snapshot = true
		trimmed = rest
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q is not MAJOR.MINOR.PATCH", errors.ErrInvalidVersion, raw)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || (len(part) > 1 && part[0] == '0') {
			return Version{}, fmt.Errorf("%w: %q has non-numeric segment %q", errors.ErrInvalidVersion, raw, part)
		}
		nums[i] = n
	}

	return Version{
		Major:    nums[0],
		Minor:    nums[1],
		Patch:    nums[2],
		Snapshot: snapshot,
	}, nil
}

// String returns the canonical string form, including the -SNAPSHOT suffix
// when the version is marked as a snapshot.
func (v Version) String() string {
	if v.Snapshot {
		return v.Bare() + constants.SnapshotSuffix
	}
	return v.Bare()
}

// Bare returns the MAJOR.MINOR.PATCH form with no pre-release marker.
func (v Version) Bare() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// WithSnapshot returns a copy of the version marked as a snapshot.
func (v Version) WithSnapshot() Version {
	v.Snapshot = true
	return v
}

// WithoutSnapshot returns a copy of the version with the snapshot marker cleared.
func (v Version) WithoutSnapshot() Version {
	v.Snapshot = false
	return v
}
