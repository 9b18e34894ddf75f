package uvbump

import (
	"fmt"
	"strconv"
)

// Bump keywords accepted in place of an explicit version.
const (
	BumpMajor   = "major"
	BumpMinor   = "minor"
	BumpPatch   = "patch"
	BumpDefault = "bump"
)

// Next derives the next version from current according to a bump keyword.
// It is pure: current is never modified.
//
//   - "major": (major+1).0.0
//   - "minor": major.(minor+1).0
//   - "patch": major.minor.(patch+1)
//   - "bump":  increments the pre-release number if current has one,
//     otherwise behaves exactly like "patch".
//
// The three component bumps always drop any pre-release suffix.
func Next(current Version, bumpType string) (Version, error) {
	switch bumpType {
	case BumpMajor:
		return Version{Major: current.Major + 1}, nil
	case BumpMinor:
		return Version{Major: current.Major, Minor: current.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: current.Major, Minor: current.Minor, Patch: current.Patch + 1}, nil
	case BumpDefault:
		if current.Pre == "" {
			return Next(current, BumpPatch)
		}
		label, num, ok := splitPrerelease(current.Pre)
		if !ok {
			// Parse never produces such a suffix, but hand-built
			// Versions can carry one.
			return Version{}, fmt.Errorf("%w: %s", ErrMissingPrereleaseNumber, current)
		}
		return Version{
			Major: current.Major,
			Minor: current.Minor,
			Patch: current.Patch,
			Pre:   label + strconv.Itoa(num+1),
		}, nil
	default:
		return Version{}, fmt.Errorf("%w: %s", ErrUnknownBumpType, bumpType)
	}
}

// Resolve turns a version argument into a target version: bump keywords are
// applied to current, anything else is parsed as an explicit version.
func Resolve(current Version, versionArg string) (Version, error) {
	switch versionArg {
	case BumpMajor, BumpMinor, BumpPatch, BumpDefault:
		return Next(current, versionArg)
	default:
		return Parse(versionArg)
	}
}
