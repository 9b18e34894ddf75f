package uvbump

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is an immutable major.minor.patch version with an optional
// pre-release suffix. Pre holds the raw suffix exactly as it appears in the
// version string (an alphabetic label glued to a number, e.g. "a4" or
// "rc1") or is empty for a final release. Bumps always construct a new
// Version; nothing mutates one in place.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   string
}

var (
	versionRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)([A-Za-z]+\d+)?$`)
	preRe     = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)
)

// Parse parses a version string of the form "1.2.3" or "1.2.3a4".
func Parse(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %s", ErrInvalidVersionFormat, s)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %s", ErrInvalidVersionFormat, s)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %s", ErrInvalidVersionFormat, s)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %s", ErrInvalidVersionFormat, s)
	}

	return Version{Major: major, Minor: minor, Patch: patch, Pre: m[4]}, nil
}

// String returns the canonical form, e.g. "1.2.3" or "1.2.3a4".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, v.Pre)
}

// Compare orders two versions, returning -1, 0 or 1. The numeric triple is
// compared first; at an equal triple a pre-release sorts strictly below the
// final release. Two pre-releases compare by label, then number.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Patch, o.Patch); c != 0 {
		return c
	}

	switch {
	case v.Pre == "" && o.Pre == "":
		return 0
	case v.Pre == "":
		return 1
	case o.Pre == "":
		return -1
	}

	aLabel, aNum, aOK := splitPrerelease(v.Pre)
	bLabel, bNum, bOK := splitPrerelease(o.Pre)
	if !aOK || !bOK {
		// Hand-built values may carry a malformed suffix.
		return strings.Compare(v.Pre, o.Pre)
	}
	if c := strings.Compare(aLabel, bLabel); c != 0 {
		return c
	}
	return cmp.Compare(aNum, bNum)
}

// splitPrerelease splits a suffix like "a4" into its label and number.
func splitPrerelease(pre string) (label string, num int, ok bool) {
	m := preRe.FindStringSubmatch(pre)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}
