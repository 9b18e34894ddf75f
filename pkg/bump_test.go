package uvbump

import (
	"errors"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		current  string
		bumpType string
		want     string
	}{
		{current: "1.2.3", bumpType: "major", want: "2.0.0"},
		{current: "1.2.3", bumpType: "minor", want: "1.3.0"},
		{current: "1.2.3", bumpType: "patch", want: "1.2.4"},
		// "bump" on a release behaves exactly like "patch".
		{current: "1.2.3", bumpType: "bump", want: "1.2.4"},
		// "bump" on a pre-release increments the pre-release number.
		{current: "1.2.3a4", bumpType: "bump", want: "1.2.3a5"},
		{current: "2.0.0rc1", bumpType: "bump", want: "2.0.0rc2"},
		// Component bumps always drop the pre-release suffix.
		{current: "1.2.3a4", bumpType: "major", want: "2.0.0"},
		{current: "1.2.3a4", bumpType: "minor", want: "1.3.0"},
		{current: "1.2.3a4", bumpType: "patch", want: "1.2.4"},
		{current: "0.0.0", bumpType: "major", want: "1.0.0"},
		{current: "9.9.9", bumpType: "patch", want: "9.9.10"},
	}

	for _, tt := range tests {
		t.Run(tt.current+" "+tt.bumpType, func(t *testing.T) {
			current, err := Parse(tt.current)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Next(current, tt.bumpType)
			if err != nil {
				t.Fatalf("Next(%s, %s) failed: %v", tt.current, tt.bumpType, err)
			}
			if got.String() != tt.want {
				t.Errorf("Next(%s, %s) = %s, want %s", tt.current, tt.bumpType, got, tt.want)
			}
		})
	}
}

func TestNextUnknownBumpType(t *testing.T) {
	current, err := Parse("1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Next(current, "invalid"); !errors.Is(err, ErrUnknownBumpType) {
		t.Errorf("Next error = %v, want ErrUnknownBumpType", err)
	}
}

func TestNextMissingPrereleaseNumber(t *testing.T) {
	// Parse never produces a suffix without a number, but a hand-built
	// Version can carry one; the guard must still fire.
	current := Version{Major: 1, Minor: 2, Patch: 3, Pre: "alpha"}
	if _, err := Next(current, BumpDefault); !errors.Is(err, ErrMissingPrereleaseNumber) {
		t.Errorf("Next error = %v, want ErrMissingPrereleaseNumber", err)
	}
}

func TestResolve(t *testing.T) {
	current, err := Parse("1.0.0")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		versionArg string
		want       string
	}{
		{versionArg: "major", want: "2.0.0"},
		{versionArg: "minor", want: "1.1.0"},
		{versionArg: "patch", want: "1.0.1"},
		{versionArg: "bump", want: "1.0.1"},
		{versionArg: "1.5.0", want: "1.5.0"},
		{versionArg: "2.0.0a1", want: "2.0.0a1"},
	}

	for _, tt := range tests {
		t.Run(tt.versionArg, func(t *testing.T) {
			got, err := Resolve(current, tt.versionArg)
			if err != nil {
				t.Fatalf("Resolve(%s) failed: %v", tt.versionArg, err)
			}
			if got.String() != tt.want {
				t.Errorf("Resolve(%s) = %s, want %s", tt.versionArg, got, tt.want)
			}
		})
	}
}

func TestResolveInvalidExplicitVersion(t *testing.T) {
	current, err := Parse("1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(current, "invalid-version"); !errors.Is(err, ErrInvalidVersionFormat) {
		t.Errorf("Resolve error = %v, want ErrInvalidVersionFormat", err)
	}
}
