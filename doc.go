// Package main implements the uvbump CLI tool.
//
// The uvbump tool is a command-line interface that automates semantic version
// bumping for projects whose authoritative version lives in the
// project.version field of a pyproject.toml manifest. It reads the current
// version, computes the new version from a bump keyword or an explicit
// version string, verifies that the new version advances past the current
// one and that the git working tree is clean, then writes the manifest,
// commits the change with the new version as the commit message, and tags
// the commit.
//
// Command Usage:
//
//	uvbump [flags] [version]
//
// The positional [version] is one of the bump keywords major, minor, patch
// or bump, or an explicit version such as 2.1.0. It defaults to "bump",
// which increments the pre-release number when the current version carries
// one (1.2.3a4 → 1.2.3a5) and otherwise bumps the patch version.
//
// Flags:
//
//	-t, --test:    Tag the commit with a "test-" prefix instead of "v".
//	    --dry-run: Run every validation and print the summary without touching
//	               the manifest or the repository.
//	-C, --chdir:   Operate on the project in the given directory instead of
//	               the current one.
//	    --version: Display the version of the uvbump tool and exit.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	uvbump patch
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	uvbump minor
//
//	# Bump the major version (e.g. 1.2.3 → 2.0.0)
//	uvbump major
//
//	# Bump a pre-release version (e.g. 1.2.3a4 → 1.2.3a5)
//	uvbump
//
//	# Set an explicit version directly
//	uvbump 2.1.0
//
//	# Cut a trial release tagged test-1.2.4 instead of v1.2.4
//	uvbump -t patch
//
//	# Preview a bump without changing anything
//	uvbump --dry-run major
//
// On success the tool prints the manifest path, the old and new version,
// the commit message and the tag name, and exits 0. Any failed
// precondition (invalid version, non-advancing version, dirty working
// tree, missing manifest or version field, not a git repository) stops the
// run before anything is modified and exits 1.
//
// For the programmatic API, see the documentation in the "pkg" package.
package main
