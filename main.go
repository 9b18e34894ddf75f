// Package main implements a CLI tool to bump the project version in a
// pyproject.toml manifest, then commit and tag the change using git.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	uvbump "github.com/uvbump/uvbump/pkg"
)

func usage() {
	msg := `Usage:
  uvbump [options] [version]

Bumps the project.version field in pyproject.toml, commits the change with the new version
as the commit message, and tags the commit with the new version prefixed with "v".
The repository must have no unstaged or staged changes.

Examples:
  uvbump patch
  uvbump 1.2.3
  uvbump --dry-run minor

Positional arguments:
  [version]     One of: major, minor, patch, bump, or an explicit version like 1.2.3.
                Defaults to "bump": increments the pre-release number if the current
                version has one, otherwise bumps the patch version.

Options:
`
	fmt.Fprint(os.Stderr, msg)
	pflag.PrintDefaults()
}

func main() {
	// Define flags.
	testTag := pflag.BoolP("test", "t", false, "Use test- prefix for tag instead of v")
	dryRun := pflag.Bool("dry-run", false, "Show what would be done without making changes")
	dir := pflag.StringP("chdir", "C", ".", "Operate on the project in this directory")
	showVersion := pflag.Bool("version", false, "Show uvbump version and exit")
	help := pflag.BoolP("help", "h", false, "Show help message and exit")

	pflag.Usage = usage
	pflag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("uvbump version", Version)
		os.Exit(0)
	}

	args := pflag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one [version] positional argument is accepted")
		usage()
		os.Exit(1)
	}
	versionArg := uvbump.BumpDefault
	if len(args) == 1 {
		versionArg = args[0]
	}

	opts := uvbump.Options{DryRun: *dryRun}
	if *testTag {
		opts.TagPrefix = uvbump.TestTagPrefix
	}

	result, err := uvbump.Update(*dir, versionArg, opts)
	if err != nil {
		var domainErr uvbump.DomainError
		if errors.As(err, &domainErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		}
		os.Exit(1)
	}

	// Summary
	fmt.Printf("Updated: %s\n", result.ManifestPath)
	fmt.Printf("Version: %s → %s\n", result.OldVersion, result.NewVersion)
	fmt.Printf("Commit: %s\n", result.CommitMessage)
	fmt.Printf("Tag: %s\n", result.Tag)

	if *dryRun {
		fmt.Println("(dry run - no changes made)")
	}
}
