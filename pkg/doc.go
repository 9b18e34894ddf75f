// Package uvbump implements version bumping for projects that record their
// version in a pyproject.toml manifest.
//
// It provides functionalities for:
//   - Parsing, comparing and formatting versions of the form "1.2.3" with
//     an optional pre-release suffix such as "a1" or "rc2".
//   - Deriving the next version from a bump keyword (major, minor, patch,
//     bump) or accepting an explicit version string.
//   - Enforcing that a bump strictly advances the version and that the
//     backing git repository has no unstaged or staged changes before
//     anything is written.
//   - Updating the manifest and recording the change as a git commit whose
//     message is the new version, tagged with the new version behind a
//     configurable prefix ("v" by default, "test-" for trial releases).
//
// The package is designed to be used both by the uvbump CLI at the module
// root and programmatically:
//
//	result, err := uvbump.Update(".", "patch", uvbump.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("bumped %s -> %s", result.OldVersion, result.NewVersion)
//
// Every precondition failure is returned as a DomainError and terminates
// the run; nothing is retried and no partial mutation is left behind.
package uvbump
