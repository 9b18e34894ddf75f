package uvbump

// DomainError is a user-facing precondition failure. Every DomainError is
// terminal: the run stops and the operator has to act (fix the version
// string, clean the working tree, add the missing field). The CLI presents
// them differently from unexpected errors.
type DomainError string

func (e DomainError) Error() string { return string(e) }

var (
	ErrInvalidVersionFormat    = DomainError("invalid version format")
	ErrUnknownBumpType         = DomainError("unknown bump type")
	ErrMissingPrereleaseNumber = DomainError("cannot bump pre-release version without pre-release number")
	ErrVersionNotAdvancing     = DomainError("new version must be greater than current version")
	ErrUnstagedChanges         = DomainError("repository has unstaged changes")
	ErrStagedChanges           = DomainError("repository has staged changes")
	ErrManifestNotFound        = DomainError("pyproject.toml not found")
	ErrVersionFieldMissing     = DomainError("project.version not found in pyproject.toml")
	ErrNotARepository          = DomainError("not a git repository")
)
