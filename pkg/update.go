package uvbump

import (
	"fmt"
	"path/filepath"
)

// Tag prefixes for release and test tags.
const (
	DefaultTagPrefix = "v"
	TestTagPrefix    = "test-"
)

// Options controls a single Update run.
type Options struct {
	// TagPrefix is prepended to the new version string to form the tag
	// name. Empty means DefaultTagPrefix.
	TagPrefix string
	// DryRun performs every validation step but leaves the manifest and
	// the repository untouched.
	DryRun bool
}

// Result summarizes what an Update run did, or in dry-run mode, what it
// would have done.
type Result struct {
	ManifestPath  string
	OldVersion    string
	NewVersion    string
	CommitMessage string
	Tag           string
}

// Update bumps the project version recorded in dir's pyproject.toml and
// records the change as a git commit plus tag. versionArg is either a bump
// keyword (major, minor, patch, bump) or an explicit version string.
//
// The manifest write, commit and tag only happen after every validation
// passed: the new version must advance past the current one and the
// working tree must be clean. A dry run performs the same validations and
// reports the same Result without mutating anything.
func Update(dir, versionArg string, opts Options) (Result, error) {
	u := updater{
		dir:      dir,
		store:    NewTOMLStore(),
		openRepo: OpenRepository,
	}
	return u.run(versionArg, opts)
}

// updater carries the external collaborators so tests can substitute
// in-memory implementations.
type updater struct {
	dir      string
	store    ManifestStore
	openRepo func(dir string) (Repository, error)
}

func (u updater) run(versionArg string, opts Options) (Result, error) {
	manifestPath := filepath.Join(u.dir, ManifestName)

	data, err := u.store.Load(manifestPath)
	if err != nil {
		return Result{}, err
	}
	currentStr, err := projectVersion(data)
	if err != nil {
		return Result{}, err
	}
	current, err := Parse(currentStr)
	if err != nil {
		return Result{}, err
	}

	next, err := Resolve(current, versionArg)
	if err != nil {
		return Result{}, err
	}
	if err := requireProgression(current, next); err != nil {
		return Result{}, err
	}

	// The cleanliness check runs in dry-run mode too: a dry run must
	// report the same outcome a real run would hit.
	repo, err := u.openRepo(u.dir)
	if err != nil {
		return Result{}, err
	}
	status, err := repo.Status()
	if err != nil {
		return Result{}, err
	}
	if err := requireClean(status); err != nil {
		return Result{}, err
	}

	prefix := opts.TagPrefix
	if prefix == "" {
		prefix = DefaultTagPrefix
	}
	newStr := next.String()

	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		absPath = manifestPath
	}
	res := Result{
		ManifestPath:  absPath,
		OldVersion:    currentStr,
		NewVersion:    newStr,
		CommitMessage: newStr,
		Tag:           prefix + newStr,
	}

	if opts.DryRun {
		return res, nil
	}

	setProjectVersion(data, newStr)
	if err := u.store.Save(manifestPath, data); err != nil {
		return res, err
	}
	if err := repo.Stage(ManifestName); err != nil {
		return res, err
	}
	if err := repo.Commit(res.CommitMessage); err != nil {
		return res, err
	}
	if err := repo.Tag(res.Tag); err != nil {
		return res, err
	}

	return res, nil
}

// requireProgression rejects any target version that does not strictly
// advance past the current one. This is the sole gate against downgrades
// and no-op releases.
func requireProgression(current, next Version) error {
	if next.Compare(current) <= 0 {
		return fmt.Errorf("%w: %s is not greater than %s", ErrVersionNotAdvancing, next, current)
	}
	return nil
}

// requireClean rejects a working tree with pending changes. Unstaged
// changes are reported before staged ones.
func requireClean(status RepoStatus) error {
	if status.Unstaged {
		return ErrUnstagedChanges
	}
	if status.Staged {
		return ErrStagedChanges
	}
	return nil
}
