package uvbump

import (
	"bytes"
	"fmt"
	"os/exec"
)

// RepoStatus is a snapshot of the working tree taken at a single point in
// time. Untracked files are not reflected; they do not block a bump.
type RepoStatus struct {
	Unstaged bool
	Staged   bool
}

// Repository is the version-control capability the orchestrator consumes:
// observe state, stage files, record a commit, create a tag.
type Repository interface {
	Status() (RepoStatus, error)
	Stage(paths ...string) error
	Commit(message string) error
	Tag(name string) error
}

// OpenRepository opens the git repository containing dir. It fails with
// ErrNotARepository when dir is not under version control.
func OpenRepository(dir string) (Repository, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, dir)
	}
	return &gitRepo{dir: dir}, nil
}

type gitRepo struct {
	dir string
}

// run executes a git subcommand in the repository directory, returning
// stdout and folding captured stderr into the error.
func (r *gitRepo) run(args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %v, detail: %s", args[0], err, stderr.String())
	}
	return out, nil
}

// Status parses `git status --porcelain`. The first column is the index
// (staged) state, the second the working tree (unstaged) state; "??" lines
// are untracked files and are skipped.
func (r *gitRepo) Status() (RepoStatus, error) {
	out, err := r.run("status", "--porcelain")
	if err != nil {
		return RepoStatus{}, err
	}

	var st RepoStatus
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) < 2 {
			continue
		}
		if line[0] == '?' {
			continue
		}
		if line[0] != ' ' {
			st.Staged = true
		}
		if line[1] != ' ' {
			st.Unstaged = true
		}
	}
	return st, nil
}

func (r *gitRepo) Stage(paths ...string) error {
	_, err := r.run(append([]string{"add", "--"}, paths...)...)
	return err
}

func (r *gitRepo) Commit(message string) error {
	_, err := r.run("commit", "-m", message)
	return err
}

func (r *gitRepo) Tag(name string) error {
	_, err := r.run("tag", name)
	return err
}
