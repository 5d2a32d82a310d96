// Package gitrepo provides the repository handle: where the storage
// directory lives, how a new one is bootstrapped, and how an existing
// one is discovered from a working directory.
package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goodgit/goodgit/pkg/common/fileops"
	"github.com/goodgit/goodgit/pkg/common/logger"
	"github.com/goodgit/goodgit/pkg/repository/gitpath"
)

// DefaultBranch is the branch HEAD points at after init when none is given.
const DefaultBranch = "master"

// Repo is a handle to a repository rooted at a working directory.
type Repo struct {
	root string
}

// New creates a Repo handle for the given root directory. The
// directory is not required to exist yet; Init creates it.
func New(root string) *Repo {
	return &Repo{root: root}
}

// Root returns the repository root directory
func (r *Repo) Root() string {
	return r.root
}

// GitDir returns the path of the storage directory.
func (r *Repo) GitDir() string {
	return filepath.Join(r.root, gitpath.GitDir)
}

// ObjectsDir returns the path of the object store root.
func (r *Repo) ObjectsDir() string {
	return filepath.Join(r.GitDir(), gitpath.ObjectsDir)
}

// RefsDir returns the path of the references root.
func (r *Repo) RefsDir() string {
	return filepath.Join(r.GitDir(), gitpath.RefsDir)
}

// HeadPath returns the path of the HEAD pointer file.
func (r *Repo) HeadPath() string {
	return filepath.Join(r.GitDir(), gitpath.HeadFile)
}

// Init bootstraps the repository directory layout: the storage
// directory, objects/, refs/heads/, and a HEAD file pointing at the
// given branch. Idempotent: re-running on an existing repository
// rewrites HEAD and leaves everything else in place.
func (r *Repo) Init(branch string) error {
	if branch == "" {
		branch = DefaultBranch
	}

	dirs := []string{
		r.root,
		r.GitDir(),
		r.ObjectsDir(),
		filepath.Join(r.RefsDir(), gitpath.HeadsDir),
	}
	for _, dir := range dirs {
		if err := fileops.EnsureDir(dir); err != nil {
			return fmt.Errorf("failed to initialize repository: %w", err)
		}
	}

	head := gitpath.SymbolicRefPrefix + "refs/" + gitpath.HeadsDir + "/" + branch
	if err := fileops.WriteFileString(r.HeadPath(), head); err != nil {
		return fmt.Errorf("failed to write HEAD: %w", err)
	}

	logger.Debug("initialized repository", "root", r.root, "branch", branch)
	return nil
}

// Discover walks upward from start looking for the nearest ancestor
// directory containing the storage directory and returns a handle to
// it. Fails if the walk reaches the filesystem root without a match.
func Discover(start string) (*Repo, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		gitDir := filepath.Join(dir, gitpath.GitDir)
		if info, statErr := os.Stat(gitDir); statErr == nil && info.IsDir() {
			return New(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("not a repository (or any parent up to mount point)")
		}
		dir = parent
	}
}
