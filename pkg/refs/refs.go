// Package refs resolves named references: small text files whose
// content is either a bare identifier or a symbolic pointer to
// another reference.
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goodgit/goodgit/pkg/common/err"
	"github.com/goodgit/goodgit/pkg/common/fileops"
	"github.com/goodgit/goodgit/pkg/objects"
	"github.com/goodgit/goodgit/pkg/repository/gitpath"
)

const pkgName = "refs"

// MaxRefDepth bounds symbolic-reference indirection. A chain deeper
// than this (including a cycle, which would otherwise loop forever)
// fails instead of recursing unboundedly.
const MaxRefDepth = 10

// Resolver reads and follows references under a storage directory.
type Resolver struct {
	gitDir string
}

// NewResolver creates a Resolver for the given storage directory.
func NewResolver(gitDir string) *Resolver {
	return &Resolver{gitDir: gitDir}
}

// Resolve follows a reference path to the identifier it ultimately
// names. Content starting with "ref: " is a symbolic pointer to
// another reference path; anything else is the literal identifier,
// trailing whitespace trimmed.
func (r *Resolver) Resolve(ref gitpath.RefPath) (objects.ObjectHash, error) {
	current := ref

	for range MaxRefDepth {
		content, e := r.read(current)
		if e != nil {
			return "", e
		}

		if target, ok := strings.CutPrefix(content, gitpath.SymbolicRefPrefix); ok {
			current = gitpath.RefPath(strings.TrimSpace(target))
			continue
		}

		return objects.ObjectHash(content), nil
	}

	return "", err.New(pkgName, err.CodeInvalidFormat, "resolve",
		fmt.Sprintf("reference depth exceeded for %s", ref), nil)
}

// read returns the trimmed content of a reference file.
func (r *Resolver) read(ref gitpath.RefPath) (string, error) {
	content, e := fileops.ReadTrimmed(filepath.Join(r.gitDir, filepath.FromSlash(ref.String())))
	if e != nil {
		if os.IsNotExist(e) {
			return "", err.New(pkgName, err.CodeNotFound, "read",
				fmt.Sprintf("reference not found: %s", ref), nil)
		}
		return "", err.WrapWithCode(e, pkgName, err.CodeIO, "read")
	}
	return content, nil
}
