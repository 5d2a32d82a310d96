package refs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/goodgit/goodgit/pkg/objects"
	"github.com/goodgit/goodgit/pkg/repository/gitpath"
)

// Ref is a resolved named reference.
type Ref struct {
	Name gitpath.RefPath
	Hash objects.ObjectHash
}

// resolveConcurrency bounds the parallel reference resolutions in List.
const resolveConcurrency = 8

// List enumerates every reference under the heads, remotes, and tags
// namespaces, resolves each one, and returns the result sorted by name
// for stable output.
func (r *Resolver) List() ([]Ref, error) {
	var names []gitpath.RefPath

	for _, ns := range []string{gitpath.HeadsDir, gitpath.RemotesDir, gitpath.TagsDir} {
		root := filepath.Join(r.gitDir, gitpath.RefsDir, ns)
		if info, e := os.Stat(root); e != nil || !info.IsDir() {
			continue
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, e error) error {
			if e != nil {
				return e
			}
			if d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(r.gitDir, path)
			if relErr != nil {
				return relErr
			}
			names = append(names, gitpath.RefPath(filepath.ToSlash(rel)))
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	refs := make([]Ref, len(names))
	var g errgroup.Group
	g.SetLimit(resolveConcurrency)

	for i, name := range names {
		g.Go(func() error {
			hash, e := r.Resolve(name)
			if e != nil {
				return e
			}
			refs[i] = Ref{Name: name, Hash: hash}
			return nil
		})
	}
	if e := g.Wait(); e != nil {
		return nil, e
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Name < refs[j].Name
	})
	return refs, nil
}
