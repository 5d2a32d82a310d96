// Package history walks linear commit ancestry: from a starting
// revision, each commit's single recorded parent is followed until a
// root commit is reached.
package history

import (
	"github.com/goodgit/goodgit/pkg/objects"
	"github.com/goodgit/goodgit/pkg/objects/commit"
	"github.com/goodgit/goodgit/pkg/revision"
)

// Entry is one emitted commit in a history walk.
type Entry struct {
	Hash      objects.ObjectHash
	Summary   string
	Committer string
}

// Walker produces the ancestry chain of a starting revision, one
// commit per Next call. The sequence is finite and forward-only;
// walking again requires a new Walker.
type Walker struct {
	resolver *revision.Resolver
	next     string
	done     bool
}

// NewWalker creates a Walker starting at the given revision.
func NewWalker(resolver *revision.Resolver, start string) *Walker {
	return &Walker{resolver: resolver, next: start}
}

// Next resolves the current revision and returns its history entry,
// advancing to the parent. It returns (nil, nil) when the walk is
// over: after the root commit, or immediately if the revision names a
// non-commit object (pointing log at a tree or blob is not an error,
// it just produces nothing).
func (w *Walker) Next() (*Entry, error) {
	if w.done {
		return nil, nil
	}

	hash, obj, err := w.resolver.Resolve(w.next)
	if err != nil {
		return nil, err
	}

	c, ok := obj.(*commit.Commit)
	if !ok {
		w.done = true
		return nil, nil
	}

	if c.IsRoot() {
		w.done = true
	} else {
		w.next = c.Parent
	}

	return &Entry{
		Hash:      hash,
		Summary:   c.Summary(),
		Committer: c.Committer,
	}, nil
}

// All drains the walker into a slice.
func (w *Walker) All() ([]*Entry, error) {
	var entries []*Entry
	for {
		entry, err := w.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return entries, nil
		}
		entries = append(entries, entry)
	}
}
