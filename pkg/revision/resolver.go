// Package revision maps user-supplied revision strings (full or
// abbreviated identifiers) to exactly one stored object.
package revision

import (
	"fmt"
	"strings"

	"github.com/goodgit/goodgit/pkg/common/err"
	"github.com/goodgit/goodgit/pkg/objects"
	"github.com/goodgit/goodgit/pkg/objects/codec"
	"github.com/goodgit/goodgit/pkg/store"
)

const pkgName = "revision"

// MinRevisionLength is the shortest revision string that triggers a
// shard lookup. Shorter prefixes would collide across any non-trivial
// store and provide no useful disambiguation, so they resolve to
// "object not found" without a directory scan.
const MinRevisionLength = 4

// AmbiguousError reports a revision that matched more than one stored
// object. The full candidate set is carried so a caller can
// disambiguate without re-querying.
type AmbiguousError struct {
	Candidates []objects.ObjectHash

	base *err.Error
}

func newAmbiguousError(rev string, candidates []objects.ObjectHash) *AmbiguousError {
	list := make([]string, len(candidates))
	for i, c := range candidates {
		list[i] = c.String()
	}
	return &AmbiguousError{
		Candidates: candidates,
		base: err.New(pkgName, err.CodeAmbiguous, "resolve",
			fmt.Sprintf("ambiguous reference %q: [%s]", rev, strings.Join(list, ", ")), nil),
	}
}

func (e *AmbiguousError) Error() string {
	return e.base.Error()
}

func (e *AmbiguousError) Unwrap() error {
	return e.base
}

// Resolver resolves revision strings against an object store.
type Resolver struct {
	store store.ObjectStore
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(s store.ObjectStore) *Resolver {
	return &Resolver{store: s}
}

// Resolve maps a revision string to the single object it denotes,
// returning the resolved full identifier alongside the decoded object.
//
// A revision of at least 4 characters is split into its 2-character
// shard prefix and remaining suffix; every stored object in that shard
// whose name starts with the suffix is a candidate. Exactly one
// candidate resolves; zero is "object not found"; several is an
// ambiguity error listing all of them. Full 40-character identifiers
// take the same path as short ones.
func (r *Resolver) Resolve(rev string) (objects.ObjectHash, objects.Object, error) {
	var candidates []objects.ObjectHash

	if len(rev) >= MinRevisionLength {
		prefix, rest := rev[:2], rev[2:]

		names, e := r.store.ListShard(prefix)
		if e != nil {
			return "", nil, e
		}

		for _, name := range names {
			if strings.HasPrefix(name, rest) {
				candidates = append(candidates, objects.ObjectHash(prefix+name))
			}
		}
	}

	// Extension point: when no hash-shaped candidates are found, the
	// revision could be tried as a reference name. Not implemented.

	switch len(candidates) {
	case 1:
		obj, e := r.load(candidates[0])
		if e != nil {
			return "", nil, e
		}
		return candidates[0], obj, nil
	case 0:
		return "", nil, err.New(pkgName, err.CodeNotFound, "resolve", "object not found", nil)
	default:
		return "", nil, newAmbiguousError(rev, candidates)
	}
}

func (r *Resolver) load(hash objects.ObjectHash) (objects.Object, error) {
	data, e := r.store.Get(hash)
	if e != nil {
		return nil, e
	}
	return codec.Decode(data)
}
