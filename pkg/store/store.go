package store

import (
	"github.com/goodgit/goodgit/pkg/objects"
)

// ObjectStore is the persistence boundary of the object database.
//
// Objects are immutable once written: the only mutation is the
// idempotent "write if absent" in Put. Concurrent readers need no
// locking, and concurrent writers can at worst duplicate identical
// bytes, because the identifier is a pure function of content.
type ObjectStore interface {
	// Put persists an object's canonical bytes under its identifier.
	// Writing the same content twice is a harmless no-op.
	Put(hash objects.ObjectHash, data objects.SerializedObject) error

	// Get retrieves the canonical bytes for an identifier, fully
	// inflated into memory.
	Get(hash objects.ObjectHash) (objects.SerializedObject, error)

	// ListShard enumerates the stored file names (38-char hash
	// suffixes) under a 2-character shard. A missing shard yields an
	// empty listing, not an error.
	ListShard(prefix string) ([]string, error)

	// Has checks whether an object exists in the store.
	Has(hash objects.ObjectHash) (bool, error)
}
