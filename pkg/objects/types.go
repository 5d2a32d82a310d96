package objects

// ObjectType represents the kind of a stored object.
//
// The type set is closed: blob, tree, commit. The codec rejects any
// other type token found in a header.
type ObjectType string

const (
	BlobType   ObjectType = "blob"
	TreeType   ObjectType = "tree"
	CommitType ObjectType = "commit"
)

const (
	NullByte  = byte(0)
	SpaceByte = byte(' ')
)

// String implements the Stringer interface
func (o ObjectType) String() string {
	return string(o)
}

// IsKnown reports whether the type is one of the three stored kinds.
func (o ObjectType) IsKnown() bool {
	switch o {
	case BlobType, TreeType, CommitType:
		return true
	}
	return false
}

// Object is the closed union over the three stored kinds. Concrete
// implementations are blob.Blob, tree.Tree, and commit.Commit; callers
// dispatch with a type switch.
type Object interface {
	// Type returns the object type
	Type() ObjectType

	// Content returns the raw content of the object (without header)
	Content() ([]byte, error)
}
