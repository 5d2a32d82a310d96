// Package blob implements the blob object kind: an opaque byte payload
// with no internal structure. Any byte sequence is a valid blob.
package blob

import (
	"fmt"
	"io"

	"github.com/goodgit/goodgit/pkg/objects"
)

type Blob struct {
	content []byte
	hash    *objects.ObjectHash
}

// NewBlob creates a new Blob from raw data.
func NewBlob(data []byte) *Blob {
	return &Blob{
		content: data,
		hash:    nil, // lazy computation
	}
}

// FromContent builds a Blob from already-unframed content bytes.
// The codec calls this after header validation.
func FromContent(content []byte) *Blob {
	return NewBlob(content)
}

// Type returns the object type
func (b *Blob) Type() objects.ObjectType {
	return objects.BlobType
}

// Content returns the raw payload of the blob.
func (b *Blob) Content() ([]byte, error) {
	return b.content, nil
}

// Size returns the payload size in bytes.
func (b *Blob) Size() int {
	return len(b.content)
}

// Hash returns the blob's identifier, computed over its canonical
// encoding and cached.
func (b *Blob) Hash() objects.ObjectHash {
	if b.hash != nil {
		return *b.hash
	}

	hash := objects.NewSerializedObject(objects.BlobType, b.content).Hash()
	b.hash = &hash
	return hash
}

// Serialized returns the blob in its canonical byte encoding.
func (b *Blob) Serialized() objects.SerializedObject {
	return objects.NewSerializedObject(objects.BlobType, b.content)
}

// Serialize writes the blob's canonical encoding to w.
func (b *Blob) Serialize(w io.Writer) error {
	if _, err := w.Write(b.Serialized()); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}

// String returns a human-readable representation
func (b *Blob) String() string {
	return fmt.Sprintf("Blob{size: %d, hash: %s}", len(b.content), b.Hash().Short(7))
}
