// Package tree implements the tree object kind: an ordered sequence of
// entries mapping path segments to child identifiers.
//
// The reader accepts entries in any order and preserves encounter
// order; a canonical writer ordering is a concern of components that
// build trees, which this module does not do.
package tree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goodgit/goodgit/pkg/objects"
)

type Tree struct {
	entries []Entry
	hash    *objects.ObjectHash
}

// NewTree creates a Tree from entries, kept in the given order.
func NewTree(entries []Entry) *Tree {
	return &Tree{entries: entries}
}

// FromContent parses tree content bytes (without header) into a Tree.
// Zero entries is a valid, empty tree.
func FromContent(content []byte) (*Tree, error) {
	var entries []Entry
	offset := 0

	for offset < len(content) {
		entry, next, err := decodeEntry(content, offset)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		offset = next
	}

	return &Tree{entries: entries}, nil
}

// Type returns the object type
func (t *Tree) Type() objects.ObjectType {
	return objects.TreeType
}

// Content serializes the entries, in order, without the header.
func (t *Tree) Content() ([]byte, error) {
	var buf bytes.Buffer
	for _, entry := range t.entries {
		serialized, err := entry.Serialize()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize tree entry %q: %w", entry.Name, err)
		}
		buf.Write(serialized)
	}
	return buf.Bytes(), nil
}

// Entries returns a copy of the entries to prevent external modification.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// IsEmpty returns true if the tree has no entries
func (t *Tree) IsEmpty() bool {
	return len(t.entries) == 0
}

// Hash returns the tree's identifier, cached after first computation.
func (t *Tree) Hash() (objects.ObjectHash, error) {
	if t.hash != nil {
		return *t.hash, nil
	}

	content, err := t.Content()
	if err != nil {
		return "", err
	}

	hash := objects.NewSerializedObject(objects.TreeType, content).Hash()
	t.hash = &hash
	return hash, nil
}

// Serialize writes the tree's canonical encoding to w.
func (t *Tree) Serialize(w io.Writer) error {
	content, err := t.Content()
	if err != nil {
		return err
	}
	if _, err := w.Write(objects.NewSerializedObject(objects.TreeType, content)); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	return nil
}

// String returns a human-readable representation
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{entries: %d}", len(t.entries))
}
