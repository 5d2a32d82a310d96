// Package gitpath defines the on-disk layout constants and typed path
// helpers for the repository storage directory.
package gitpath

import (
	"fmt"
	"strings"
)

const (
	// GitDir is the name of the storage directory inside a repository
	GitDir = ".git"

	// ObjectsDir is the name of the objects directory
	ObjectsDir = "objects"

	// RefsDir is the name of the refs directory
	RefsDir = "refs"

	// HeadsDir holds branch references under refs/
	HeadsDir = "heads"

	// RemotesDir holds remote-tracking references under refs/
	RemotesDir = "remotes"

	// TagsDir holds tag references under refs/
	TagsDir = "tags"

	// HeadFile is the name of the HEAD pointer file
	HeadFile = "HEAD"
)

// SymbolicRefPrefix marks a reference whose content points at another
// reference rather than holding an identifier.
const SymbolicRefPrefix = "ref: "

// ObjectPath is the shard-relative path of a stored object:
// the first 2 hash characters select the shard directory, the
// remaining 38 are the file name. Format: "ab/cdef123...".
type ObjectPath string

// NewObjectPath builds the sharded path for a full 40-hex hash.
func NewObjectPath(hash string) (ObjectPath, error) {
	if len(hash) != 40 {
		return "", fmt.Errorf("hash must be 40 characters, got %d", len(hash))
	}
	return ObjectPath(hash[:2] + "/" + hash[2:]), nil
}

// String returns the object path as a string
func (op ObjectPath) String() string {
	return string(op)
}

// Prefix returns the 2-character shard directory name
func (op ObjectPath) Prefix() string {
	if len(op) < 2 {
		return ""
	}
	return string(op[:2])
}

// Suffix returns the 38-character file name within the shard
func (op ObjectPath) Suffix() string {
	if len(op) < 4 {
		return ""
	}
	return string(op[3:])
}

// RefPath is a reference path relative to the storage directory.
// Examples: "refs/heads/main", "refs/tags/v1.0.0", "HEAD".
type RefPath string

// String returns the reference path as a string
func (rp RefPath) String() string {
	return string(rp)
}

// IsBranch checks if this is a branch reference
func (rp RefPath) IsBranch() bool {
	return strings.HasPrefix(string(rp), "refs/heads/")
}

// IsTag checks if this is a tag reference
func (rp RefPath) IsTag() bool {
	return strings.HasPrefix(string(rp), "refs/tags/")
}

// IsRemote checks if this is a remote-tracking reference
func (rp RefPath) IsRemote() bool {
	return strings.HasPrefix(string(rp), "refs/remotes/")
}

// ShortName strips the namespace prefix:
// "refs/heads/main" -> "main", "refs/tags/v1.0.0" -> "v1.0.0".
func (rp RefPath) ShortName() string {
	s := string(rp)
	if rp.IsBranch() {
		return strings.TrimPrefix(s, "refs/heads/")
	}
	if rp.IsTag() {
		return strings.TrimPrefix(s, "refs/tags/")
	}
	if rp.IsRemote() {
		return strings.TrimPrefix(s, "refs/remotes/")
	}
	return s
}

// NewBranchRef creates a branch reference path.
func NewBranchRef(name string) (RefPath, error) {
	if name == "" {
		return "", fmt.Errorf("branch name cannot be empty")
	}
	return RefPath("refs/heads/" + name), nil
}
