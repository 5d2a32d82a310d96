package tree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goodgit/goodgit/pkg/common/err"
	"github.com/goodgit/goodgit/pkg/objects"
)

const pkgName = "tree"

// Mode is the file-type tag of a tree entry, stored as the decimal
// token that appears on disk.
type Mode string

const (
	ModeNormal     Mode = "100644"
	ModeExecutable Mode = "100755"
	ModeSymlink    Mode = "120000"
	ModeSubtree    Mode = "40000"
	ModeSubmodule  Mode = "160000"
)

// ParseMode converts an on-disk mode token to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNormal, ModeExecutable, ModeSymlink, ModeSubtree, ModeSubmodule:
		return Mode(s), nil
	default:
		return "", err.New(pkgName, err.CodeInvalidFormat, "parse_mode",
			"failed to parse mode", nil)
	}
}

// String returns the on-disk token
func (m Mode) String() string {
	return string(m)
}

// TypeLabel returns the label shown for this mode in tree listings:
// blob, symlink, tree, or submodule.
func (m Mode) TypeLabel() string {
	switch m {
	case ModeNormal, ModeExecutable:
		return "blob"
	case ModeSymlink:
		return "symlink"
	case ModeSubtree:
		return "tree"
	case ModeSubmodule:
		return "submodule"
	default:
		return "unknown"
	}
}

// IsSubtree returns true if the entry points at another tree
func (m Mode) IsSubtree() bool {
	return m == ModeSubtree
}

// Entry is a single tree entry: a mode, a path segment, and the
// identifier of the child object.
//
// Serialized form, one per entry, in encounter order:
//
//	[mode] [space] [name] [null byte] [20-byte raw SHA-1]
type Entry struct {
	Mode Mode
	Name string
	Hash objects.ObjectHash
}

// NewEntry creates an Entry with validation.
func NewEntry(mode Mode, name string, hash objects.ObjectHash) (Entry, error) {
	if name == "" || strings.ContainsRune(name, 0) {
		return Entry{}, err.New(pkgName, err.CodeInvalidInput, "new_entry",
			fmt.Sprintf("invalid file name: %q", name), nil)
	}
	if e := hash.Validate(); e != nil {
		return Entry{}, err.New(pkgName, err.CodeInvalidInput, "new_entry",
			"invalid entry hash", e)
	}
	return Entry{Mode: mode, Name: name, Hash: hash}, nil
}

// Serialize returns the entry's on-disk bytes.
func (e Entry) Serialize() ([]byte, error) {
	raw, rerr := e.Hash.Raw()
	if rerr != nil {
		return nil, fmt.Errorf("failed to encode entry hash: %w", rerr)
	}

	var buf bytes.Buffer
	buf.WriteString(string(e.Mode))
	buf.WriteByte(objects.SpaceByte)
	buf.WriteString(e.Name)
	buf.WriteByte(objects.NullByte)
	buf.Write(raw[:])
	return buf.Bytes(), nil
}

// decodeEntry reads one entry starting at offset and returns it along
// with the offset of the next entry. The scan is cursor-based over the
// shared content buffer; nothing is copied except the name string and
// the hex-encoded hash.
func decodeEntry(content []byte, offset int) (Entry, int, error) {
	spaceIndex := bytes.IndexByte(content[offset:], objects.SpaceByte)
	if spaceIndex == -1 {
		return Entry{}, 0, err.New(pkgName, err.CodeInvalidFormat, "decode_entry",
			"failed to read mode", nil)
	}
	spaceIndex += offset

	mode, merr := ParseMode(string(content[offset:spaceIndex]))
	if merr != nil {
		return Entry{}, 0, merr
	}

	nullIndex := bytes.IndexByte(content[spaceIndex+1:], objects.NullByte)
	if nullIndex == -1 {
		return Entry{}, 0, err.New(pkgName, err.CodeInvalidFormat, "decode_entry",
			"failed to read file name", nil)
	}
	nullIndex += spaceIndex + 1

	name := string(content[spaceIndex+1 : nullIndex])

	start := nullIndex + 1
	end := start + objects.RawHashLength
	if end > len(content) {
		return Entry{}, 0, err.New(pkgName, err.CodeInvalidFormat, "decode_entry",
			"failed to read hash", nil)
	}

	var raw objects.RawHash
	copy(raw[:], content[start:end])

	entry, eerr := NewEntry(mode, name, raw.Hash())
	if eerr != nil {
		return Entry{}, 0, eerr
	}

	return entry, end, nil
}
