// Package commit implements the commit object kind.
//
// Commit content is UTF-8 text: a block of "key value" header lines,
// one empty line, then the free-form message. Recognized headers are
// tree, parent, author, committer, and encoding; unrecognized keys are
// ignored so that newer writers remain readable.
package commit

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goodgit/goodgit/pkg/common/err"
	"github.com/goodgit/goodgit/pkg/objects"
)

const pkgName = "commit"

// Commit is a snapshot in the repository history.
//
// Parent is a single identifier; the empty string denotes a root
// commit. Merge commits are out of scope: if several parent lines are
// present, the last one wins.
type Commit struct {
	Tree      string
	Parent    string
	Author    string
	Committer string
	Encoding  string
	Message   string

	hash *objects.ObjectHash
}

// FromContent parses commit content bytes (without header).
func FromContent(content []byte) (*Commit, error) {
	if !utf8.Valid(content) {
		return nil, err.New(pkgName, err.CodeInvalidFormat, "parse",
			"commit content is not valid UTF-8", nil)
	}

	lines := strings.Split(string(content), "\n")
	c := &Commit{}

	for i, line := range lines {
		if line == "" {
			// End of the header block; everything after is the message,
			// embedded empty lines included.
			c.Message = strings.Join(lines[i+1:], "\n")
			break
		}

		key, value, found := strings.Cut(line, " ")
		if !found {
			return nil, err.New(pkgName, err.CodeInvalidFormat, "parse",
				"invalid line", nil)
		}

		switch key {
		case "tree":
			c.Tree = value
		case "parent":
			c.Parent = value
		case "author":
			c.Author = value
		case "committer":
			c.Committer = value
		case "encoding":
			c.Encoding = value
		default:
			// Unknown header keys are skipped, not rejected.
		}
	}

	return c, nil
}

// Type returns the object type
func (c *Commit) Type() objects.ObjectType {
	return objects.CommitType
}

// Content serializes the commit without the canonical header. Only
// present (non-empty) header fields are emitted.
func (c *Commit) Content() ([]byte, error) {
	var buf strings.Builder

	writeHeader := func(key, value string) {
		if value != "" {
			buf.WriteString(key)
			buf.WriteString(" ")
			buf.WriteString(value)
			buf.WriteString("\n")
		}
	}

	writeHeader("tree", c.Tree)
	writeHeader("parent", c.Parent)
	writeHeader("author", c.Author)
	writeHeader("committer", c.Committer)
	writeHeader("encoding", c.Encoding)

	buf.WriteString("\n")
	buf.WriteString(c.Message)

	return []byte(buf.String()), nil
}

// Hash returns the commit's identifier, cached after first computation.
func (c *Commit) Hash() (objects.ObjectHash, error) {
	if c.hash != nil {
		return *c.hash, nil
	}

	content, e := c.Content()
	if e != nil {
		return "", e
	}

	hash := objects.NewSerializedObject(objects.CommitType, content).Hash()
	c.hash = &hash
	return hash, nil
}

// Serialize writes the commit's canonical encoding to w.
func (c *Commit) Serialize(w io.Writer) error {
	content, e := c.Content()
	if e != nil {
		return e
	}
	if _, e := w.Write(objects.NewSerializedObject(objects.CommitType, content)); e != nil {
		return fmt.Errorf("failed to write commit: %w", e)
	}
	return nil
}

// IsRoot returns true if the commit has no parent.
func (c *Commit) IsRoot() bool {
	return c.Parent == ""
}

// Summary returns the first line of the commit message.
func (c *Commit) Summary() string {
	line, _, _ := strings.Cut(c.Message, "\n")
	return line
}

// String returns a human-readable representation
func (c *Commit) String() string {
	return fmt.Sprintf("Commit{tree: %s, parent: %s, message: %.50s}",
		c.Tree, c.Parent, c.Message)
}
