// Package codec decodes canonical object bytes into typed objects.
//
// Decode performs no I/O; it operates on an in-memory buffer, which
// keeps it independently testable against literal byte slices. The
// store composes it with decompression on the read path.
package codec

import (
	"github.com/goodgit/goodgit/pkg/common/err"
	"github.com/goodgit/goodgit/pkg/objects"
	"github.com/goodgit/goodgit/pkg/objects/blob"
	"github.com/goodgit/goodgit/pkg/objects/commit"
	"github.com/goodgit/goodgit/pkg/objects/tree"
)

const pkgName = "codec"

// Decode parses a canonical byte stream into a typed object.
//
// The header is validated first (format, then exact content length),
// then dispatch happens over the closed kind set. Any other type token
// fails with "unknown object type".
func Decode(data []byte) (objects.Object, error) {
	typ, content, e := objects.SerializedObject(data).Split()
	if e != nil {
		return nil, e
	}

	switch objects.ObjectType(typ) {
	case objects.BlobType:
		return blob.FromContent(content), nil
	case objects.TreeType:
		return tree.FromContent(content)
	case objects.CommitType:
		return commit.FromContent(content)
	default:
		return nil, err.New(pkgName, err.CodeInvalidFormat, "decode",
			"unknown object type", nil)
	}
}
