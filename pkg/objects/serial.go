package objects

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/zlib"

	"github.com/goodgit/goodgit/pkg/common/err"
)

const pkgName = "objects"

// SerializedObject is an object in its canonical byte encoding:
//
//	"<type> <content-byte-length>\0<content-bytes>"
//
// The framing is identical for all three kinds; only the content bytes
// differ. Identifiers are computed over exactly these bytes.
type SerializedObject []byte

// CreateHeader builds the canonical header for a type and content size.
func CreateHeader(objType ObjectType, size int) []byte {
	return []byte(fmt.Sprintf("%s %d%c", objType, size, NullByte))
}

// NewSerializedObject frames content in the canonical encoding.
func NewSerializedObject(objType ObjectType, content []byte) SerializedObject {
	header := CreateHeader(objType, len(content))
	full := make([]byte, 0, len(header)+len(content))
	full = append(full, header...)
	full = append(full, content...)
	return SerializedObject(full)
}

// Bytes returns the underlying byte slice
func (so SerializedObject) Bytes() []byte {
	return []byte(so)
}

// Hash returns the identifier of the serialized object.
func (so SerializedObject) Hash() ObjectHash {
	return NewObjectHash(so)
}

// ParseHeader parses the canonical header.
//
// Returns the raw type token, declared content size, and the offset at
// which content begins. The type token is not validated here so that
// the caller can distinguish "unknown object type" from a malformed
// header.
func (so SerializedObject) ParseHeader() (typ string, size int, contentStart int, e error) {
	data := []byte(so)

	spaceIndex := bytes.IndexByte(data, SpaceByte)
	nullIndex := bytes.IndexByte(data, NullByte)
	if spaceIndex == -1 || nullIndex == -1 || spaceIndex > nullIndex {
		return "", 0, 0, err.New(pkgName, err.CodeInvalidFormat, "parse_header",
			"incorrect header format", nil)
	}

	typ = string(data[:spaceIndex])

	size, parseErr := strconv.Atoi(string(data[spaceIndex+1 : nullIndex]))
	if parseErr != nil || size < 0 {
		return "", 0, 0, err.New(pkgName, err.CodeInvalidFormat, "parse_header",
			"invalid size in header", parseErr)
	}

	return typ, size, nullIndex + 1, nil
}

// Split parses the header and returns the type token plus the content
// bytes, verifying that the remaining bytes match the declared length
// exactly. Truncated and padded streams are rejected.
func (so SerializedObject) Split() (typ string, content []byte, e error) {
	typ, size, contentStart, e := so.ParseHeader()
	if e != nil {
		return "", nil, e
	}

	content = []byte(so)[contentStart:]
	if len(content) != size {
		return "", nil, err.New(pkgName, err.CodeInvalidFormat, "split",
			"incorrect header length", nil)
	}

	return typ, content, nil
}

// Compress deflates the serialized object with zlib at the default
// compression level, the on-disk representation in the object store.
func (so SerializedObject) Compress() ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)

	if _, e := w.Write(so); e != nil {
		w.Close()
		return nil, fmt.Errorf("failed to compress object: %w", e)
	}
	if e := w.Close(); e != nil {
		return nil, fmt.Errorf("failed to finalize compression: %w", e)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream fully into memory and returns the
// canonical bytes it contains.
func Decompress(compressed []byte) (SerializedObject, error) {
	r, e := zlib.NewReader(bytes.NewReader(compressed))
	if e != nil {
		return nil, fmt.Errorf("failed to open compressed object: %w", e)
	}
	defer r.Close()

	data, e := io.ReadAll(r)
	if e != nil {
		return nil, fmt.Errorf("failed to decompress object: %w", e)
	}

	return SerializedObject(data), nil
}
