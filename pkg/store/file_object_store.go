package store

import (
	"os"
	"path/filepath"

	"github.com/goodgit/goodgit/pkg/common/err"
	"github.com/goodgit/goodgit/pkg/common/fileops"
	"github.com/goodgit/goodgit/pkg/common/logger"
	"github.com/goodgit/goodgit/pkg/objects"
	"github.com/goodgit/goodgit/pkg/objects/blob"
	"github.com/goodgit/goodgit/pkg/repository/gitpath"
)

const pkgName = "store"

// FileObjectStore stores objects on the filesystem in a two-level
// sharded layout, each object zlib-compressed at the default level.
//
// Directory structure:
//
//	objects/
//	├── ab/                      first 2 hash characters
//	│   └── cdef123...           remaining 38 characters
//	└── cd/
//	    └── ef456789...
//
// Example for hash "abcdef1234567890abcdef1234567890abcdef12":
// objects/ab/cdef1234567890abcdef1234567890abcdef12
type FileObjectStore struct {
	objectsPath string
}

// NewFileObjectStore creates a store rooted at the given objects
// directory. The directory is created on first Put if absent.
func NewFileObjectStore(objectsPath string) *FileObjectStore {
	return &FileObjectStore{objectsPath: objectsPath}
}

// ObjectsPath returns the store's root directory
func (fos *FileObjectStore) ObjectsPath() string {
	return fos.objectsPath
}

// Put compresses canonical bytes and writes them to the sharded path,
// creating the shard directory if needed. An object already present is
// left untouched.
func (fos *FileObjectStore) Put(hash objects.ObjectHash, data objects.SerializedObject) error {
	filePath, e := fos.resolveObjectPath(hash)
	if e != nil {
		return e
	}

	if exists, _ := fileops.Exists(filePath); exists {
		return nil
	}

	compressed, e := data.Compress()
	if e != nil {
		return err.WrapWithCode(e, pkgName, err.CodeIO, "put")
	}

	if e := fileops.EnsureDir(filepath.Dir(filePath)); e != nil {
		return err.WrapWithCode(e, pkgName, err.CodeIO, "put")
	}

	if e := os.WriteFile(filePath, compressed, 0444); e != nil {
		return err.WrapWithCode(e, pkgName, err.CodeIO, "put")
	}

	logger.Debug("stored object", "hash", hash.String(), "bytes", len(data))
	return nil
}

// Get reads the compressed stream for an identifier and inflates it
// fully into memory.
func (fos *FileObjectStore) Get(hash objects.ObjectHash) (objects.SerializedObject, error) {
	filePath, e := fos.resolveObjectPath(hash)
	if e != nil {
		return nil, e
	}

	compressed, readErr := os.ReadFile(filePath)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return nil, err.New(pkgName, err.CodeNotFound, "get", "object not found", nil)
		}
		return nil, err.WrapWithCode(readErr, pkgName, err.CodeIO, "get")
	}

	data, e := objects.Decompress(compressed)
	if e != nil {
		return nil, err.WrapWithCode(e, pkgName, err.CodeIO, "get")
	}

	return data, nil
}

// ListShard enumerates the file names under a 2-character shard
// directory. A missing shard produces an empty slice, not an error.
func (fos *FileObjectStore) ListShard(prefix string) ([]string, error) {
	entries, e := os.ReadDir(filepath.Join(fos.objectsPath, prefix))
	if e != nil {
		if os.IsNotExist(e) {
			return nil, nil
		}
		return nil, err.WrapWithCode(e, pkgName, err.CodeIO, "list_shard")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Has checks if an object exists in the store.
func (fos *FileObjectStore) Has(hash objects.ObjectHash) (bool, error) {
	filePath, e := fos.resolveObjectPath(hash)
	if e != nil {
		return false, e
	}
	return fileops.Exists(filePath)
}

// WriteBlob stores raw bytes as a blob object and returns its
// identifier. This is the only write path of the store.
func (fos *FileObjectStore) WriteBlob(data []byte) (objects.ObjectHash, error) {
	b := blob.NewBlob(data)
	serialized := b.Serialized()
	hash := serialized.Hash()

	if e := fos.Put(hash, serialized); e != nil {
		return "", e
	}
	return hash, nil
}

// resolveObjectPath maps an identifier to its sharded file path.
func (fos *FileObjectStore) resolveObjectPath(hash objects.ObjectHash) (string, error) {
	if e := hash.Validate(); e != nil {
		return "", err.New(pkgName, err.CodeInvalidInput, "resolve_path", "invalid hash", e)
	}

	objPath, e := gitpath.NewObjectPath(hash.String())
	if e != nil {
		return "", err.New(pkgName, err.CodeInvalidInput, "resolve_path", "invalid hash", e)
	}

	return filepath.Join(fos.objectsPath, objPath.Prefix(), objPath.Suffix()), nil
}
