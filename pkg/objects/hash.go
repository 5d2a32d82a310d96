package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// ObjectHash represents the identifier of a stored object: the SHA-1
// digest of its canonical byte encoding, rendered as a 40-character
// lowercase hex string.
// Example: "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
type ObjectHash string

// RawHash represents a SHA-1 digest as a 20-byte array, the form in
// which identifiers are embedded in tree entries.
type RawHash [20]byte

const (
	// HashLength is the length of a full hash in hex (40 characters)
	HashLength = 40
	// RawHashLength is the length of a hash in bytes (20 bytes)
	RawHashLength = 20
)

// NewObjectHash computes the identifier of a canonical byte encoding.
func NewObjectHash(data []byte) ObjectHash {
	sum := sha1.Sum(data)
	return ObjectHash(hex.EncodeToString(sum[:]))
}

// NewObjectHashFromRaw creates an ObjectHash from a 20-byte digest.
func NewObjectHashFromRaw(raw RawHash) ObjectHash {
	return ObjectHash(hex.EncodeToString(raw[:]))
}

// ParseObjectHash creates an ObjectHash from a hex string.
// Returns an error if the string is not a valid full hash.
func ParseObjectHash(s string) (ObjectHash, error) {
	hash := ObjectHash(strings.ToLower(s))
	if err := hash.Validate(); err != nil {
		return "", err
	}
	return hash, nil
}

// String returns the hash as a string
func (h ObjectHash) String() string {
	return string(h)
}

// Validate checks that the hash is 40 lowercase-insensitive hex chars.
func (h ObjectHash) Validate() error {
	if len(h) != HashLength {
		return fmt.Errorf("hash must be %d characters long, got %d", HashLength, len(h))
	}
	for _, c := range h {
		if !isHexChar(c) {
			return fmt.Errorf("hash must contain only hex characters, found %q", c)
		}
	}
	return nil
}

// IsValid returns true if this is a valid full hash
func (h ObjectHash) IsValid() bool {
	return h.Validate() == nil
}

// Short returns the first n characters of the hash. If n exceeds the
// hash length, the whole hash is returned.
func (h ObjectHash) Short(n int) string {
	if n > len(h) {
		n = len(h)
	}
	return string(h[:n])
}

// Shard splits the hash into its 2-character shard directory and the
// remaining 38-character file name.
func (h ObjectHash) Shard() (prefix, suffix string) {
	if len(h) < 2 {
		return string(h), ""
	}
	return string(h[:2]), string(h[2:])
}

// Raw returns the hash decoded to its 20-byte form.
func (h ObjectHash) Raw() (RawHash, error) {
	if err := h.Validate(); err != nil {
		return RawHash{}, err
	}
	b, err := hex.DecodeString(string(h))
	if err != nil {
		return RawHash{}, err
	}
	var raw RawHash
	copy(raw[:], b)
	return raw, nil
}

// HasPrefix returns true if the hash starts with the given prefix
func (h ObjectHash) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(h), strings.ToLower(prefix))
}

// Hash converts a RawHash to its hex form.
func (rh RawHash) Hash() ObjectHash {
	return NewObjectHashFromRaw(rh)
}

// String returns the raw hash as a hex string
func (rh RawHash) String() string {
	return hex.EncodeToString(rh[:])
}

// isHexChar returns true if the character is a valid hex character
func isHexChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsHexString checks if a string contains only hex characters.
func IsHexString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !isHexChar(c) {
			return false
		}
	}
	return true
}
