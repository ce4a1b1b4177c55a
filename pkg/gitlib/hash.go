// Package gitlib wraps the libgit2 bindings with the narrow surface the
// history analyzer needs: commit resolution, revision walking, tree diffs,
// and in-memory blob access.
package gitlib

import (
	"encoding/hex"

	git2go "github.com/libgit2/git2go/v34"
)

// HashSize is the size of a SHA-1 object hash in bytes.
const HashSize = 20

// Hash represents a git object hash (SHA-1).
type Hash [HashSize]byte

// NewHash creates a Hash from a hex string. Malformed input yields the zero
// hash; callers that need validation resolve through the repository instead.
func NewHash(hexStr string) Hash {
	var hash Hash

	decoded, err := hex.DecodeString(hexStr)
	if err != nil {
		return hash
	}

	copy(hash[:], decoded)

	return hash
}

// HashFromOid converts a libgit2 Oid to a Hash.
func HashFromOid(oid *git2go.Oid) Hash {
	var hash Hash
	copy(hash[:], oid[:])

	return hash
}

// String returns the hex representation of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// ToOid converts the Hash back to a libgit2 Oid.
func (h Hash) ToOid() *git2go.Oid {
	oid := new(git2go.Oid)
	copy(oid[:], h[:])

	return oid
}
