package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Domain-specific hash types
type (
	InputHash   Hash
	CatalogHash Hash
	CodeVersion Hash
)

// Constructors
func NewInputHash(data []byte) InputHash     { return InputHash(NewHash(data)) }
func NewCatalogHash(data []byte) CatalogHash { return CatalogHash(NewHash(data)) }
func NewCodeVersion(data []byte) CodeVersion { return CodeVersion(NewHash(data)) }

// String conversions
func (h InputHash) String() string   { return Hash(h).String() }
func (h CatalogHash) String() string { return Hash(h).String() }
func (h CodeVersion) String() string { return Hash(h).String() }

// ComputeInputHash fingerprints a raw input snapshot so a stored report can be
// traced back to the exact input it was generated from.
func ComputeInputHash(snapshot interface{}) InputHash {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return NewInputHash([]byte(fmt.Sprintf("%v", snapshot)))
	}
	return NewInputHash(data)
}

// ComputeCatalogHash fingerprints the narrative catalog by topic keys and
// variant counts, giving a stable version marker for the phrasing library.
func ComputeCatalogHash(variantCounts map[string]int) CatalogHash {
	keys := make([]string, 0, len(variantCounts))
	for k := range variantCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data strings.Builder
	for _, key := range keys {
		data.WriteString(key)
		data.WriteString(fmt.Sprintf(":%d|", variantCounts[key]))
	}

	return NewCatalogHash([]byte(data.String()))
}
