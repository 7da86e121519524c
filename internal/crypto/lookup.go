package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// Normalize canonicalizes an identifier for indexing: trimmed and case-folded.
// Lookups and uniqueness always operate on the normalized form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Indexer produces deterministic one-way digests of normalized identifiers.
// The digest supports equality search over encrypted columns without
// decrypting rows; it is keyed, so it cannot be precomputed off-server.
type Indexer struct {
	key []byte
}

// NewIndexer derives a dedicated HMAC key from the field-encryption key via
// HKDF-SHA256, keeping the index key domain-separated from the codec key.
func NewIndexer(encKey []byte) (*Indexer, error) {
	r := hkdf.New(sha256.New, encKey, nil, []byte("pii-lookup-v1"))
	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return &Indexer{key: key}, nil
}

// Index returns the hex HMAC-SHA256 digest of the normalized input.
// Equal normalized inputs always yield equal digests; the digest is
// fixed-width (64 hex chars) and not reversible.
func (ix *Indexer) Index(s string) string {
	mac := hmac.New(sha256.New, ix.key)
	mac.Write([]byte(Normalize(s)))
	return hex.EncodeToString(mac.Sum(nil))
}
