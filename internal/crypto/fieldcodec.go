package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/focusflow/backend/internal/errs"
)

// KeyLen is the required length of the field-encryption key.
const KeyLen = chacha20poly1305.KeySize

// Codec performs authenticated encryption of PII field values for at-rest
// storage. Ciphertext is nonce||sealed; a fresh nonce is drawn per call, so
// equal plaintexts never produce equal ciphertext.
type Codec struct {
	key []byte
}

// NewCodec constructs a Codec from a 32-byte key.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("field codec: key must be %d bytes, got %d", KeyLen, len(key))
	}
	return &Codec{key: append([]byte(nil), key...)}, nil
}

// Encrypt seals plaintext with XChaCha20-Poly1305 under a random nonce.
func (c *Codec) Encrypt(plaintext string) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, err
	}
	nonce, err := RandBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, []byte(plaintext), nil)...)
	return out, nil
}

// Decrypt opens a blob produced by Encrypt. Truncated, malformed or tampered
// input fails with errs.ErrDecryption.
func (c *Codec) Decrypt(blob []byte) (string, error) {
	if len(blob) < chacha20poly1305.NonceSizeX {
		return "", fmt.Errorf("%w: blob too short", errs.ErrDecryption)
	}
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", err
	}
	nonce := blob[:chacha20poly1305.NonceSizeX]
	ct := blob[chacha20poly1305.NonceSizeX:]
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDecryption, err)
	}
	return string(pt), nil
}
