package fieldcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Codec encrypts and decrypts single text fields with AES-256-GCM.
// The key is fixed at construction; two stores can hold independent codecs.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec builds a codec from a 32-byte key.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("fieldcrypt: key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Codec{aead: aead}, nil
}

// Encrypt seals plain into a base64 token (nonce prepended to the
// ciphertext). A fresh nonce is drawn per call, so equal plaintexts produce
// different tokens; never compare ciphertexts to compare plaintexts.
func (c *Codec) Encrypt(plain string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt recovers the plaintext of a stored token. When the value is not a
// valid token for this key (legacy plaintext row, or data written under
// another key) it is returned unchanged with ok=false so callers can tell a
// real decrypt from the passthrough. Rows written by Encrypt with the same
// key always come back ok=true.
func (c *Codec) Decrypt(stored string) (plain string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil || len(raw) < c.aead.NonceSize() {
		return stored, false
	}
	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	out, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return stored, false
	}
	return string(out), true
}
