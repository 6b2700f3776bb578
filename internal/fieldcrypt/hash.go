package fieldcrypt

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLen is the hex length of a Fingerprint (SHA-256).
const FingerprintLen = 64

// Fingerprint returns a deterministic one-way hex digest of id. Encrypted
// columns cannot be compared across rows (fresh nonce per write), so this
// digest is what unique indexes and equality lookups run against. No key is
// involved; the same input always maps to the same digest.
func Fingerprint(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}
