package fieldcrypt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// LoadKey resolves the field-encryption key, in priority order:
// a base64 value passed from the environment, then the key file, then a
// freshly generated key persisted to that file for the next run.
//
// The key file must never be removed or regenerated once rows exist:
// everything encrypted under the old key would surface as garbage (Decrypt
// falls back to the stored token instead of failing).
func LoadKey(envValue, keyFile string) ([]byte, error) {
	if envValue != "" {
		key, err := base64.StdEncoding.DecodeString(envValue)
		if err != nil {
			return nil, fmt.Errorf("fieldcrypt: key from env is not base64: %w", err)
		}
		if len(key) != KeySize {
			return nil, fmt.Errorf("fieldcrypt: key from env must be %d bytes, got %d", KeySize, len(key))
		}
		return key, nil
	}

	key, err := os.ReadFile(keyFile)
	if err == nil {
		if len(key) != KeySize {
			return nil, fmt.Errorf("fieldcrypt: key file %s must hold %d bytes, got %d", keyFile, KeySize, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	key = make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	if err := os.WriteFile(keyFile, key, 0o600); err != nil {
		return nil, fmt.Errorf("fieldcrypt: persist generated key: %w", err)
	}
	return key, nil
}
