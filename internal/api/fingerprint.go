package api

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// KeyFingerprint returns a short, stable identifier for an API key that is
// safe to log.
func KeyFingerprint(key string) string {
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}
