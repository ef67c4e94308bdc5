package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// EmailRef is a stable, non-reversible reference to an email address for
// logs. Case and surrounding space are ignored; only the first 12 hex
// characters of the hash are kept.
func EmailRef(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:12]
}
