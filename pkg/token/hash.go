// Package token provides token generation and hashing utilities.
package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HexDigestLength is the length of a hex encoded SHA-256 digest.
const HexDigestLength = sha256.Size * 2

// Hash computes the SHA-256 hash of s, hex encoded.
func Hash(s string) string {
	return HashBytes([]byte(s))
}

// HashBytes computes the SHA-256 hash of bytes, hex encoded.
func HashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Equal reports whether a and b are identical.
//
// Uses constant-time comparison to prevent timing attacks. Strings of
// different length compare unequal immediately.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
