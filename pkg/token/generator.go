// Package token provides token generation and hashing utilities.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
)

// ErrInvalidLength is returned when a non-positive length is requested.
var ErrInvalidLength = errors.New("token: length must be positive")

// GenerateHex returns n lowercase hexadecimal characters drawn from
// crypto/rand.
func GenerateHex(n int) (string, error) {
	return GenerateHexFrom(rand.Reader, n)
}

// GenerateHexFrom returns n lowercase hexadecimal characters drawn from r.
//
// ceil(n/2) bytes are read; for odd n the trailing nibble is dropped.
func GenerateHexFrom(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}
	bytes, err := GenerateBytesFrom(r, (n+1)/2)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:n], nil
}

// GenerateBytes generates random bytes.
func GenerateBytes(length int) ([]byte, error) {
	return GenerateBytesFrom(rand.Reader, length)
}

// GenerateBytesFrom reads exactly length bytes from r.
func GenerateBytesFrom(r io.Reader, length int) ([]byte, error) {
	bytes := make([]byte, length)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return bytes, nil
}
