// Package token provides the low-level primitives used to build and
// check SurveyAuth tokens.
//
// Primitives:
//
//   - GenerateHex: lowercase hex strings of any length from crypto/rand
//   - Hash: SHA-256 digests, lowercase hex encoded (64 characters)
//   - Equal: constant-time string comparison
//
// The package is dependency-free and holds no state. Higher layers
// decide what gets hashed and how digests are shortened.
package token
