// Package service provides the token issuer for SurveyAuth.
//
// An Issuer is bound to a private key and two length parameters. It
// generates salts, derives tokens from (identity, salt) with a keyed
// SHA-256 construction, and verifies presented tokens by recomputing
// them. Nothing is stored: a token is valid iff it could have been
// produced by someone holding the private key.
//
// Issuers are immutable after construction and safe for concurrent use.
// The package performs no logging and no I/O beyond reading the secure
// random source; callers decide how to surface errors.
package service
