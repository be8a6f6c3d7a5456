// Package main provides the entry point for surveyauth.
//
// surveyauth issues and verifies stateless survey tokens. A token binds a
// non-negative integer identity to a salted keyed hash; any holder of the
// private key can verify it without stored state.
//
// Usage:
//
//	surveyauth --key <key> generate --id 42
//	surveyauth --key <key> generate-range --id 0 --to 99 -o table
//	surveyauth --key <key> verify --id 42 --token abd46de7b1
//	surveyauth --config surveyauth.yaml config show
//
// Every global flag can also be set in the YAML file or through
// SURVEYAUTH_* environment variables (SURVEYAUTH_ISSUER__PRIVATE_KEY).
package main
