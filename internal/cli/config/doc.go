// Package config provides CLI configuration for surveyauth.
//
//   - spec.go: CLIConfig struct
//   - default.go: default values
//   - loader.go: layered loading (file, env, flags)
//   - verify.go: validation
//   - sanitize.go: masking for display and logs
//
// The private key may come from a file, the SURVEYAUTH_ISSUER__PRIVATE_KEY
// environment variable or the --key flag; it is never written back.
package config
