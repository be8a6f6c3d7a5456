// Package config provides CLI configuration for surveyauth.
package config

import "github.com/yndnr/surveyauth-go/internal/telemetry/logger"

// Sanitize returns a copy of the config with the private key masked.
func Sanitize(cfg *CLIConfig) *CLIConfig {
	sanitized := *cfg
	if sanitized.Issuer.PrivateKey != "" {
		sanitized.Issuer.PrivateKey = logger.MaskSecret(sanitized.Issuer.PrivateKey)
	}
	return &sanitized
}
