// Package config provides CLI configuration for surveyauth.
package config

import (
	"github.com/yndnr/surveyauth-go/internal/infra/confloader"
)

// Load builds the effective configuration.
//
// Sources, lowest priority first: defaults, the YAML file at path (if
// any), SURVEYAUTH_* environment variables, then overrides (flags),
// keyed by dotted path such as "issuer.salt_length".
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithDefaults(defaultValues()),
		confloader.WithOverrides(overrides),
	)

	cfg := &CLIConfig{}
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}
	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
