// Package config provides CLI configuration for surveyauth.
package config

import "github.com/yndnr/surveyauth-go/internal/core/service"

// Default configuration values.
const (
	DefaultOutputFormat = "json"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "json"
)

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Issuer: IssuerSection{
			SaltLength: service.DefaultSaltLength,
			HashLength: service.DefaultHashLength,
			MaxRange:   service.DefaultMaxRange,
		},
		Output: OutputSection{
			Format: DefaultOutputFormat,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// defaultValues returns Default() keyed by dotted path.
func defaultValues() map[string]any {
	d := Default()
	return map[string]any{
		"issuer.salt_length": d.Issuer.SaltLength,
		"issuer.hash_length": d.Issuer.HashLength,
		"issuer.parallelism": d.Issuer.Parallelism,
		"issuer.max_range":   d.Issuer.MaxRange,
		"output.format":      d.Output.Format,
		"log.level":          d.Log.Level,
		"log.format":         d.Log.Format,
		"metrics.file":       d.Metrics.File,
	}
}
