// Package config provides CLI configuration for surveyauth.
package config

// CLIConfig is the configuration for the surveyauth command.
type CLIConfig struct {
	Issuer  IssuerSection  `koanf:"issuer" json:"issuer" yaml:"issuer"`
	Output  OutputSection  `koanf:"output" json:"output" yaml:"output"`
	Log     LogSection     `koanf:"log" json:"log" yaml:"log"`
	Metrics MetricsSection `koanf:"metrics" json:"metrics" yaml:"metrics"`
}

// IssuerSection configures the token issuer.
type IssuerSection struct {
	PrivateKey string `koanf:"private_key" json:"private_key" yaml:"private_key"`

	// SaltLength and HashLength of 0 select the issuer defaults.
	SaltLength int `koanf:"salt_length" json:"salt_length" yaml:"salt_length" validate:"gte=0"`
	HashLength int `koanf:"hash_length" json:"hash_length" yaml:"hash_length" validate:"gte=0,lte=64"`

	// Parallelism bounds range generation workers (0 = GOMAXPROCS).
	Parallelism int `koanf:"parallelism" json:"parallelism" yaml:"parallelism" validate:"gte=0"`

	// MaxRange caps a single generate-range call.
	MaxRange int64 `koanf:"max_range" json:"max_range" yaml:"max_range" validate:"gte=0"`
}

// OutputSection configures result rendering.
type OutputSection struct {
	Format string `koanf:"format" json:"format" yaml:"format" validate:"oneof=json yaml table"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" json:"level" yaml:"level" validate:"loglevel"`
	Format string `koanf:"format" json:"format" yaml:"format" validate:"oneof=json text console"`
}

// MetricsSection configures the metrics textfile export.
type MetricsSection struct {
	// File is the Prometheus textfile written after each command. Empty disables export.
	File string `koanf:"file" json:"file" yaml:"file"`
}
