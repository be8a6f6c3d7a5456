// Package config provides CLI configuration for surveyauth.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yndnr/surveyauth-go/internal/telemetry/logger"
)

// validate is shared; validator.Validate caches struct metadata.
var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their koanf key so messages match the config file.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	//nolint:errcheck // registration only fails for an empty tag
	v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLevel(fl.Field().String())
		return err == nil
	})

	return v
})

// Verify validates the configuration.
//
// The private key is not required here: commands that need it get
// the issuer's own error when it is missing.
func Verify(cfg *CLIConfig) error {
	err := validate().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// describe renders a field error as "issuer.hash_length must be at most 64".
func describe(fe validator.FieldError) string {
	_, key, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "loglevel":
		return fmt.Sprintf("%s must be debug, info, warn or error, got %q", key, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}
