// Package confloader provides configuration loading mechanism.
//
// This package implements a layered configuration loader on top of
// koanf.
//
// Sources:
//
//   - YAML files
//   - Environment variables with a prefix; "__" separates sections
//   - In-memory maps (command-line flags, tests)
//
// Priority (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration files
//  4. Default values
package confloader
