// Package output provides output formatting for the surveyauth CLI.
//
//   - formatter.go: Formatter interface and factory
//   - json.go: indented JSON
//   - yaml.go: YAML via gopkg.in/yaml.v3
//   - table.go: aligned columns for terminals
//
// Results go to stdout; diagnostics and logs go to stderr.
package output
