// Package command provides CLI command definitions for surveyauth.
//
// It uses urfave/cli/v2 for command parsing. The root Before hook loads
// configuration, builds the logger and metrics registry, and the After
// hook runs exit hooks such as the metrics textfile export.
//
// Commands:
//
//	surveyauth generate --id 42
//	surveyauth generate-range --id 0 --to 99 -o table
//	surveyauth verify --id 42 --token abd46de7b1
//	surveyauth config show
package command
