// Package logger provides structured logging for the SurveyAuth tools.
//
// It wraps log/slog and adds:
//
//   - JSON and text output formats
//   - Log level filtering, fixed per logger instance
//   - Redaction of attributes whose keys look like secrets or tokens
//   - Context propagation of the logger and a per-run ULID
//
// The token core never logs; this package serves the command-line
// adapter, which writes logs to stderr so stdout stays machine-readable.
package logger
