// Package logger provides structured logging for the SurveyAuth tools.
package logger

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	loggerKey contextKey = "surveyauth.logger"
	runIDKey  contextKey = "surveyauth.run_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns a discarding logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Discard()
}

// NewRunID returns a fresh ULID identifying one command invocation.
func NewRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the run ID from context.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// L returns the context logger enriched with the run ID, if any.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if runID := RunIDFromContext(ctx); runID != "" {
		l = l.With("run_id", runID)
	}
	return l.WithContext(ctx)
}
