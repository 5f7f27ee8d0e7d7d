// Package logger provides structured logging setup using slog.
//
// All launcher output goes to stderr: stdout belongs to the backend's
// stdio transport and must stay untouched.
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// launchIDKey is the context key for launch correlation IDs.
type launchIDKey struct{}

// New creates a new structured JSON logger writing to stderr.
func New(level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a config level string to a slog level. Unknown values
// fall back to warn so a clean launch prints nothing.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLaunchID generates a fresh correlation ID for one launch attempt.
func NewLaunchID() string {
	return uuid.NewString()
}

// WithLaunchID returns a new context with the given launch ID.
func WithLaunchID(ctx context.Context, launchID string) context.Context {
	return context.WithValue(ctx, launchIDKey{}, launchID)
}

// LaunchIDFromContext extracts the launch ID from the context.
func LaunchIDFromContext(ctx context.Context) string {
	if v := ctx.Value(launchIDKey{}); v != nil {
		return v.(string)
	}
	return ""
}

// FromContext returns a logger with context fields (launch ID, etc.) attached.
func FromContext(ctx context.Context, base *slog.Logger) *slog.Logger {
	if launchID := LaunchIDFromContext(ctx); launchID != "" {
		return base.With("launch_id", launchID)
	}
	return base
}
