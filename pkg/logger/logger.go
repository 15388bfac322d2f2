// Package logger provides a structured, levelled logger built on log/slog.
//
// Store and API code logs through the package-level helpers; the dev backend
// attaches a per-request logger to the context so every line carries the
// request ID:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("transaction created", "code", tx.Code)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/reynaldiarya/flashpos/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}

	switch config.AppEnv() {
	case "production", "prod":
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stderr, opts) // structured JSON for log shippers
	default:
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stderr, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

type ctxKey struct{}

// WithCtx returns the *slog.Logger stored in ctx, or the base logger when
// none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a pre-tagged *slog.Logger into ctx. Called by the dev
// backend's logging middleware; not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
