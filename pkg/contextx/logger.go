package contextx

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKeyLogger struct{}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger{}, logger)
}

func LoggerFromContext(ctx context.Context) (*slog.Logger, error) {
	logger, ok := ctx.Value(contextKeyLogger{}).(*slog.Logger)
	if !ok {
		return nil, fmt.Errorf("logger: %w", ErrNoValue)
	}

	return logger, nil
}

// LoggerFromContextOr returns the logger stored in ctx or fallback when the
// context carries none. A nil fallback resolves to slog.Default().
func LoggerFromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, err := LoggerFromContext(ctx); err == nil {
		return logger
	}

	if fallback != nil {
		return fallback
	}

	return slog.Default()
}

func LoggerFromContextOrDefault(ctx context.Context) *slog.Logger {
	return LoggerFromContextOr(ctx, nil)
}
