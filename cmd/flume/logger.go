package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/agentstation/flume"
)

// slogLogger adapts log/slog to the flume.Logger interface.
type slogLogger struct {
	inner *slog.Logger
}

func newLogger(verbose bool) flume.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &slogLogger{inner: slog.New(handler)}
}

func (l *slogLogger) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	l.inner.DebugContext(ctx, msg, keysAndValues...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, keysAndValues ...any) {
	l.inner.InfoContext(ctx, msg, keysAndValues...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, keysAndValues ...any) {
	l.inner.ErrorContext(ctx, msg, keysAndValues...)
}
