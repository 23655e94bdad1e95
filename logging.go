package fsm

import (
	"context"
	"log/slog"
	"time"
)

// Logger provides logging hooks for machine activity. Implementations
// must be safe for concurrent use; hooks are called without the machine
// lock held.
type Logger interface {
	TransitionCommitted(ctx context.Context, machine string, from, to State)
	TransitionRejected(ctx context.Context, machine string, err error)
	CallbackCompleted(ctx context.Context, machine string, from, to State, duration time.Duration, err error)
}

// DefaultLogger implements Logger using slog.
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a logger backed by slog.Default.
func NewDefaultLogger() *DefaultLogger {
	return NewSlogLogger(slog.Default())
}

// NewSlogLogger creates a logger backed by the given slog.Logger.
func NewSlogLogger(logger *slog.Logger) *DefaultLogger {
	return &DefaultLogger{
		logger: logger,
	}
}

func (l *DefaultLogger) TransitionCommitted(ctx context.Context, machine string, from, to State) {
	l.logger.InfoContext(ctx, "Transition committed",
		"machine", machine,
		"from", from.Category().Name(),
		"to", to.Category().Name(),
	)
}

func (l *DefaultLogger) TransitionRejected(ctx context.Context, machine string, err error) {
	l.logger.WarnContext(ctx, "Transition rejected",
		"machine", machine,
		"error", err,
	)
}

func (l *DefaultLogger) CallbackCompleted(
	ctx context.Context,
	machine string,
	from, to State,
	duration time.Duration,
	err error,
) {
	fields := []any{
		"machine", machine,
		"from", from.Category().Name(),
		"to", to.Category().Name(),
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		l.logger.ErrorContext(ctx, "Callback failed", append(fields, "error", err)...)
	} else {
		l.logger.DebugContext(ctx, "Callback completed", fields...)
	}
}
