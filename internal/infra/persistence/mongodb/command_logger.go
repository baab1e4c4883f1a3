package mongodb

import (
	"context"
	"log/slog"
	"time"

	"canteen/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

type commandLogger struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandLogger(baseLogger *slog.Logger, cfg *config.Config) *commandLogger {
	return &commandLogger{
		logger:        baseLogger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}
}

func newCommandMonitor(baseLogger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := newCommandLogger(baseLogger, cfg)

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.attrs(&evt.CommandFinishedEvent)

	switch {
	case evt.Duration >= l.slowThreshold:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Mongo slow command",
			append(attrs, slog.Duration("threshold", l.slowThreshold))...)
	case l.debug:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Mongo command", attrs...)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	attrs := append(l.attrs(&evt.CommandFinishedEvent), slog.String("failure", evt.Failure))
	l.logger.LogAttrs(ctx, slog.LevelError, "Mongo command failed", attrs...)
}

func (l *commandLogger) attrs(evt *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Int64("requestId", evt.RequestID),
		slog.Duration("elapsed", evt.Duration),
	}
}

func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if logger == nil {
				return
			}

			switch evt.Type {
			case event.GetFailed, event.PoolCleared:
				logger.LogAttrs(context.Background(), slog.LevelWarn, "Mongo pool event",
					slog.String("type", evt.Type),
					slog.String("address", evt.Address),
					slog.String("reason", evt.Reason),
				)
			case event.ConnectionCreated, event.ConnectionClosed:
				logger.LogAttrs(context.Background(), slog.LevelDebug, "Mongo pool event",
					slog.String("type", evt.Type),
					slog.String("address", evt.Address),
					slog.Uint64("connectionId", evt.ConnectionID),
				)
			}
		},
	}
}
