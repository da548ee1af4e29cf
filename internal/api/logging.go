package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// LoggingClient is a decorator that records every backend call.
type LoggingClient struct {
	inner  Client
	logger *slog.Logger
}

var _ Client = (*LoggingClient)(nil)

// WithLogging wraps a Client with structured request logging.
func WithLogging(c Client, logger *slog.Logger) Client {
	if logger == nil {
		return c
	}
	return &LoggingClient{inner: c, logger: logger}
}

func (l *LoggingClient) Roadmap(ctx context.Context, skill string) (*Roadmap, error) {
	ctx, done := l.begin(ctx, EndpointRoadmap, "skill", skill)
	rm, err := l.inner.Roadmap(ctx, skill)
	if rm != nil {
		done(err, "modules", len(rm.Modules))
	} else {
		done(err)
	}
	return rm, err
}

func (l *LoggingClient) Quiz(ctx context.Context, topic string) (*Quiz, error) {
	ctx, done := l.begin(ctx, EndpointQuiz, "topic", topic)
	q, err := l.inner.Quiz(ctx, topic)
	if q != nil {
		done(err, "options", len(q.Options))
	} else {
		done(err)
	}
	return q, err
}

func (l *LoggingClient) begin(ctx context.Context, endpoint, argKey, argVal string) (context.Context, func(error, ...any)) {
	id := RequestIDFrom(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = WithRequestID(ctx, id)
	}
	start := time.Now()

	return ctx, func(err error, extra ...any) {
		attrs := []any{
			"endpoint", endpoint,
			argKey, argVal,
			"request_id", id,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		attrs = append(attrs, extra...)

		switch {
		case err == nil:
			l.logger.Info("api request", attrs...)
		case ctx.Err() != nil:
			l.logger.Debug("api request canceled", append(attrs, "error", err)...)
		default:
			l.logger.Warn("api request failed", append(attrs, "error", err)...)
		}
	}
}
