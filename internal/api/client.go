package api

import "context"

const (
	EndpointRoadmap = "/api/roadmap"
	EndpointQuiz    = "/api/quiz"
)

// Client is the roadmap/quiz backend as seen by the UI.
type Client interface {
	// Roadmap fetches the learning roadmap for skill.
	Roadmap(ctx context.Context, skill string) (*Roadmap, error)

	// Quiz fetches a single multiple-choice question about topic.
	Quiz(ctx context.Context, topic string) (*Quiz, error)
}

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a request ID that the HTTP client sends as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request ID carried by ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
