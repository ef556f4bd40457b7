package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InjectTraceID attaches a fresh trace id to the context logger so every
// log line of one request or rebuild can be correlated.
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()
	logger := log.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

// WithComponent scopes the context logger to a named component.
func WithComponent(ctx context.Context, component string) context.Context {
	logger := log.Ctx(ctx).With().Str("component", component).Logger()
	return logger.WithContext(ctx)
}
