package middleware

import (
	"context"

	"github.com/google/uuid"
)

// runIDKey is the context key for the invocation's run ID.
type runIDKey struct{}

// WithRunID returns a new context with the given run ID stored in it.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext extracts the run ID from the context.
// Returns an empty string if no run ID is stored.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RunID returns middleware that tags each invocation with a UUID v4. An ID
// already present in the context is reused.
func RunID() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context) (any, error) {
			if RunIDFromContext(ctx) == "" {
				ctx = WithRunID(ctx, uuid.NewString())
			}
			return next(ctx)
		}
	}
}
