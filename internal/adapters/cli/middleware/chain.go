// Package middleware wraps CLI command handlers with cross-cutting
// behavior: panic recovery, run IDs, logging, telemetry and deadlines.
package middleware

import "context"

// Handler runs one command and returns the document to render.
type Handler func(ctx context.Context) (any, error)

// Middleware decorates a Handler.
type Middleware func(Handler) Handler

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware:
//
//	Chain(Recovery, RunID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RunID(Logging(handler)))
func Chain(middlewares ...Middleware) Middleware {
	return func(handler Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
