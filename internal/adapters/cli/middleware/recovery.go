package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// ErrInternal is returned in place of a recovered panic. The panic value and
// stack trace are logged but never rendered.
var ErrInternal = errors.New("internal error")

// Recovery returns middleware that turns a panic in a downstream handler
// into ErrInternal and logs the stack trace.
func Recovery(logger *slog.Logger, command string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context) (result any, err error) {
			defer func() {
				if v := recover(); v != nil {
					logger.ErrorContext(ctx, "panic recovered",
						slog.String("panic", fmt.Sprint(v)),
						slog.String("stack", string(debug.Stack())),
						slog.String("command", command),
					)
					result, err = nil, ErrInternal
				}
			}()

			return next(ctx)
		}
	}
}
