package middleware

import (
	"context"
	"fmt"
	"time"
)

// Timeout returns middleware that enforces a command deadline. The handler
// runs in its own goroutine with a context carrying the deadline; if it has
// not returned when the deadline passes, the context error is returned and
// the handler's eventual result is discarded. A panic in the handler is
// re-raised on the caller's goroutine so Recovery can see it. A non-positive
// timeout disables the deadline.
func Timeout(timeout time.Duration) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context) (any, error) {
			if timeout <= 0 {
				return next(ctx)
			}

			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			type outcome struct {
				result    any
				err       error
				recovered any
			}
			done := make(chan outcome, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						done <- outcome{recovered: v}
					}
				}()
				result, err := next(ctx)
				done <- outcome{result: result, err: err}
			}()

			select {
			case out := <-done:
				if out.recovered != nil {
					panic(out.recovered)
				}
				return out.result, out.err
			case <-ctx.Done():
				return nil, fmt.Errorf("command exceeded %s: %w", timeout, ctx.Err())
			}
		}
	}
}
