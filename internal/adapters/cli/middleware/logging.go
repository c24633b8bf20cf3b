package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/logging"
)

// Logging returns middleware that logs command start and completion. It
// stores a child logger enriched with the command and run ID via
// logging.WithLogger for downstream use.
func Logging(logger *slog.Logger, command string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context) (any, error) {
			start := time.Now()

			ctx = logging.WithLogger(ctx, logger)
			ctx = logging.Enrich(ctx,
				slog.String("command", command),
				slog.String("run_id", RunIDFromContext(ctx)),
			)
			child := logging.FromContext(ctx)

			child.DebugContext(ctx, "command started")

			result, err := next(ctx)

			attrs := []any{
				slog.Int("exit_code", dto.ExitCode(err)),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				child.WarnContext(ctx, "command failed",
					append(attrs, slog.String("error.kind", dto.ErrorKind(err)), slog.Any("error", err))...)
				return result, err
			}
			child.InfoContext(ctx, "command completed", attrs...)
			return result, nil
		}
	}
}
