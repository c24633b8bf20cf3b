package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/telemetry"
)

// OpenTelemetry returns middleware that creates a span for each command and
// records command metrics.
//
// If metrics is nil, metric recording is skipped.
func OpenTelemetry(metrics *telemetry.Metrics, command string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context) (any, error) {
			start := time.Now()

			tracer := otel.GetTracerProvider().Tracer("cli")
			ctx, span := tracer.Start(ctx, "realm "+command,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					telemetry.AttrCommand.String(command),
					attribute.String("realm.run_id", RunIDFromContext(ctx)),
				),
			)
			defer span.End()

			result, err := next(ctx)

			span.SetAttributes(attribute.Int("realm.exit_code", dto.ExitCode(err)))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, dto.ErrorKind(err))
			}

			recordCommandMetrics(ctx, metrics, command, start, err)
			return result, err
		}
	}
}

// recordCommandMetrics records command duration and count metrics.
// Safe to call with nil metrics.
func recordCommandMetrics(ctx context.Context, metrics *telemetry.Metrics, command string, start time.Time, err error) {
	if metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrCommand.String(command),
		telemetry.AttrResult.String(result),
		telemetry.AttrKind.String(dto.ErrorKind(err)),
	)

	metrics.CommandDuration.Record(ctx, duration, attrs)
	metrics.CommandTotal.Add(ctx, 1, attrs)
}
