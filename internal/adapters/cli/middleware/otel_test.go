package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/middleware"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/telemetry"
)

// OTEL tests are NOT parallel because they modify the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	return exporter
}

func spanAttrs(span tracetest.SpanStub) map[string]any {
	attrs := make(map[string]any)
	for _, a := range span.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_CreatesSpan(t *testing.T) {
	exporter := setupTracer(t)

	ctx := middleware.WithRunID(t.Context(), "run-7")
	_, err := middleware.OpenTelemetry(nil, "titled")(ok(nil))(ctx)
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "realm titled", spans[0].Name)

	attrs := spanAttrs(spans[0])
	assert.Equal(t, "titled", attrs["realm.command"])
	assert.Equal(t, "run-7", attrs["realm.run_id"])
	assert.Equal(t, int64(0), attrs["realm.exit_code"])
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
}

func TestOpenTelemetry_SetsErrorStatus(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil, "change-ruler")(func(context.Context) (any, error) {
		return nil, &domain.HouseNotFoundError{HouseID: 42}
	})
	_, err := h(t.Context())
	require.ErrorIs(t, err, domain.ErrNotFound)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "not_found", spans[0].Status.Description)
	assert.Equal(t, int64(3), spanAttrs(spans[0])["realm.exit_code"])
	assert.NotEmpty(t, spans[0].Events)
}

func TestOpenTelemetry_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)

	h := middleware.OpenTelemetry(metrics, "names")
	_, err = h(ok(nil))(t.Context())
	require.NoError(t, err)
	_, err = h(func(context.Context) (any, error) { return nil, domain.ErrConflict })(t.Context())
	require.ErrorIs(t, err, domain.ErrConflict)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = true
			if m.Name != "realm.command.total" {
				continue
			}
			sum, isSum := m.Data.(metricdata.Sum[int64])
			require.True(t, isSum)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			assert.Equal(t, int64(2), total)
			assert.Len(t, sum.DataPoints, 2)
		}
	}
	assert.True(t, found["realm.command.duration"])
	assert.True(t, found["realm.command.total"])
}

func TestOpenTelemetry_NilMetricsNoPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		_, _ = middleware.OpenTelemetry(nil, "names")(ok(nil))(t.Context())
	})
}
