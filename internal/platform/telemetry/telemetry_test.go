package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/realm-chronicle/internal/platform/config"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/telemetry"
)

func TestInitTracer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(ctx, "realm-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tp)
			// Shutdown may fail when no collector is running.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })
		})
	}
}

func TestInitMeter(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := telemetry.InitMeter(ctx, "realm-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, mp)
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestInitTracer_UnsupportedExporterSentinel(t *testing.T) {
	t.Parallel()

	_, err := telemetry.InitTracer(context.Background(), "realm-test", "jaeger", "")
	assert.True(t, errors.Is(err, telemetry.ErrUnsupportedExporter), "err = %v", err)
}

func TestNewMetrics(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "realm-test", telemetry.ExporterStdout, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)
	assert.NotNil(t, metrics.CommandDuration)
	assert.NotNil(t, metrics.CommandTotal)

	// Recording must not panic.
	attrs := metric.WithAttributes(telemetry.AttrCommand.String("titled"), telemetry.AttrResult.String("success"))
	metrics.CommandDuration.Record(ctx, 0.01, attrs)
	metrics.CommandTotal.Add(ctx, 1, attrs)
}

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{Enabled: false})
	require.NoError(t, err)

	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	require.NotNil(t, p.Metrics)
	p.Metrics.CommandTotal.Add(ctx, 1)
	assert.NoError(t, p.Shutdown(ctx))
}

func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "realm-test",
	})
	require.NoError(t, err)

	assert.NotNil(t, p.Tracer)
	assert.NotNil(t, p.Meter)
	assert.NotNil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(ctx))
}

func TestSetup_InvalidExporter(t *testing.T) {
	t.Parallel()

	_, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
		Enabled:     true,
		Exporter:    "carrier-raven",
		ServiceName: "realm-test",
	})
	assert.ErrorIs(t, err, telemetry.ErrUnsupportedExporter)
}

func TestProviders_ShutdownNil(t *testing.T) {
	t.Parallel()

	var p *telemetry.Providers
	assert.NoError(t, p.Shutdown(context.Background()))
}
