package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupTracingDisabled(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProviderRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := NewTracerProvider(sdktrace.WithSpanProcessor(recorder), 1)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "PriceUpdater.UpdatePrice")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "PriceUpdater.UpdatePrice", ended[0].Name())
	assert.Equal(t, ServiceName, serviceName(ended[0]))
}

func TestNewTracerProviderZeroRatioDropsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := NewTracerProvider(sdktrace.WithSpanProcessor(recorder), 0)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "dropped")
	span.End()

	assert.Empty(t, recorder.Ended())
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(3))
	assert.Equal(t, 0.4, clampRatio(0.4))
	assert.Equal(t, "localhost:4318", endpointOrDefault(""))
}

func serviceName(span sdktrace.ReadOnlySpan) string {
	for _, kv := range span.Resource().Attributes() {
		if kv.Key == "service.name" {
			return kv.Value.AsString()
		}
	}
	return ""
}
