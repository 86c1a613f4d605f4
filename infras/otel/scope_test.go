package otel_test

import (
	"context"
	"errors"
	"poolhire/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "webhook")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"payment.amount": int64(6500),
		"payment.intent": "pi_1",
		"event.replayed": false,
		"extras.count":   2,
		"fee.ratio":      0.1,
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("card declined"))
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(6500), attrs["payment.amount"].AsInt64())
	assert.Equal(t, "pi_1", attrs["payment.intent"].AsString())
	assert.False(t, attrs["event.replayed"].AsBool())
	assert.Equal(t, int64(2), attrs["extras.count"].AsInt64())
	assert.InDelta(t, 0.1, attrs["fee.ratio"].AsFloat64(), 1e-9)

	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "card declined", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
}
