//go:build unit

package tracing_test

import (
	"context"
	"errors"
	"testing"

	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/pkg/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp, err := tracing.NewProvider("hall-allocation-test", "test", recorder)
	require.NoError(t, err)

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, created := tracing.StartSpan(context.Background(), "hall.create", attribute.String("actor.id", "a1"))
	tracing.EndSpan(created, nil)

	_, failed := tracing.StartSpan(context.Background(), "allocation.approve")
	tracing.EndSpan(failed, errors.New("hall is already allocated"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "hall.create", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("actor.id", "a1"))

	assert.Equal(t, "allocation.approve", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Len(t, spans[1].Events(), 1)
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := tracing.Init(config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
