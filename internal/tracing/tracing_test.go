package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestPgxTracer_CarriesSpanFromStartToEnd(t *testing.T) {
	tracer := NewPgxTracer(noop.NewTracerProvider().Tracer("test"))

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	_, ok := ctx.Value(querySpanKey{}).(trace.Span)
	assert.True(t, ok)

	assert.NotPanics(t, func() {
		tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("boom")})
		tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	})
}
