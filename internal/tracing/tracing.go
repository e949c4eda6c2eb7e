package tracing

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("wellnex-api")

// Fail marks span as failed with err. A nil err is ignored.
func Fail(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

// PgxTracer emits a span for every query run through a pgx pool.
type PgxTracer struct {
	tracer trace.Tracer
}

func NewPgxTracer(tracer trace.Tracer) *PgxTracer {
	return &PgxTracer{tracer: tracer}
}

type querySpanKey struct{}

func (t *PgxTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx, span := t.tracer.Start(ctx, "db.query")
	span.SetAttributes(attribute.String("sql", data.SQL))
	return context.WithValue(ctx, querySpanKey{}, span)
}

func (t *PgxTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	span, ok := ctx.Value(querySpanKey{}).(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	span.SetAttributes(attribute.String("commandTag", data.CommandTag.String()))
	Fail(span, data.Err)
}
