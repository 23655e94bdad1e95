package fsm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/amp-labs/fsm"

// startStepSpan creates a span for one drain step: the commit of a
// pending state plus the dispatch of its matching callbacks. The caller
// is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startStepSpan(ctx context.Context, machine string, from, to State) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "fsm.transition")
	span.SetAttributes(
		attribute.String("fsm.machine", machine),
		attribute.String("fsm.from", from.Category().Name()),
		attribute.String("fsm.to", to.Category().Name()),
	)

	return ctx, span
}

// startCallbackSpan creates a child span for one callback invocation.
// The caller is responsible for ending it via endCallbackSpan.
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startCallbackSpan(ctx context.Context, machine string, r rule) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "fsm.callback")
	span.SetAttributes(
		attribute.String("fsm.machine", machine),
		attribute.String("fsm.filter.from", filterName(r.from)),
		attribute.String("fsm.filter.to", filterName(r.to)),
	)

	return ctx, span
}

func endCallbackSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "completed")
	}

	span.End()
}

func endStepSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
