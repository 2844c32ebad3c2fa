package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for the query service.
const defaultTracerName = "docnav"

// startSpan opens a server span for one navigation query. The tracer comes
// from the global OpenTelemetry tracer provider; configure it in main()
// before starting the server:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	    sdktrace.WithResource(resource.NewWithAttributes(
//	        semconv.SchemaURL,
//	        semconv.ServiceName("docs-nav"),
//	    )),
//	)
//	otel.SetTracerProvider(tp)
func (s *Server) startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(
		ctx,
		"docnav."+operation,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrs...),
	)
}

// endSpan records the query outcome and closes the span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func resolveTracer(name string) trace.Tracer {
	if name == "" {
		name = defaultTracerName
	}
	return otel.Tracer(name)
}
