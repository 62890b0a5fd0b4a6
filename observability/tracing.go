package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adrianflutur/registry"
)

type Tracer struct {
	tracer trace.Tracer
}

func NewTracer(provider trace.TracerProvider) *Tracer {
	return &Tracer{tracer: provider.Tracer(instrumentationName)}
}

// Interceptor opens a span around every resolution. Builders that resolve
// their dependencies with the context they were given produce child spans.
func (t *Tracer) Interceptor() registry.ResolveInterceptor {
	return func(ctx context.Context, key registry.Key, next func(context.Context) (any, error)) (any, error) {
		ctx, span := t.tracer.Start(ctx, "registry.resolve "+key.String(),
			trace.WithAttributes(attribute.String("registry.key", key.String())),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		instance, err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("registry.error", errorKind(err)))
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return instance, err
	}
}
