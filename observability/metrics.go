package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/adrianflutur/registry"
)

const instrumentationName = "github.com/adrianflutur/registry"

// Metrics records registry activity as OpenTelemetry instruments.
type Metrics struct {
	puts          metric.Int64Counter
	resolves      metric.Int64Counter
	resolveErrors metric.Int64Counter
	disposes      metric.Int64Counter
	latency       metric.Float64Histogram
}

func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(instrumentationName)

	puts, err := meter.Int64Counter("registry.put",
		metric.WithDescription("Number of accepted registrations"),
	)
	if err != nil {
		return nil, err
	}

	resolves, err := meter.Int64Counter("registry.resolve",
		metric.WithDescription("Number of resolutions, nested ones included"),
	)
	if err != nil {
		return nil, err
	}

	resolveErrors, err := meter.Int64Counter("registry.resolve.errors",
		metric.WithDescription("Number of failed resolutions"),
	)
	if err != nil {
		return nil, err
	}

	disposes, err := meter.Int64Counter("registry.dispose",
		metric.WithDescription("Number of dispose callback invocations"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("registry.resolve.latency_ms",
		metric.WithDescription("Resolution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		puts:          puts,
		resolves:      resolves,
		resolveErrors: resolveErrors,
		disposes:      disposes,
		latency:       latency,
	}, nil
}

func (m *Metrics) RecordPut(key registry.Key, mode registry.Mode) {
	m.puts.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("registry.key", key.String()),
		attribute.String("registry.mode", mode.String()),
	))
}

func (m *Metrics) RecordResolve(ctx context.Context, key registry.Key, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("registry.key", key.String()))

	m.resolves.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)

	if err != nil {
		m.resolveErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("registry.key", key.String()),
			attribute.String("registry.error", errorKind(err)),
		))
	}
}

func (m *Metrics) RecordDispose(key registry.Key, err error) {
	m.disposes.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("registry.key", key.String()),
		attribute.Bool("success", err == nil),
	))
}

// errorKind is the registry error code, or "BUILDER" for errors raised by
// builders themselves.
func errorKind(err error) string {
	var regErr *registry.Error
	if errors.As(err, &regErr) {
		return regErr.Code.String()
	}
	return "BUILDER"
}
