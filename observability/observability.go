// Package observability wires registry hooks to OpenTelemetry metrics and
// tracing, and provides slog helpers for registry log output.
//
// Without explicit providers the global ones from otel are used:
//
//	opts, err := observability.Options()
//	if err != nil {
//	    return err
//	}
//	r := registry.New(opts...)
package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/adrianflutur/registry"
)

type config struct {
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

type Option func(*config)

func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *config) {
		cfg.meterProvider = provider
	}
}

func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *config) {
		cfg.tracerProvider = provider
	}
}

// Options returns registry options that record metrics for every put,
// resolve and dispose, and trace every resolution.
func Options(opts ...Option) ([]registry.Option, error) {
	cfg := &config{
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	metrics, err := NewMetrics(cfg.meterProvider)
	if err != nil {
		return nil, err
	}
	tracer := NewTracer(cfg.tracerProvider)

	return []registry.Option{
		registry.WithPutObserver(metrics.RecordPut),
		registry.WithResolveObserver(metrics.RecordResolve),
		registry.WithDisposeObserver(metrics.RecordDispose),
		registry.WithResolveInterceptor(tracer.Interceptor()),
	}, nil
}
