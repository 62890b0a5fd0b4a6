package registry

import "log/slog"

type Option func(*registryConfig)

// WithLogger sends debug records for every mutating operation to logger.
// Without it nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *registryConfig) {
		cfg.logger = logger
	}
}

// WithLogSink sends one formatted line per logged operation to sink.
// Panics raised by sink are swallowed.
func WithLogSink(sink func(line string)) Option {
	return func(cfg *registryConfig) {
		cfg.logger = newSinkLogger(sink)
	}
}

func WithResolveObserver(hook ResolveHook) Option {
	return func(cfg *registryConfig) {
		cfg.onResolve = append(cfg.onResolve, hook)
	}
}

func WithPutObserver(hook PutHook) Option {
	return func(cfg *registryConfig) {
		cfg.onPut = append(cfg.onPut, hook)
	}
}

func WithDisposeObserver(hook DisposeHook) Option {
	return func(cfg *registryConfig) {
		cfg.onDispose = append(cfg.onDispose, hook)
	}
}

// WithResolveInterceptor wraps every resolution, nested ones included.
// Interceptors run in the order they were added, outermost first.
func WithResolveInterceptor(interceptor ResolveInterceptor) Option {
	return func(cfg *registryConfig) {
		cfg.interceptors = append(cfg.interceptors, interceptor)
	}
}
