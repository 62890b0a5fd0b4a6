package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/adrianflutur/registry/internal/container"
	"github.com/adrianflutur/registry/internal/mode"
)

// Registry maps keys to registrations. Create one at the composition root
// and pass it to whatever needs it; tear it down with Clear.
//
// A Registry is not safe for concurrent use. Callers sharing one between
// goroutines must serialize Put, Get, RefreshInstance, Remove and Clear.
type Registry struct {
	internal *container.Container
}

type registryConfig struct {
	logger       *slog.Logger
	onResolve    []ResolveHook
	onPut        []PutHook
	onDispose    []DisposeHook
	interceptors []ResolveInterceptor
}

func New(opts ...Option) *Registry {
	cfg := &registryConfig{}

	for _, opt := range opts {
		opt(cfg)
	}

	internalCfg := &container.Config{
		Logger: cfg.logger,
	}
	for _, hook := range cfg.onResolve {
		internalCfg.OnResolve = append(
			internalCfg.OnResolve, func(ctx context.Context, key string, d time.Duration, err error) {
				hook(ctx, Key(key), d, translate(err))
			},
		)
	}
	for _, hook := range cfg.onPut {
		internalCfg.OnPut = append(
			internalCfg.OnPut, func(key string, m mode.Mode) {
				hook(Key(key), m)
			},
		)
	}
	for _, hook := range cfg.onDispose {
		internalCfg.OnDispose = append(
			internalCfg.OnDispose, func(key string, err error) {
				hook(Key(key), err)
			},
		)
	}
	for _, interceptor := range cfg.interceptors {
		internalCfg.Interceptors = append(
			internalCfg.Interceptors,
			func(ctx context.Context, key string, next func(context.Context) (any, error)) (any, error) {
				return interceptor(
					ctx, Key(key), func(ctx context.Context) (any, error) {
						instance, err := next(ctx)
						return instance, translate(err)
					},
				)
			},
		)
	}

	return &Registry{
		internal: container.New(internalCfg),
	}
}

// Resolve makes Registry usable wherever a Resolver is expected.
func (r *Registry) Resolve(ctx context.Context, key Key, p Params) (any, error) {
	instance, err := r.internal.Resolve(ctx, string(key), p)
	return instance, translate(err)
}

func (r *Registry) Has(key Key) bool {
	return r.internal.Has(string(key))
}

func (r *Registry) Size() int {
	return r.internal.Size()
}

func (r *Registry) Keys() []Key {
	keys := r.internal.Keys()
	out := make([]Key, len(keys))
	for i, k := range keys {
		out[i] = Key(k)
	}
	return out
}

// Validate fails when the dependencies recorded so far contain a cycle
// that cached instances are currently hiding.
func (r *Registry) Validate() error {
	if err := r.internal.Validate(); err != nil {
		return errValidationFailed(err)
	}
	return nil
}
