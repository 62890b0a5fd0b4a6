package registry

import (
	"context"

	"github.com/adrianflutur/registry/internal/container"
	"github.com/adrianflutur/registry/internal/mode"
	"github.com/adrianflutur/registry/internal/params"
	"github.com/adrianflutur/registry/internal/reflect"
)

// Builder creates an instance of T. It may resolve its own dependencies
// through res, forwarding p or passing params of its own.
type Builder[T any] func(ctx context.Context, res Resolver, p Params) (T, error)

type PutOption func(*putConfig)

type putConfig struct {
	name                   string
	mode                   mode.Mode
	modeSet                bool
	allowOneReregistration bool
	onDispose              container.DisposeFunc
	disposeType            string
	disposeTypeName        string
}

func WithMode(m Mode) PutOption {
	return func(cfg *putConfig) {
		cfg.mode = m
		cfg.modeSet = true
	}
}

// WithName registers under NamedKeyOf[T](name) instead of KeyOf[T]().
func WithName(name string) PutOption {
	return func(cfg *putConfig) {
		cfg.name = name
	}
}

// WithAllowOneReregistration lets the next Put for the same key replace
// this registration. The replacement does not inherit the permission.
func WithAllowOneReregistration() PutOption {
	return func(cfg *putConfig) {
		cfg.allowOneReregistration = true
	}
}

// WithOnDispose is called with the cached instance right before the
// registry drops it on RefreshInstance, Remove, Clear or re-registration.
// T must match the type given to Put.
func WithOnDispose[T any](fn func(T) error) PutOption {
	return func(cfg *putConfig) {
		cfg.disposeType = reflect.TypeKey[T]()
		cfg.disposeTypeName = reflect.TypeName[T]()
		cfg.onDispose = func(instance any) error {
			typed, _ := instance.(T)
			return fn(typed)
		}
	}
}

func Put[T any](r *Registry, builder Builder[T], opts ...PutOption) error {
	return PutCtx(context.Background(), r, builder, opts...)
}

// PutCtx is Put with the context handed to an eager builder.
//
// When an eager registration replaces an existing one, the new builder runs
// before the old instance is disposed, so a failing builder leaves the old
// registration untouched. Builders that need an exclusive resource held by
// the old instance (a port, a file lock) must not be eager re-registrations;
// Remove the old registration first instead.
func PutCtx[T any](ctx context.Context, r *Registry, builder Builder[T], opts ...PutOption) error {
	cfg := newPutConfig(opts)
	key := putKey[T](cfg)

	if cfg.onDispose != nil && cfg.disposeType != reflect.TypeKey[T]() {
		return errDisposeTypeMismatch(key, reflect.TypeName[T](), cfg.disposeTypeName)
	}

	wrappedBuilder := func(ctx context.Context, res container.Resolver, p params.Params) (any, error) {
		return builder(ctx, &resolverAdapter{inner: res}, p)
	}

	err := r.internal.Put(
		ctx, container.Registration{
			Key:                    string(key),
			Builder:                wrappedBuilder,
			Mode:                   cfg.mode,
			AllowOneReregistration: cfg.allowOneReregistration,
			OnDispose:              cfg.onDispose,
		},
	)
	return translate(err)
}

// PutValue registers an already built value as an eager singleton.
func PutValue[T any](r *Registry, value T, opts ...PutOption) error {
	opts = append(opts, WithMode(EagerSingleton))
	return Put(
		r, func(context.Context, Resolver, Params) (T, error) {
			return value, nil
		}, opts...,
	)
}

// PutKey returns the key Put[T] registers under when given opts.
func PutKey[T any](opts ...PutOption) Key {
	return putKey[T](newPutConfig(opts))
}

func newPutConfig(opts []PutOption) *putConfig {
	cfg := &putConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func putKey[T any](cfg *putConfig) Key {
	if cfg.name != "" {
		return NamedKeyOf[T](cfg.name)
	}
	return KeyOf[T]()
}

func PutNamed[T any](r *Registry, name string, builder Builder[T], opts ...PutOption) error {
	opts = append(opts, WithName(name))
	return Put(r, builder, opts...)
}

func MustPut[T any](r *Registry, builder Builder[T], opts ...PutOption) {
	if err := Put(r, builder, opts...); err != nil {
		panic(err)
	}
}
