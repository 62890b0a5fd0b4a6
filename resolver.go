package registry

import (
	"context"

	"github.com/adrianflutur/registry/internal/container"
	"github.com/adrianflutur/registry/internal/reflect"
)

// Resolver is the capability a builder receives for fetching its own
// dependencies from the registry that is building it. *Registry implements
// it too.
type Resolver interface {
	Resolve(ctx context.Context, key Key, p Params) (any, error)
	Has(key Key) bool
}

type resolverAdapter struct {
	inner container.Resolver
}

func (r *resolverAdapter) Resolve(ctx context.Context, key Key, p Params) (any, error) {
	instance, err := r.inner.Resolve(ctx, string(key), p)
	return instance, translate(err)
}

func (r *resolverAdapter) Has(key Key) bool {
	return r.inner.Has(string(key))
}

// ResolveKey resolves key through res and asserts the result is a T.
// Several params are overlaid left to right.
func ResolveKey[T any](ctx context.Context, res Resolver, key Key, p ...Params) (T, error) {
	var zero T

	instance, err := res.Resolve(ctx, key, mergeParams(p))
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		if instance == nil {
			return zero, nil
		}
		return zero, errTypeMismatch(key, reflect.TypeName[T](), reflect.TypeNameOf(instance))
	}

	return typed, nil
}

func Resolve[T any](ctx context.Context, res Resolver, p ...Params) (T, error) {
	return ResolveKey[T](ctx, res, KeyOf[T](), p...)
}

func ResolveNamed[T any](ctx context.Context, res Resolver, name string, p ...Params) (T, error) {
	return ResolveKey[T](ctx, res, NamedKeyOf[T](name), p...)
}

func Get[T any](r *Registry, p ...Params) (T, error) {
	return GetCtx[T](context.Background(), r, p...)
}

func GetCtx[T any](ctx context.Context, r *Registry, p ...Params) (T, error) {
	return ResolveKey[T](ctx, r, KeyOf[T](), p...)
}

func GetNamed[T any](r *Registry, name string, p ...Params) (T, error) {
	return ResolveKey[T](context.Background(), r, NamedKeyOf[T](name), p...)
}

func MustGet[T any](r *Registry, p ...Params) T {
	v, err := Get[T](r, p...)
	if err != nil {
		panic(err)
	}
	return v
}

func TryGet[T any](r *Registry, p ...Params) (T, bool) {
	v, err := Get[T](r, p...)
	return v, err == nil
}

func IsRegistered[T any](r *Registry) bool {
	return r.internal.IsRegistered(string(KeyOf[T]()))
}

func IsRegisteredNamed[T any](r *Registry, name string) bool {
	return r.internal.IsRegistered(string(NamedKeyOf[T](name)))
}

type Optional[T any] struct {
	value   T
	present bool
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) Value() T {
	return o.value
}

func (o Optional[T]) Present() bool {
	return o.present
}

func (o Optional[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

func (o Optional[T]) OrElseFunc(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// GetOptional returns None when T is not registered. Any other failure,
// a builder error included, also yields None.
func GetOptional[T any](r *Registry, p ...Params) Optional[T] {
	if !r.Has(KeyOf[T]()) {
		return None[T]()
	}

	v, err := Get[T](r, p...)
	if err != nil {
		return None[T]()
	}
	return Some(v)
}
