package registry

import (
	"context"
)

// RefreshInstance rebuilds the cached T with the params it was last built
// with and disposes the previous instance. It does nothing when T is not
// registered or has no cached instance yet, which is always the case for
// LazyFactory.
//
// If the builder fails the old instance stays cached. If only the dispose
// callback fails the new instance is installed and the callback's error is
// returned as is.
func RefreshInstance[T any](r *Registry) error {
	return r.Refresh(context.Background(), KeyOf[T]())
}

func RefreshInstanceCtx[T any](ctx context.Context, r *Registry) error {
	return r.Refresh(ctx, KeyOf[T]())
}

func RefreshInstanceNamed[T any](r *Registry, name string) error {
	return r.Refresh(context.Background(), NamedKeyOf[T](name))
}

func (r *Registry) Refresh(ctx context.Context, key Key) error {
	return translate(r.internal.Refresh(ctx, string(key)))
}

// Remove disposes the cached T, if any, and drops the registration. The
// registration is gone even when the dispose callback fails.
func Remove[T any](r *Registry) error {
	return r.RemoveKey(KeyOf[T]())
}

func RemoveNamed[T any](r *Registry, name string) error {
	return r.RemoveKey(NamedKeyOf[T](name))
}

func (r *Registry) RemoveKey(key Key) error {
	return translate(r.internal.Remove(string(key)))
}

// Clear disposes every cached instance, dependents before their
// dependencies, and empties the registry. A failing dispose callback does
// not stop the others; all failures are returned together wrapped in an
// ErrDisposeFailed error.
func (r *Registry) Clear() error {
	if err := r.internal.Clear(); err != nil {
		return errDisposeFailed(err)
	}
	return nil
}
