package registry

import (
	"context"

	"github.com/adrianflutur/registry/internal/container"
	"github.com/adrianflutur/registry/internal/mode"
	"github.com/adrianflutur/registry/internal/params"
	"github.com/adrianflutur/registry/internal/reflect"
)

// Bind registers I as a LazyFactory that resolves T on every call, so I
// shares whatever caching T's own registration does. T need not be
// registered yet, but must implement I.
//
// Only WithName and WithAllowOneReregistration apply to a binding. Mode and
// disposal belong to T's registration, so WithMode and WithOnDispose are
// rejected with an ErrCodeValidationFailed error.
func Bind[I, T any](r *Registry, opts ...PutOption) error {
	cfg := newPutConfig(opts)
	interfaceKey := putKey[I](cfg)
	implKey := string(KeyOf[T]())

	if !reflect.AssignableTo[T, I]() {
		return errTypeMismatch(interfaceKey, reflect.TypeName[I](), reflect.TypeName[T]())
	}
	if cfg.modeSet || cfg.onDispose != nil {
		return errUnsupportedBindOption(interfaceKey)
	}

	delegate := func(ctx context.Context, res container.Resolver, p params.Params) (any, error) {
		return res.Resolve(ctx, implKey, p)
	}

	err := r.internal.Put(
		context.Background(), container.Registration{
			Key:                    string(interfaceKey),
			Builder:                delegate,
			Mode:                   mode.LazyFactory,
			AllowOneReregistration: cfg.allowOneReregistration,
		},
	)
	return translate(err)
}

func BindNamed[I, T any](r *Registry, name string, opts ...PutOption) error {
	opts = append(opts, WithName(name))
	return Bind[I, T](r, opts...)
}
