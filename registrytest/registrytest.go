// Package registrytest wraps a registry for use in tests: failures are
// reported through testing.TB and the registry is cleared on cleanup.
package registrytest

import (
	"github.com/adrianflutur/registry"
)

type TB interface {
	Helper()
	Log(args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

type TestRegistry struct {
	*registry.Registry
	tb TB
}

// New returns a registry that is cleared when the test ends. A dispose
// callback failing during that Clear fails the test.
func New(tb TB, opts ...registry.Option) *TestRegistry {
	tb.Helper()

	r := registry.New(opts...)
	tr := &TestRegistry{
		Registry: r,
		tb:       tb,
	}

	tb.Cleanup(func() {
		if err := r.Clear(); err != nil {
			tb.Fatalf("failed to clear registry: %v", err)
		}
	})

	return tr
}

// LogTo routes the registry's log lines to tb.Log.
func LogTo(tb TB) registry.Option {
	return registry.WithLogSink(func(line string) {
		tb.Log(line)
	})
}

func (tr *TestRegistry) RequireValidate() {
	tr.tb.Helper()

	if err := tr.Validate(); err != nil {
		tr.tb.Fatalf("registry validation failed: %v", err)
	}
}

func (tr *TestRegistry) RequireClear() {
	tr.tb.Helper()

	if err := tr.Clear(); err != nil {
		tr.tb.Fatalf("failed to clear registry: %v", err)
	}
}

// Replace swaps the registration of T for value, disposing the current
// instance if there is one. Instances that already captured the old value
// keep it until they are refreshed.
func Replace[T any](tr *TestRegistry, value T) {
	tr.tb.Helper()
	replace(tr, registry.KeyOf[T](), func() error {
		return registry.PutValue(tr.Registry, value)
	})
}

func ReplaceNamed[T any](tr *TestRegistry, name string, value T) {
	tr.tb.Helper()
	replace(tr, registry.NamedKeyOf[T](name), func() error {
		return registry.PutValue(tr.Registry, value, registry.WithName(name))
	})
}

// ReplaceBuilder swaps the registration Put would create from opts,
// honouring WithName.
func ReplaceBuilder[T any](tr *TestRegistry, builder registry.Builder[T], opts ...registry.PutOption) {
	tr.tb.Helper()
	replace(tr, registry.PutKey[T](opts...), func() error {
		return registry.Put(tr.Registry, builder, opts...)
	})
}

func replace(tr *TestRegistry, key registry.Key, put func() error) {
	tr.tb.Helper()

	if tr.Has(key) {
		if err := tr.RemoveKey(key); err != nil {
			tr.tb.Fatalf("failed to remove %s: %v", key, err)
		}
	}
	if err := put(); err != nil {
		tr.tb.Fatalf("failed to replace %s: %v", key, err)
	}
}

func AssertRegistered[T any](tr *TestRegistry) {
	tr.tb.Helper()

	if !registry.IsRegistered[T](tr.Registry) {
		tr.tb.Fatalf("expected registry to have %s", registry.KeyOf[T]())
	}
}

func AssertRegisteredNamed[T any](tr *TestRegistry, name string) {
	tr.tb.Helper()

	if !registry.IsRegisteredNamed[T](tr.Registry, name) {
		tr.tb.Fatalf("expected registry to have %s", registry.NamedKeyOf[T](name))
	}
}

func AssertNotRegistered[T any](tr *TestRegistry) {
	tr.tb.Helper()

	if registry.IsRegistered[T](tr.Registry) {
		tr.tb.Fatalf("expected registry to not have %s", registry.KeyOf[T]())
	}
}

func MustGet[T any](tr *TestRegistry, p ...registry.Params) T {
	tr.tb.Helper()

	v, err := registry.Get[T](tr.Registry, p...)
	if err != nil {
		tr.tb.Fatalf("failed to get %s: %v", registry.KeyOf[T](), err)
	}
	return v
}

func MustGetNamed[T any](tr *TestRegistry, name string, p ...registry.Params) T {
	tr.tb.Helper()

	v, err := registry.GetNamed[T](tr.Registry, name, p...)
	if err != nil {
		tr.tb.Fatalf("failed to get %s: %v", registry.NamedKeyOf[T](name), err)
	}
	return v
}

func MustPut[T any](tr *TestRegistry, builder registry.Builder[T], opts ...registry.PutOption) {
	tr.tb.Helper()

	if err := registry.Put(tr.Registry, builder, opts...); err != nil {
		tr.tb.Fatalf("failed to put %s: %v", registry.KeyOf[T](), err)
	}
}

func MustPutValue[T any](tr *TestRegistry, value T, opts ...registry.PutOption) {
	tr.tb.Helper()

	if err := registry.PutValue(tr.Registry, value, opts...); err != nil {
		tr.tb.Fatalf("failed to put value %s: %v", registry.KeyOf[T](), err)
	}
}

func MustRefresh[T any](tr *TestRegistry) {
	tr.tb.Helper()

	if err := registry.RefreshInstance[T](tr.Registry); err != nil {
		tr.tb.Fatalf("failed to refresh %s: %v", registry.KeyOf[T](), err)
	}
}
