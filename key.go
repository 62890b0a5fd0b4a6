package registry

import "github.com/adrianflutur/registry/internal/reflect"

// Key identifies a registration. Two registrations of the same Go type can
// coexist under different names.
type Key string

func KeyOf[T any]() Key {
	return Key(reflect.TypeKey[T]())
}

func NamedKeyOf[T any](name string) Key {
	return Key(reflect.TypeKeyNamed[T](name))
}

func (k Key) String() string {
	return string(k)
}
