package reflect

import (
	"reflect"
	"strconv"
	"sync"
)

const nameSeparator = "#"

var typeKeyCache sync.Map

// TypeKey returns the registry key for T. Interface types are keyed by the
// interface itself, not by whatever implementation is stored under them.
func TypeKey[T any]() string {
	return typeKeyFromReflect(reflect.TypeFor[T]())
}

func TypeKeyNamed[T any](name string) string {
	if name == "" {
		return TypeKey[T]()
	}
	return TypeKey[T]() + nameSeparator + name
}

func typeKeyFromReflect(t reflect.Type) string {
	if cached, ok := typeKeyCache.Load(t); ok {
		return cached.(string)
	}

	key := buildTypeKey(t)
	typeKeyCache.Store(t, key)
	return key
}

func buildTypeKey(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + buildTypeKey(t.Elem())
	case reflect.Slice:
		return "[]" + buildTypeKey(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + buildTypeKey(t.Elem())
	case reflect.Map:
		return "map[" + buildTypeKey(t.Key()) + "]" + buildTypeKey(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + buildTypeKey(t.Elem())
		case reflect.SendDir:
			return "chan<- " + buildTypeKey(t.Elem())
		default:
			return "chan " + buildTypeKey(t.Elem())
		}
	case reflect.Func:
		return t.String()
	default:
		if t.PkgPath() != "" {
			return t.PkgPath() + "." + t.Name()
		}
		if t.Name() == "" {
			return t.String()
		}
		return t.Name()
	}
}

func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// TypeNameOf names the dynamic type of v, for mismatch reports.
func TypeNameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func IsInterface[T any]() bool {
	return reflect.TypeFor[T]().Kind() == reflect.Interface
}

// AssignableTo reports whether a value of type T can be stored in an I.
func AssignableTo[T, I any]() bool {
	return reflect.TypeFor[T]().AssignableTo(reflect.TypeFor[I]())
}
