package mode

type Mode int

const (
	LazySingleton Mode = iota
	EagerSingleton
	LazyFactory
)

func (m Mode) String() string {
	switch m {
	case LazySingleton:
		return "lazySingleton"
	case EagerSingleton:
		return "eagerSingleton"
	case LazyFactory:
		return "lazyFactory"
	default:
		return "unknown"
	}
}

// Caches reports whether registrants in this mode keep their instance.
func (m Mode) Caches() bool {
	return m == LazySingleton || m == EagerSingleton
}
