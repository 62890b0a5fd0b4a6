package registry

import "github.com/adrianflutur/registry/internal/mode"

// Mode controls when a registration's builder runs and whether its result
// is cached.
type Mode = mode.Mode

const (
	// LazySingleton builds on first Get and caches the result.
	LazySingleton = mode.LazySingleton
	// EagerSingleton builds during Put, without params, and caches the result.
	EagerSingleton = mode.EagerSingleton
	// LazyFactory builds on every Get and never caches.
	LazyFactory = mode.LazyFactory
)
