// Package registry is a type-keyed object registry: register a builder for
// a type, resolve instances of it later, and let the registry decide when
// to build and when to reuse.
//
// # Quick Start
//
// Create a registry at the composition root and register builders:
//
//	r := registry.New()
//
//	registry.PutValue(r, &Config{Port: 8080})
//
//	registry.Put(r, func(ctx context.Context, res registry.Resolver, p registry.Params) (*Server, error) {
//	    cfg, err := registry.Resolve[*Config](ctx, res)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Server{config: cfg}, nil
//	})
//
//	srv, err := registry.Get[*Server](r)
//
// A Registry is owned by one caller at a time. It does no locking.
//
// # Modes
//
// Each registration has one mode:
//
//	registry.LazySingleton   // built on first Get, cached (default)
//	registry.EagerSingleton  // built during Put with empty params, cached
//	registry.LazyFactory     // built on every Get, never cached
//
//	registry.Put(r, NewPool, registry.WithMode(registry.EagerSingleton))
//
// # Params
//
// Get passes params to the builder. A cached instance ignores them.
//
//	db, err := registry.Get[*DB](r, registry.NamedParams(map[string]any{"dsn": dsn}))
//	conn, err := registry.Get[*Conn](r, registry.ListParams("localhost", 5432))
//
// Positional params are keyed "0", "1" and so on. Lookups never fail; a
// missing key yields nil, and typed accessors take a fallback:
//
//	port := p.Int("port", 8080)
//
// Params can be loaded from YAML, JSON or TOML with ParamsFromFile.
//
// # Re-registration and Disposal
//
// A second Put for the same key fails with ErrAlreadyRegistered unless the
// first registration was made WithAllowOneReregistration. The permission is
// used up by that second Put.
//
//	registry.Put(r, NewClient,
//	    registry.WithAllowOneReregistration(),
//	    registry.WithOnDispose(func(c *Client) error { return c.Close() }),
//	)
//
// The dispose callback runs when a cached instance is dropped by
// re-registration, RefreshInstance, Remove or Clear. A nil instance is
// dropped without calling it.
//
// # Dependencies
//
// Builders resolve their dependencies through the Resolver they are given.
// The registry records these edges: Clear disposes dependents first, and a
// dependency cycle fails with ErrCyclicDependency instead of recursing
// forever.
//
//	r.PrintGraph()
//	r.PrintGraphDOT()
//
// # Modules
//
//	var Storage = registry.NewModule("storage")
//	registry.ModulePut(Storage, NewDB)
//	registry.ModuleBind[Repository, *SQLRepository](Storage)
//
//	err := r.Apply(Storage)
//
// # Observers
//
//	r := registry.New(
//	    registry.WithLogger(logger),
//	    registry.WithResolveObserver(func(ctx context.Context, key registry.Key, d time.Duration, err error) {
//	        metrics.RecordResolve(key, d, err)
//	    }),
//	)
//
// See the observability package for OpenTelemetry instruments and spans.
package registry
