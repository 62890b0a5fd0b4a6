// Package container implements the registry engine: registrants keyed by
// type identity, mode dispatch, resolution tracking and disposal.
//
// A Container is not safe for concurrent use. Builders run synchronously
// on the caller's stack and may call back into the container.
package container

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/adrianflutur/registry/internal/graph"
	"github.com/adrianflutur/registry/internal/mode"
	"github.com/adrianflutur/registry/internal/params"
)

type ResolveHook func(ctx context.Context, key string, duration time.Duration, err error)

type PutHook func(key string, m mode.Mode)

type DisposeHook func(key string, err error)

// Interceptor wraps a single resolution. It must call next at most once
// and should pass along the context it received or one derived from it.
type Interceptor func(ctx context.Context, key string, next func(ctx context.Context) (any, error)) (any, error)

type Container struct {
	registrants map[string]*Registrant
	graph       *graph.Graph
	logger      *slog.Logger

	// keys whose builders are currently on the stack, outermost first
	resolving []string

	onResolve    []ResolveHook
	onPut        []PutHook
	onDispose    []DisposeHook
	interceptors []Interceptor
}

type Config struct {
	Logger       *slog.Logger
	OnResolve    []ResolveHook
	OnPut        []PutHook
	OnDispose    []DisposeHook
	Interceptors []Interceptor
}

func New(cfg *Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Container{
		registrants:  make(map[string]*Registrant),
		graph:        graph.New(),
		logger:       logger,
		onResolve:    cfg.OnResolve,
		onPut:        cfg.OnPut,
		onDispose:    cfg.OnDispose,
		interceptors: cfg.Interceptors,
	}
}

// Put registers reg.Key, or replaces it when the current registrant allows
// one re-registration. Eager builders run before anything is replaced, so
// a failing eager builder leaves the container unchanged.
func (c *Container) Put(ctx context.Context, reg Registration) error {
	existing, exists := c.registrants[reg.Key]
	if exists && !existing.AllowOneReregistration {
		c.logger.Debug(
			"registry put rejected",
			slog.String("key", reg.Key),
			slog.String("registration_id", existing.ID.String()),
		)
		return &AlreadyRegisteredError{Key: reg.Key}
	}

	r := newRegistrant(reg)

	var deps []string
	if reg.Mode == mode.EagerSingleton {
		instance, built, err := c.build(ctx, r, params.Params{})
		if err != nil {
			return err
		}
		r.Instance = instance
		r.Instantiated = true
		deps = built
	}

	var disposeErr error
	if exists {
		disposeErr = c.dispose(existing)
	}

	c.registrants[reg.Key] = r
	c.graph.AddNode(reg.Key)
	for _, dep := range deps {
		c.graph.AddEdge(reg.Key, dep)
	}

	c.logger.Debug(
		"registry put",
		slog.String("key", reg.Key),
		slog.String("mode", reg.Mode.String()),
		slog.String("registration_id", r.ID.String()),
		slog.Bool("reregistration", exists),
		slog.Bool("allow_one_reregistration", reg.AllowOneReregistration),
	)

	for _, hook := range c.onPut {
		hook(reg.Key, reg.Mode)
	}

	return disposeErr
}

func (c *Container) Has(key string) bool {
	_, exists := c.registrants[key]
	return exists
}

// IsRegistered is Has with a debug log line, for callers outside builders.
func (c *Container) IsRegistered(key string) bool {
	exists := c.Has(key)
	c.logger.Debug("registry lookup", slog.String("key", key), slog.Bool("registered", exists))
	return exists
}

func (c *Container) GetInstance(key string) (any, bool) {
	r, exists := c.registrants[key]
	if !exists || !r.Instantiated {
		return nil, false
	}
	return r.Instance, true
}

func (c *Container) Info(key string) (RegistrantInfo, bool) {
	r, exists := c.registrants[key]
	if !exists {
		return RegistrantInfo{}, false
	}
	return r.info(), true
}

func (c *Container) Keys() []string {
	keys := make([]string, 0, len(c.registrants))
	for key := range c.registrants {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c *Container) Size() int {
	return len(c.registrants)
}

// Validate reports cycles in the recorded dependency graph. Such cycles
// cannot fail a resolution while the instances involved stay cached, but
// would on the next refresh or re-registration.
func (c *Container) Validate() error {
	if !c.graph.HasCycle() {
		return nil
	}
	if cycles := c.graph.GetAllCyclePaths(); len(cycles) > 0 {
		return fmt.Errorf("dependency cycles recorded: %v", cycles)
	}
	return nil
}

func (c *Container) Graph() *graph.Graph {
	return c.graph.Clone()
}
