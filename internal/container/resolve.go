package container

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/adrianflutur/registry/internal/mode"
	"github.com/adrianflutur/registry/internal/params"
)

func (c *Container) Resolve(ctx context.Context, key string, p params.Params) (any, error) {
	start := time.Now()

	next := func(ctx context.Context) (any, error) {
		return c.resolveWithMode(ctx, key, p)
	}
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		interceptor, inner := c.interceptors[i], next
		next = func(ctx context.Context) (any, error) {
			return interceptor(ctx, key, inner)
		}
	}

	instance, err := next(ctx)
	c.callResolveHooks(ctx, key, time.Since(start), err)
	return instance, err
}

func (c *Container) callResolveHooks(ctx context.Context, key string, duration time.Duration, err error) {
	for _, hook := range c.onResolve {
		hook(ctx, key, duration, err)
	}
}

func (c *Container) resolveWithMode(ctx context.Context, key string, p params.Params) (any, error) {
	r, exists := c.registrants[key]
	if !exists {
		return nil, &NotFoundError{Key: key}
	}

	switch r.Mode {
	case mode.EagerSingleton:
		return r.Instance, nil
	case mode.LazyFactory:
		return c.resolveFactory(ctx, r, p)
	default:
		return c.resolveLazySingleton(ctx, r, p)
	}
}

func (c *Container) resolveLazySingleton(ctx context.Context, r *Registrant, p params.Params) (any, error) {
	if r.Instantiated {
		return r.Instance, nil
	}

	instance, deps, err := c.build(ctx, r, p)
	if err != nil {
		return nil, err
	}

	r.Instance = instance
	r.Instantiated = true
	r.LastParams = p
	c.recordEdges(r.Key, deps)

	c.logger.Debug(
		"registry instantiate",
		slog.String("key", r.Key),
		slog.String("mode", r.Mode.String()),
		slog.String("params", p.Summary()),
		slog.String("registration_id", r.ID.String()),
	)

	return instance, nil
}

func (c *Container) resolveFactory(ctx context.Context, r *Registrant, p params.Params) (any, error) {
	instance, deps, err := c.build(ctx, r, p)
	if err != nil {
		return nil, err
	}
	c.recordEdges(r.Key, deps)
	return instance, nil
}

// build runs r's builder with a resolver scoped to r and returns the keys
// that builder resolved. Re-entering a key already being built fails with a
// CycleError instead of recursing.
func (c *Container) build(ctx context.Context, r *Registrant, p params.Params) (any, []string, error) {
	if idx := slices.Index(c.resolving, r.Key); idx >= 0 {
		chain := append(slices.Clone(c.resolving[idx:]), r.Key)
		return nil, nil, &CycleError{Chain: chain}
	}

	c.resolving = append(c.resolving, r.Key)
	defer func() {
		c.resolving = c.resolving[:len(c.resolving)-1]
	}()

	res := &scopedResolver{container: c}
	r.Builds++
	instance, err := r.Builder(ctx, res, p)
	if err != nil {
		return nil, nil, err
	}
	return instance, res.deps, nil
}

func (c *Container) recordEdges(key string, deps []string) {
	if !c.graph.HasNode(key) {
		return
	}
	for _, dep := range deps {
		c.graph.AddEdge(key, dep)
	}
}

// scopedResolver is handed to a single builder invocation and remembers
// which keys it resolved successfully.
type scopedResolver struct {
	container *Container
	deps      []string
}

func (s *scopedResolver) Resolve(ctx context.Context, key string, p params.Params) (any, error) {
	instance, err := s.container.Resolve(ctx, key, p)
	if err == nil && !slices.Contains(s.deps, key) {
		s.deps = append(s.deps, key)
	}
	return instance, err
}

func (s *scopedResolver) Has(key string) bool {
	return s.container.Has(key)
}
