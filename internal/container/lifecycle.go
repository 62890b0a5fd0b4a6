package container

import (
	"context"
	"log/slog"

	"go.uber.org/multierr"

	"github.com/adrianflutur/registry/internal/reflect"
)

// Refresh rebuilds a cached instance with the params it was last built
// with. Keys without a cached instance are left alone. The new instance is
// installed even when disposing the old one fails; that failure is returned.
func (c *Container) Refresh(ctx context.Context, key string) error {
	r, exists := c.registrants[key]
	if !exists || !r.Instantiated {
		return nil
	}

	instance, deps, err := c.build(ctx, r, r.LastParams)
	if err != nil {
		return err
	}

	disposeErr := c.dispose(r)

	r.Instance = instance
	r.Instantiated = true
	c.graph.AddNode(key)
	c.recordEdges(key, deps)

	c.logger.Debug(
		"registry refresh",
		slog.String("key", key),
		slog.String("params", r.LastParams.Summary()),
		slog.String("registration_id", r.ID.String()),
	)

	return disposeErr
}

// Remove disposes the cached instance of key, if any, and forgets key. The
// key is forgotten even when disposal fails.
func (c *Container) Remove(key string) error {
	r, exists := c.registrants[key]
	if !exists {
		return &NotFoundError{Key: key}
	}

	disposeErr := c.dispose(r)

	delete(c.registrants, key)
	c.graph.RemoveNode(key)

	c.logger.Debug(
		"registry remove",
		slog.String("key", key),
		slog.String("registration_id", r.ID.String()),
	)

	return disposeErr
}

// Clear disposes every cached instance, dependents before their
// dependencies, and empties the container. Disposal continues past
// failures; all of them are returned combined.
func (c *Container) Clear() error {
	order, err := c.graph.DisposeOrder()
	if err != nil {
		order = c.Keys()
	}

	var errs error
	seen := make(map[string]bool, len(order))
	for _, key := range order {
		seen[key] = true
		if r, exists := c.registrants[key]; exists {
			errs = multierr.Append(errs, c.dispose(r))
		}
	}
	for _, key := range c.Keys() {
		if !seen[key] {
			errs = multierr.Append(errs, c.dispose(c.registrants[key]))
		}
	}

	count := len(c.registrants)
	c.registrants = make(map[string]*Registrant)
	c.graph.Clear()

	c.logger.Debug("registry clear", slog.Int("count", count), slog.Int("dispose_errors", len(multierr.Errors(errs))))

	return errs
}

// dispose hands the cached instance to the dispose callback and drops it
// from r. Absent instances (nil, or a typed nil) are dropped without a
// callback.
func (c *Container) dispose(r *Registrant) error {
	if !r.Instantiated {
		return nil
	}

	instance := r.Instance
	r.Instance = nil
	r.Instantiated = false

	if r.OnDispose == nil || reflect.IsNil(instance) {
		return nil
	}

	err := r.OnDispose(instance)

	c.logger.Debug("registry dispose", slog.String("key", r.Key), slog.Any("error", err))
	for _, hook := range c.onDispose {
		hook(r.Key, err)
	}

	return err
}
