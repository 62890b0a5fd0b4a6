package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/adrianflutur/registry"
)

type AppConfig struct {
	Name    string
	Timeout time.Duration
}

type Store struct {
	ID     string
	Config *AppConfig
	closed bool
}

func (s *Store) Close() error {
	if s.closed {
		return fmt.Errorf("store %s already closed", s.ID)
	}
	s.closed = true
	return nil
}

type Handler struct {
	Store *Store
	Route string
}

// appModule registers the demo application. Dispose callbacks report to
// out so the lifecycle is visible.
func appModule(out io.Writer) *registry.Module {
	m := registry.NewModule("app")

	registry.ModulePut(
		m, func(_ context.Context, _ registry.Resolver, p registry.Params) (*AppConfig, error) {
			return &AppConfig{
				Name:    p.String("name", "registrydemo"),
				Timeout: p.Duration("timeout", 5*time.Second),
			}, nil
		},
	)

	registry.ModulePut(
		m, func(ctx context.Context, res registry.Resolver, p registry.Params) (*Store, error) {
			cfg, err := registry.Resolve[*AppConfig](ctx, res, p)
			if err != nil {
				return nil, err
			}
			return &Store{ID: uuid.NewString()[:8], Config: cfg}, nil
		}, registry.WithOnDispose(
			func(s *Store) error {
				_, _ = fmt.Fprintf(out, "dispose store %s\n", s.ID)
				return s.Close()
			},
		),
	)

	registry.ModulePut(
		m, func(ctx context.Context, res registry.Resolver, p registry.Params) (*Handler, error) {
			store, err := registry.Resolve[*Store](ctx, res, p)
			if err != nil {
				return nil, err
			}
			return &Handler{Store: store, Route: p.String("route", "/")}, nil
		}, registry.WithMode(registry.LazyFactory),
	)

	return m
}
