package benchmark

import (
	"context"

	"github.com/adrianflutur/registry"
)

type Config struct {
	Host string
	Port int
}

type Logger struct {
	Level string
}

type Database struct {
	Config *Config
	Logger *Logger
}

func (d *Database) Close() error { return nil }

type Cache struct {
	Logger *Logger
}

type Repository struct {
	DB    *Database
	Cache *Cache
}

type Service struct {
	Repo   *Repository
	Logger *Logger
}

// putChain registers Config, Logger, Database, Cache, Repository and
// Service, each depending on the ones before it.
func putChain(r *registry.Registry) {
	_ = registry.PutValue(r, &Config{Host: "localhost", Port: 8080})
	_ = registry.PutValue(r, &Logger{Level: "info"})
	_ = registry.Put(
		r, func(ctx context.Context, res registry.Resolver, _ registry.Params) (*Database, error) {
			cfg, _ := registry.Resolve[*Config](ctx, res)
			log, _ := registry.Resolve[*Logger](ctx, res)
			return &Database{Config: cfg, Logger: log}, nil
		}, registry.WithOnDispose((*Database).Close),
	)
	_ = registry.Put(
		r, func(ctx context.Context, res registry.Resolver, _ registry.Params) (*Cache, error) {
			log, _ := registry.Resolve[*Logger](ctx, res)
			return &Cache{Logger: log}, nil
		},
	)
	_ = registry.Put(
		r, func(ctx context.Context, res registry.Resolver, _ registry.Params) (*Repository, error) {
			db, _ := registry.Resolve[*Database](ctx, res)
			cache, _ := registry.Resolve[*Cache](ctx, res)
			return &Repository{DB: db, Cache: cache}, nil
		},
	)
	_ = registry.Put(
		r, func(ctx context.Context, res registry.Resolver, _ registry.Params) (*Service, error) {
			repo, _ := registry.Resolve[*Repository](ctx, res)
			log, _ := registry.Resolve[*Logger](ctx, res)
			return &Service{Repo: repo, Logger: log}, nil
		},
	)
}
