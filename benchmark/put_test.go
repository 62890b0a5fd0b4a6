package benchmark

import (
	"testing"

	"github.com/samber/do/v2"
	"go.uber.org/dig"
	"go.uber.org/fx"

	"github.com/adrianflutur/registry"
)

func BenchmarkPut_Simple_Registry(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		r := registry.New()
		_ = registry.PutValue(r, &Config{Host: "localhost", Port: 8080})
	}
}

func BenchmarkPut_Simple_Do(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		injector := do.New()
		do.ProvideValue(injector, &Config{Host: "localhost", Port: 8080})
	}
}

func BenchmarkPut_Simple_Dig(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		c := dig.New()
		_ = c.Provide(func() *Config { return &Config{Host: "localhost", Port: 8080} })
	}
}

func BenchmarkPut_Simple_Fx(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = fx.New(
			fx.NopLogger,
			fx.Provide(func() *Config { return &Config{Host: "localhost", Port: 8080} }),
		)
	}
}

func BenchmarkPut_Chain_Registry(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		putChain(registry.New())
	}
}

func BenchmarkPut_Chain_Do(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		provideChainDo(do.New())
	}
}

func BenchmarkPut_Chain_Dig(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		provideChainDig(dig.New())
	}
}

func provideChainDo(injector do.Injector) {
	do.ProvideValue(injector, &Config{Host: "localhost", Port: 8080})
	do.ProvideValue(injector, &Logger{Level: "info"})
	do.Provide(
		injector, func(i do.Injector) (*Database, error) {
			return &Database{Config: do.MustInvoke[*Config](i), Logger: do.MustInvoke[*Logger](i)}, nil
		},
	)
	do.Provide(
		injector, func(i do.Injector) (*Cache, error) {
			return &Cache{Logger: do.MustInvoke[*Logger](i)}, nil
		},
	)
	do.Provide(
		injector, func(i do.Injector) (*Repository, error) {
			return &Repository{DB: do.MustInvoke[*Database](i), Cache: do.MustInvoke[*Cache](i)}, nil
		},
	)
	do.Provide(
		injector, func(i do.Injector) (*Service, error) {
			return &Service{Repo: do.MustInvoke[*Repository](i), Logger: do.MustInvoke[*Logger](i)}, nil
		},
	)
}

func provideChainDig(c *dig.Container) {
	_ = c.Provide(func() *Config { return &Config{Host: "localhost", Port: 8080} })
	_ = c.Provide(func() *Logger { return &Logger{Level: "info"} })
	_ = c.Provide(func(cfg *Config, log *Logger) *Database { return &Database{Config: cfg, Logger: log} })
	_ = c.Provide(func(log *Logger) *Cache { return &Cache{Logger: log} })
	_ = c.Provide(func(db *Database, cache *Cache) *Repository { return &Repository{DB: db, Cache: cache} })
	_ = c.Provide(func(repo *Repository, log *Logger) *Service { return &Service{Repo: repo, Logger: log} })
}
