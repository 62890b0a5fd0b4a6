package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/adrianflutur/registry"
	"github.com/adrianflutur/registry/observability"
)

type demoConfig struct {
	LogLevel slog.Level
	Params   registry.Params
}

// loadConfig reads envFiles into the environment without overriding
// variables that are already set, then applies flag overrides.
func loadConfig(envFiles []string, paramsOverride, levelOverride string) (*demoConfig, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &demoConfig{LogLevel: slog.LevelInfo}

	level := env("REGISTRY_LOG_LEVEL", "info")
	if levelOverride != "" {
		level = levelOverride
	}
	parsed, err := observability.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = parsed

	path := env("REGISTRY_PARAMS", "")
	if paramsOverride != "" {
		path = paramsOverride
	}
	if path != "" {
		p, err := registry.ParamsFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Params = p
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
