package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianflutur/registry"
)

func TestListParams(t *testing.T) {
	t.Parallel()

	p := registry.ListParams(10, "s")
	assert.Equal(t, 10, p.ByIndex(0))
	assert.Equal(t, "s", p.ByIndex(1))
	assert.Equal(t, "s", p.ByName("1"))
	assert.Nil(t, p.ByIndex(2))
}

func TestNamedParamsMissingKey(t *testing.T) {
	t.Parallel()

	p := registry.NamedParams(map[string]any{"k": 1})
	assert.Nil(t, p.ByName("missing"))
	assert.Equal(t, 1, p.ByName("k"))
}

func TestParamsFromFileFeedsBuilder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: example.org\nport: 9090\n"), 0o600))

	p, err := registry.ParamsFromFile(path)
	require.NoError(t, err)

	r := registry.New()
	registry.MustPut(
		r, func(_ context.Context, _ registry.Resolver, p registry.Params) (*Config, error) {
			return &Config{Host: p.String("host", ""), Port: p.Int("port", 0)}, nil
		},
	)

	cfg, err := registry.Get[*Config](r, p)
	require.NoError(t, err)
	assert.Equal(t, &Config{Host: "example.org", Port: 9090}, cfg)
}
