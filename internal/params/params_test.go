package params

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	p := List(10, "s")

	assert.Equal(t, 10, p.ByIndex(0))
	assert.Equal(t, "s", p.ByIndex(1))
	assert.Equal(t, 10, p.ByName("0"))
	assert.Equal(t, "s", p.ByName("1"))
	assert.Nil(t, p.ByIndex(2))
	assert.Nil(t, p.ByIndex(-1))
	assert.Equal(t, []string{"0", "1"}, p.Keys())
}

func TestNamed(t *testing.T) {
	t.Parallel()

	p := Named(map[string]any{"k": 1, "b": 2})

	assert.Equal(t, 1, p.ByName("k"))
	assert.Nil(t, p.ByName("missing"))

	_, ok := p.LookupName("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "k"}, p.Keys(), "map keys are ordered lexically")
	assert.Equal(t, 2, p.ByIndex(0))
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	p := Ordered([]string{"z", "a", "z", "m"}, map[string]any{"z": 1, "a": 2})

	assert.Equal(t, []string{"z", "a", "m"}, p.Keys())
	v, ok := p.LookupName("m")
	assert.True(t, ok, "keys without values are still present")
	assert.Nil(t, v)
}

func TestZero(t *testing.T) {
	t.Parallel()

	var p Params

	assert.True(t, p.IsZero())
	assert.Zero(t, p.Len())
	assert.Nil(t, p.ByName("x"))
	assert.Nil(t, p.ByIndex(0))
	assert.Nil(t, p.Keys())
	assert.Equal(t, "{}", p.Summary())
	assert.True(t, List().IsZero())
	assert.True(t, Named(nil).IsZero())
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	base := Ordered([]string{"a", "b"}, map[string]any{"a": 1, "b": 2})
	over := Ordered([]string{"c", "a"}, map[string]any{"c": 3, "a": 10})

	got := base.Overlay(over)

	assert.Equal(t, []string{"a", "b", "c"}, got.Keys())
	assert.Equal(t, 10, got.ByName("a"))
	assert.Equal(t, 3, got.ByIndex(2))

	assert.Equal(t, 1, base.ByName("a"), "receiver is unchanged")
	assert.Equal(t, 2, base.Len())

	assert.Equal(t, base, base.Overlay(Params{}))
	assert.Equal(t, over, Params{}.Overlay(over))
}

func TestTypedAccessors(t *testing.T) {
	t.Parallel()

	p := Named(map[string]any{
		"name":     "db",
		"port":     5432,
		"port64":   int64(6543),
		"ratio":    0.5,
		"whole":    3.0,
		"enabled":  true,
		"timeout":  "1500ms",
		"seconds":  2,
		"hosts":    []any{"a", "b"},
		"mixed":    []any{"a", 1},
		"duration": 3 * time.Second,
	})

	assert.Equal(t, "db", p.String("name", "x"))
	assert.Equal(t, "x", p.String("port", "x"))
	assert.Equal(t, 5432, p.Int("port", 0))
	assert.Equal(t, 6543, p.Int("port64", 0))
	assert.Equal(t, 3, p.Int("whole", 0))
	assert.Equal(t, 7, p.Int("ratio", 7))
	assert.Equal(t, int64(5432), p.Int64("port", 0))
	assert.Equal(t, int64(9), p.Int64("missing", 9))
	assert.InDelta(t, 0.5, p.Float("ratio", 0), 1e-9)
	assert.InDelta(t, 5432.0, p.Float("port", 0), 1e-9)
	assert.True(t, p.Bool("enabled", false))
	assert.True(t, p.Bool("missing", true))
	assert.Equal(t, 1500*time.Millisecond, p.Duration("timeout", 0))
	assert.Equal(t, 2*time.Second, p.Duration("seconds", 0))
	assert.Equal(t, 3*time.Second, p.Duration("duration", 0))
	assert.Equal(t, time.Minute, p.Duration("name", time.Minute))
	assert.Equal(t, []string{"a", "b"}, p.StringSlice("hosts", nil))
	assert.Equal(t, []string{"z"}, p.StringSlice("mixed", []string{"z"}))
}

func TestIntegerOverflowFallsBack(t *testing.T) {
	t.Parallel()

	p := Named(map[string]any{
		"small": uint64(42),
		"huge":  uint64(math.MaxUint64),
		"edge":  uint64(math.MaxInt64) + 1,
	})

	assert.Equal(t, 42, p.Int("small", -1))
	assert.Equal(t, int64(42), p.Int64("small", -1))
	assert.Equal(t, -1, p.Int("huge", -1))
	assert.Equal(t, int64(-1), p.Int64("huge", -1))
	assert.Equal(t, -1, p.Int("edge", -1))
	assert.Equal(t, int64(-1), p.Int64("edge", -1))
}

func TestSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{0=10, 1=s}", List(10, "s").Summary())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	p, err := FromYAML([]byte("zeta: 1\nalpha: two\nnested:\n  x: 5\n"))
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"zeta", "alpha", "nested"}, p.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, p.Int("zeta", 0))
	assert.Equal(t, "two", p.ByIndex(1))
	assert.Equal(t, map[string]any{"x": 5}, p.ByName("nested"))

	list, err := FromYAML([]byte("- 10\n- s\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, list.ByIndex(0))
	assert.Equal(t, "s", list.ByName("1"))

	empty, err := FromYAML(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = FromYAML([]byte("just a scalar"))
	assert.Error(t, err)

	_, err = FromYAML([]byte("a: [1, 2"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	p, err := FromJSON([]byte(`{"b": 1, "a": "x", "c": [1, 2]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, p.Keys())
	assert.Equal(t, 1, p.Int("b", 0))
	assert.Equal(t, "x", p.String("a", ""))
}

func TestFromTOML(t *testing.T) {
	t.Parallel()

	p, err := FromTOML([]byte("port = 8080\nhost = \"localhost\"\ntimeout = \"2s\"\n\n[db]\nname = \"main\"\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"port", "host", "timeout", "db"}, p.Keys())
	assert.Equal(t, 8080, p.Int("port", 0))
	assert.Equal(t, int64(8080), p.ByName("port"))
	assert.Equal(t, 2*time.Second, p.Duration("timeout", 0))
	assert.Equal(t, map[string]any{"name": "main"}, p.ByName("db"))

	_, err = FromTOML([]byte("port = "))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := map[string]string{
		"p.yaml": "x: 5\n",
		"p.yml":  "x: 5\n",
		"p.json": `{"x": 5}`,
		"p.toml": "x = 5\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		p, err := FromFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, 5, p.Int("x", 0), name)
	}

	bad := filepath.Join(dir, "p.ini")
	require.NoError(t, os.WriteFile(bad, []byte("x=5"), 0o600))
	_, err := FromFile(bad)
	assert.ErrorContains(t, err, "unsupported params file extension")

	_, err = FromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read params file")
}
