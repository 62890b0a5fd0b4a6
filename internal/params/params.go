// Package params implements the ordered, immutable parameter bag passed to
// builders at resolution time.
package params

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Params is an immutable ordered key/value bag. The zero value is the
// absent bag.
type Params struct {
	keys   []string
	values map[string]any
}

// Named builds a bag from a map. Keys are ordered lexically because map
// iteration order is random.
func Named(values map[string]any) Params {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Ordered(keys, values)
}

// Ordered builds a bag whose index order follows keys. Keys missing from
// values are stored with a nil value; duplicate keys keep their first
// position.
func Ordered(keys []string, values map[string]any) Params {
	if len(keys) == 0 {
		return Params{}
	}

	p := Params{
		keys:   make([]string, 0, len(keys)),
		values: make(map[string]any, len(keys)),
	}
	for _, k := range keys {
		if _, seen := p.values[k]; seen {
			continue
		}
		p.keys = append(p.keys, k)
		p.values[k] = values[k]
	}
	return p
}

// List builds a bag from positional values; position i is stored under "i".
func List(values ...any) Params {
	if len(values) == 0 {
		return Params{}
	}

	p := Params{
		keys:   make([]string, len(values)),
		values: make(map[string]any, len(values)),
	}
	for i, v := range values {
		k := strconv.Itoa(i)
		p.keys[i] = k
		p.values[k] = v
	}
	return p
}

func (p Params) IsZero() bool {
	return len(p.keys) == 0
}

func (p Params) Len() int {
	return len(p.keys)
}

// Keys returns a copy of the keys in insertion order.
func (p Params) Keys() []string {
	if len(p.keys) == 0 {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// ByName returns the value stored under name, or nil.
func (p Params) ByName(name string) any {
	v, _ := p.LookupName(name)
	return v
}

func (p Params) LookupName(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// ByIndex returns the i-th value in insertion order, or nil when i is out
// of range.
func (p Params) ByIndex(i int) any {
	v, _ := p.LookupIndex(i)
	return v
}

func (p Params) LookupIndex(i int) (any, bool) {
	if i < 0 || i >= len(p.keys) {
		return nil, false
	}
	return p.values[p.keys[i]], true
}

// Overlay returns a copy of p where keys present in other replace p's
// values in place and keys new to p are appended in other's order.
func (p Params) Overlay(other Params) Params {
	if other.IsZero() {
		return p
	}
	if p.IsZero() {
		return other
	}

	out := Params{
		keys:   make([]string, len(p.keys), len(p.keys)+len(other.keys)),
		values: make(map[string]any, len(p.keys)+len(other.keys)),
	}
	copy(out.keys, p.keys)
	for k, v := range p.values {
		out.values[k] = v
	}
	for _, k := range other.keys {
		if _, exists := out.values[k]; !exists {
			out.keys = append(out.keys, k)
		}
		out.values[k] = other.values[k]
	}
	return out
}

// String returns the string stored under key, or fallback when missing or
// not a string.
func (p Params) String(key, fallback string) string {
	if s, ok := p.values[key].(string); ok {
		return s
	}
	return fallback
}

// Int accepts any integer kind and integral floats, which is what YAML,
// TOML and JSON decoders produce.
func (p Params) Int(key string, fallback int) int {
	switch val := p.values[key].(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case uint:
		if uint64(val) <= math.MaxInt {
			return int(val)
		}
	case uint64:
		if val <= math.MaxInt {
			return int(val)
		}
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return fallback
}

func (p Params) Int64(key string, fallback int64) int64 {
	switch val := p.values[key].(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val)
		}
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
	}
	return fallback
}

func (p Params) Float(key string, fallback float64) float64 {
	switch val := p.values[key].(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return fallback
}

func (p Params) Bool(key string, fallback bool) bool {
	if b, ok := p.values[key].(bool); ok {
		return b
	}
	return fallback
}

// Duration accepts time.Duration, strings parsed by time.ParseDuration,
// and numbers interpreted as seconds.
func (p Params) Duration(key string, fallback time.Duration) time.Duration {
	switch val := p.values[key].(type) {
	case time.Duration:
		return val
	case string:
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	case int:
		return time.Duration(val) * time.Second
	case int64:
		return time.Duration(val) * time.Second
	case float64:
		return time.Duration(val * float64(time.Second))
	}
	return fallback
}

func (p Params) StringSlice(key string, fallback []string) []string {
	switch val := p.values[key].(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return fallback
			}
			result = append(result, s)
		}
		return result
	}
	return fallback
}

// Summary renders the bag as {k=v, ...} in insertion order.
func (p Params) Summary() string {
	if p.IsZero() {
		return "{}"
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, p.values[k])
	}
	b.WriteByte('}')
	return b.String()
}
