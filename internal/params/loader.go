package params

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FromFile loads a bag from a file, picking the decoder by extension.
// Supported extensions: .yaml, .yml, .json, .toml
func FromFile(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read params file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	case ".toml":
		return FromTOML(data)
	default:
		return Params{}, fmt.Errorf("unsupported params file extension: %s", ext)
	}
}

// FromYAML decodes a top-level mapping into a named bag, keeping document
// order, or a top-level sequence into a positional bag.
func FromYAML(data []byte) (Params, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Params{}, fmt.Errorf("parse yaml params: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Params{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		keys := make([]string, 0, len(root.Content)/2)
		values := make(map[string]any, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			key := root.Content[i].Value
			var v any
			if err := root.Content[i+1].Decode(&v); err != nil {
				return Params{}, fmt.Errorf("decode params key %q: %w", key, err)
			}
			keys = append(keys, key)
			values[key] = v
		}
		return Ordered(keys, values), nil
	case yaml.SequenceNode:
		var items []any
		if err := root.Decode(&items); err != nil {
			return Params{}, fmt.Errorf("decode params list: %w", err)
		}
		return List(items...), nil
	default:
		return Params{}, fmt.Errorf("params document must be a mapping or a sequence, got %s", root.Tag)
	}
}

// FromJSON decodes JSON through the YAML decoder, which accepts JSON and
// keeps object key order.
func FromJSON(data []byte) (Params, error) {
	p, err := FromYAML(data)
	if err != nil {
		return Params{}, fmt.Errorf("parse json params: %w", err)
	}
	return p, nil
}

// FromTOML decodes a TOML document into a named bag, keeping the order of
// top-level keys.
func FromTOML(data []byte) (Params, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Params{}, fmt.Errorf("parse toml params: %w", err)
	}

	var keys []string
	for _, k := range md.Keys() {
		if len(k) == 1 {
			keys = append(keys, k[0])
		}
	}
	return Ordered(keys, raw), nil
}
