package registry

import "github.com/adrianflutur/registry/internal/params"

// Params is the immutable ordered bag handed to builders. The zero value
// means no params.
type Params = params.Params

// NamedParams orders keys lexically; use OrderedParams to choose the order
// seen by index lookups.
func NamedParams(values map[string]any) Params {
	return params.Named(values)
}

func OrderedParams(keys []string, values map[string]any) Params {
	return params.Ordered(keys, values)
}

// ListParams stores values positionally under the keys "0", "1", ...
func ListParams(values ...any) Params {
	return params.List(values...)
}

func ParamsFromYAML(data []byte) (Params, error) {
	return params.FromYAML(data)
}

func ParamsFromJSON(data []byte) (Params, error) {
	return params.FromJSON(data)
}

func ParamsFromTOML(data []byte) (Params, error) {
	return params.FromTOML(data)
}

// ParamsFromFile picks a decoder by extension: .yaml, .yml, .json or .toml.
func ParamsFromFile(path string) (Params, error) {
	return params.FromFile(path)
}

func mergeParams(ps []Params) Params {
	var merged Params
	for _, p := range ps {
		merged = merged.Overlay(p)
	}
	return merged
}
