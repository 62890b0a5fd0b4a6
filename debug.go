package registry

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrianflutur/registry/internal/graph"
)

type GraphInfo struct {
	Registrations []RegistrationInfo
}

// RegistrationInfo describes one registration. Dependencies and Dependents
// only reflect resolutions that have actually happened.
type RegistrationInfo struct {
	Key          Key
	ID           string
	Mode         Mode
	Instantiated bool
	Builds       int
	LastParams   Params
	Dependencies []Key
	Dependents   []Key
}

func (r *Registry) Graph() GraphInfo {
	graph := r.internal.Graph()
	keys := r.internal.Keys()

	registrations := make([]RegistrationInfo, 0, len(keys))
	for _, key := range keys {
		if info, ok := r.registrationInfo(graph, key); ok {
			registrations = append(registrations, info)
		}
	}

	return GraphInfo{Registrations: registrations}
}

func (r *Registry) Info(key Key) (RegistrationInfo, bool) {
	return r.registrationInfo(r.internal.Graph(), string(key))
}

func (r *Registry) registrationInfo(g *graph.Graph, key string) (RegistrationInfo, bool) {
	info, ok := r.internal.Info(key)
	if !ok {
		return RegistrationInfo{}, false
	}

	return RegistrationInfo{
		Key:          Key(key),
		ID:           info.ID,
		Mode:         info.Mode,
		Instantiated: info.Instantiated,
		Builds:       info.Builds,
		LastParams:   info.LastParams,
		Dependencies: toKeys(g.GetDependencies(key)),
		Dependents:   toKeys(g.GetDependents(key)),
	}, true
}

func (r *Registry) PrintGraph() {
	r.FprintGraph(os.Stdout)
}

func (r *Registry) FprintGraph(w io.Writer) {
	info := r.Graph()

	if len(info.Registrations) == 0 {
		_, _ = fmt.Fprintln(w, "(empty registry)")
		return
	}

	for _, reg := range info.Registrations {
		status := "○"
		if reg.Instantiated {
			status = "●"
		}

		line := fmt.Sprintf("%s %s [%s]", status, reg.Key, reg.Mode)
		if len(reg.Dependencies) > 0 {
			line += " ← " + joinKeys(reg.Dependencies)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

func (r *Registry) SprintGraph() string {
	var sb strings.Builder
	r.FprintGraph(&sb)
	return sb.String()
}

func (r *Registry) PrintGraphDOT() {
	r.FprintGraphDOT(os.Stdout)
}

func (r *Registry) FprintGraphDOT(w io.Writer) {
	info := r.Graph()

	_, _ = fmt.Fprintln(w, "digraph registry {")
	_, _ = fmt.Fprintln(w, "  rankdir=LR;")
	_, _ = fmt.Fprintln(w, "  node [shape=box];")

	for _, reg := range info.Registrations {
		style := ""
		if reg.Instantiated {
			style = ", style=filled, fillcolor=lightblue"
		}
		if !reg.Mode.Caches() {
			style += ", shape=ellipse"
		}
		_, _ = fmt.Fprintf(w, "  %q [label=%q%s];\n", string(reg.Key), escapeLabel(string(reg.Key)), style)
	}

	_, _ = fmt.Fprintln(w)

	for _, reg := range info.Registrations {
		for _, dep := range reg.Dependencies {
			_, _ = fmt.Fprintf(w, "  %q -> %q;\n", string(reg.Key), string(dep))
		}
	}

	_, _ = fmt.Fprintln(w, "}")
}

func (r *Registry) SprintGraphDOT() string {
	var sb strings.Builder
	r.FprintGraphDOT(&sb)
	return sb.String()
}

// escapeLabel trims pointer stars and the import path, keeping the name.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	if idx := strings.LastIndex(s, "/"); idx != -1 {
		s = s[idx+1:]
	}
	return s
}

func toKeys(ids []string) []Key {
	keys := make([]Key, len(ids))
	for i, id := range ids {
		keys[i] = Key(id)
	}
	return keys
}

func joinKeys(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
