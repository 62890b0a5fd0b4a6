// Package graph records which registrations were resolved from inside which
// builders. Edges point from a dependent to its dependency.
package graph

import (
	"slices"
	"sort"
)

type Graph struct {
	nodes map[string]struct{}
	edges map[string][]string
}

func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[string][]string),
	}
}

// AddNode registers id with no recorded dependencies. Existing outgoing
// edges of id are dropped, since a new builder may resolve different types.
func (g *Graph) AddNode(id string) {
	g.nodes[id] = struct{}{}
	delete(g.edges, id)
}

// AddEdge records that from depends on to. Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to string) {
	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// RemoveNode drops id and its outgoing edges. Edges pointing at id are
// kept so they apply again if id is registered anew.
func (g *Graph) RemoveNode(id string) {
	delete(g.nodes, id)
	delete(g.edges, id)
}

func (g *Graph) HasNode(id string) bool {
	_, exists := g.nodes[id]
	return exists
}

func (g *Graph) GetDependencies(id string) []string {
	deps, exists := g.edges[id]
	if !exists {
		return nil
	}

	result := make([]string, len(deps))
	copy(result, deps)
	sort.Strings(result)
	return result
}

func (g *Graph) GetDependents(id string) []string {
	var dependents []string
	for nodeID, deps := range g.edges {
		if _, exists := g.nodes[nodeID]; !exists {
			continue
		}
		if slices.Contains(deps, id) {
			dependents = append(dependents, nodeID)
		}
	}
	sort.Strings(dependents)
	return dependents
}

func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)
	return nodes
}

func (g *Graph) Size() int {
	return len(g.nodes)
}

func (g *Graph) Clear() {
	g.nodes = make(map[string]struct{})
	g.edges = make(map[string][]string)
}

func (g *Graph) Clone() *Graph {
	clone := New()
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	for id, deps := range g.edges {
		d := make([]string, len(deps))
		copy(d, deps)
		clone.edges[id] = d
	}
	return clone
}
