// Package graph builds the undirected collaboration graph from credit records
// and answers proximity queries over it.
//
// A Graph is immutable once built. Queries never mutate it, so one Graph may
// be read from several goroutines at once.
package graph

import (
	"sort"
	"strings"

	"github.com/matsen/bacon/internal/credit"
)

// Graph is an undirected, unweighted, simple graph of participants.
//
// Names are interned to dense ids assigned in lexicographic order, so id
// order is name order. Neighbour lists are sorted by id.
type Graph struct {
	names  []string
	ids    map[string]int
	folded map[string]int // lower-cased name -> id, for Lookup
	adj    [][]int
	edges  int
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.names)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Has reports whether name is a node of the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.ids[name]
	return ok
}

// Names returns every node name in sorted order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Neighbors returns the direct collaborators of name in sorted order.
// The status is StatusMissingNode when name is not in the graph.
func (g *Graph) Neighbors(name string) ([]string, Status) {
	id, ok := g.ids[name]
	if !ok {
		return nil, StatusMissingNode
	}
	out := make([]string, len(g.adj[id]))
	for i, n := range g.adj[id] {
		out[i] = g.names[n]
	}
	return out, StatusOK
}

// Degree returns the number of collaborators of name, or -1 if absent.
func (g *Graph) Degree(name string) int {
	id, ok := g.ids[name]
	if !ok {
		return -1
	}
	return len(g.adj[id])
}

// Lookup resolves user input to a node name.
//
// Matching rules, first hit wins:
//   - exact node name
//   - the normalized form of the input ("kevin bacon (actor)" → "Kevin Bacon")
//   - case-insensitive match on the node name
func (g *Graph) Lookup(input string) (string, bool) {
	if _, ok := g.ids[input]; ok {
		return input, true
	}
	if norm := credit.Normalize(input); norm != input {
		if _, ok := g.ids[norm]; ok {
			return norm, true
		}
	}
	if id, ok := g.folded[strings.ToLower(strings.TrimSpace(input))]; ok {
		return g.names[id], true
	}
	return "", false
}

// Components returns the number of connected components.
func (g *Graph) Components() int {
	seen := make([]bool, len(g.names))
	count := 0
	for id := range g.names {
		if seen[id] {
			continue
		}
		count++
		seen[id] = true
		stack := []int{id}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, m := range g.adj[n] {
				if !seen[m] {
					seen[m] = true
					stack = append(stack, m)
				}
			}
		}
	}
	return count
}

// Builder accumulates nodes and edges before freezing them into a Graph.
// The edge relation is a set: repeated insertions are ignored, as are self
// loops.
type Builder struct {
	adj map[string]map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{adj: make(map[string]map[string]struct{})}
}

// AddNode adds name as a node without edges. Adding an existing node is a no-op.
func (b *Builder) AddNode(name string) {
	if _, ok := b.adj[name]; !ok {
		b.adj[name] = make(map[string]struct{})
	}
}

// AddEdge connects u and v, adding either endpoint as needed.
func (b *Builder) AddEdge(u, v string) {
	if u == v {
		return
	}
	b.AddNode(u)
	b.AddNode(v)
	b.adj[u][v] = struct{}{}
	b.adj[v][u] = struct{}{}
}

// AddClique connects every unordered pair of distinct names. Names are
// expected to be distinct already; duplicates only produce ignored self loops.
func (b *Builder) AddClique(names []string) {
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			b.AddEdge(names[i], names[j])
		}
	}
}

// Graph freezes the accumulated nodes and edges. The Builder may keep being
// used afterwards; the returned Graph does not share state with it.
func (b *Builder) Graph() *Graph {
	names := make([]string, 0, len(b.adj))
	for name := range b.adj {
		names = append(names, name)
	}
	sort.Strings(names)

	g := &Graph{
		names:  names,
		ids:    make(map[string]int, len(names)),
		folded: make(map[string]int, len(names)),
		adj:    make([][]int, len(names)),
	}
	for id, name := range names {
		g.ids[name] = id
		key := strings.ToLower(name)
		// Sorted insertion keeps the smallest name on case-only collisions.
		if _, dup := g.folded[key]; !dup {
			g.folded[key] = id
		}
	}

	for id, name := range names {
		neighbors := make([]int, 0, len(b.adj[name]))
		for other := range b.adj[name] {
			neighbors = append(neighbors, g.ids[other])
		}
		sort.Ints(neighbors)
		g.adj[id] = neighbors
		g.edges += len(neighbors)
	}
	g.edges /= 2

	return g
}

// FromAdjacency builds a graph from an adjacency mapping. Names are used
// verbatim; the relation is made symmetric and self loops are dropped. Keys
// with no neighbours become isolated nodes.
func FromAdjacency(adjacency map[string][]string) *Graph {
	b := NewBuilder()
	for u, vs := range adjacency {
		b.AddNode(u)
		for _, v := range vs {
			b.AddEdge(u, v)
		}
	}
	return b.Graph()
}
