package graph

import (
	"strings"
)

// collabAdjacency is the reference collaboration graph: three groups of
// actors (a), producers (p) and directors (d) wired so that a1 is the
// unique-by-name center with eccentricity 2 and the diameter is 3.
var collabAdjacency = map[string][]string{
	"a1": {"a2", "a3", "a4", "a7", "d1", "d2", "d3", "d4", "p1", "p2", "p3", "p6"},
	"a2": {"a1", "a3", "a4", "d1", "d2", "d3", "d4", "d5", "d6", "p1", "p2", "p3"},
	"a3": {"a1", "a2", "a4", "a5", "d1", "d2", "d3", "d4", "p1", "p2", "p3", "p4"},
	"a4": {"a1", "a2", "a3", "a6", "d4", "p5"},
	"a5": {"a3", "p4"},
	"a6": {"a4", "p5"},
	"a7": {"a1", "p6"},
	"d1": {"a1", "a2", "a3", "d2", "d3", "p1", "p2", "p3"},
	"d2": {"a1", "a2", "a3", "d1", "d3", "p1", "p2", "p3"},
	"d3": {"a1", "a2", "a3", "d1", "d2", "p1", "p2", "p3"},
	"d4": {"a1", "a2", "a3", "a4"},
	"d5": {"a2", "d6"},
	"d6": {"a2", "d5"},
	"p1": {"a1", "a2", "a3", "d1", "d2", "d3", "p2", "p3"},
	"p2": {"a1", "a2", "a3", "d1", "d2", "d3", "p1", "p3"},
	"p3": {"a1", "a2", "a3", "d1", "d2", "d3", "p1", "p2"},
	"p4": {"a3", "a5"},
	"p5": {"a4", "a6"},
	"p6": {"a1", "a7"},
}

const (
	collabNodes = 19
	collabEdges = 55
	collabFile  = "testdata/collab.jsonl"
)

func collabGraph() *Graph {
	return FromAdjacency(collabAdjacency)
}

// upperAdjacency returns the fixture with names as the record parser
// produces them ("a1" → "A1").
func upperAdjacency() map[string][]string {
	out := make(map[string][]string, len(collabAdjacency))
	for u, vs := range collabAdjacency {
		up := make([]string, len(vs))
		for i, v := range vs {
			up[i] = strings.ToUpper(v)
		}
		out[strings.ToUpper(u)] = up
	}
	return out
}

// adjacencyOf dumps a graph back to an adjacency mapping.
func adjacencyOf(g *Graph) map[string][]string {
	out := make(map[string][]string, g.Len())
	for _, name := range g.Names() {
		neighbors, _ := g.Neighbors(name)
		out[name] = neighbors
	}
	return out
}
