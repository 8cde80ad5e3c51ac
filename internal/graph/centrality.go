package graph

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// farthest returns the number of BFS levels reachable from src, i.e. the
// largest shortest-path distance to any node in src's component. Nodes in
// other components are ignored. ctx is checked between levels.
func (g *Graph) farthest(ctx context.Context, src int) (int, error) {
	visited := make([]bool, len(g.names))
	visited[src] = true
	frontier := []int{src}
	depth := 0

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		var next []int
		for _, n := range frontier {
			for _, m := range g.adj[n] {
				if !visited[m] {
					visited[m] = true
					next = append(next, m)
				}
			}
		}
		if len(next) == 0 {
			return depth, nil
		}
		depth++
		frontier = next
	}
}

// Eccentricity returns the greatest distance from u to any node reachable
// from it. Unreachable nodes are left out of the maximum, so an isolated node
// has eccentricity 0.
func (g *Graph) Eccentricity(u string) Distance {
	id, ok := g.ids[u]
	if !ok {
		return undefined(StatusMissingNode)
	}
	ecc, _ := g.farthest(context.Background(), id)
	return defined(ecc)
}

// Centrality holds the eccentricity of every node of a graph.
type Centrality struct {
	g   *Graph
	ecc []int // indexed by node id
}

// Centrality computes every node's eccentricity, running one independent
// breadth-first search per node across at most workers goroutines
// (GOMAXPROCS when workers <= 0). The graph is only read, and each search
// owns its frontier and visited state.
func (g *Graph) Centrality(ctx context.Context, workers int) (*Centrality, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ecc := make([]int, len(g.names))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for id := range g.names {
		if egCtx.Err() != nil {
			break
		}
		id := id
		eg.Go(func() error {
			e, err := g.farthest(egCtx, id)
			if err != nil {
				return err
			}
			ecc[id] = e
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Centrality{g: g, ecc: ecc}, nil
}

// Eccentricity returns the precomputed eccentricity of name.
func (c *Centrality) Eccentricity(name string) Distance {
	id, ok := c.g.ids[name]
	if !ok {
		return undefined(StatusMissingNode)
	}
	return defined(c.ecc[id])
}

// Center returns the node of minimum eccentricity. Ties go to the
// lexicographically smallest name.
func (c *Centrality) Center() (string, Status) {
	if len(c.ecc) == 0 {
		return "", StatusEmptyGraph
	}
	best := 0
	// Ids follow name order, so the first strict minimum is the smallest name.
	for id := 1; id < len(c.ecc); id++ {
		if c.ecc[id] < c.ecc[best] {
			best = id
		}
	}
	return c.g.names[best], StatusOK
}

// Max returns the largest eccentricity over all nodes.
func (c *Centrality) Max() Distance {
	if len(c.ecc) == 0 {
		return undefined(StatusEmptyGraph)
	}
	largest := 0
	for _, e := range c.ecc {
		if e > largest {
			largest = e
		}
	}
	return defined(largest)
}

// Ranked is one entry of a centrality ranking.
type Ranked struct {
	Name         string `json:"name"`
	Eccentricity int    `json:"eccentricity"`
}

// Ranking lists nodes by increasing eccentricity, ties in name order.
// A limit <= 0 returns every node.
func (c *Centrality) Ranking(limit int) []Ranked {
	out := make([]Ranked, len(c.ecc))
	for id, e := range c.ecc {
		out[id] = Ranked{Name: c.g.names[id], Eccentricity: e}
	}
	// Stable sort keeps name order among equal eccentricities.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Eccentricity < out[j].Eccentricity
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Center returns the graph's center using all available CPUs.
func (g *Graph) Center() (string, Status) {
	c, err := g.Centrality(context.Background(), 0)
	if err != nil {
		return "", StatusEmptyGraph
	}
	return c.Center()
}

// MaxEccentricity returns the largest eccentricity in the graph.
func (g *Graph) MaxEccentricity() Distance {
	c, err := g.Centrality(context.Background(), 0)
	if err != nil {
		return undefined(StatusEmptyGraph)
	}
	return c.Max()
}
