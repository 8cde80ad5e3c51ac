package graph

// pair resolves two node names to ids.
func (g *Graph) pair(u, v string) (int, int, bool) {
	ui, ok := g.ids[u]
	if !ok {
		return 0, 0, false
	}
	vi, ok := g.ids[v]
	if !ok {
		return 0, 0, false
	}
	return ui, vi, true
}

// setFromIDs builds a Set from ids already in ascending order.
func (g *Graph) setFromIDs(ids []int) Set {
	if len(ids) == 0 {
		return Set{names: []string{}}
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.names[id]
	}
	return Set{names: names}
}

// CommonCollaborators returns the nodes adjacent to both u and v.
// Both nodes present with no shared neighbour gives an empty set, not an
// undefined result.
func (g *Graph) CommonCollaborators(u, v string) (Set, Status) {
	ui, vi, ok := g.pair(u, v)
	if !ok {
		return Set{}, StatusMissingNode
	}

	// Both lists are sorted: merge.
	a, b := g.adj[ui], g.adj[vi]
	var common []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			common = append(common, a[i])
			i++
			j++
		}
	}
	return g.setFromIDs(common), StatusOK
}

// expand runs k rounds of frontier expansion from src and returns the
// visited mask. Expansion stops early once the frontier is empty.
func (g *Graph) expand(src, k int) []bool {
	visited := make([]bool, len(g.names))
	visited[src] = true
	frontier := []int{src}

	for round := 0; round < k && len(frontier) > 0; round++ {
		var next []int
		for _, n := range frontier {
			for _, m := range g.adj[n] {
				if !visited[m] {
					visited[m] = true
					next = append(next, m)
				}
			}
		}
		frontier = next
	}
	return visited
}

// NeighborhoodAtMostK returns every node within k hops of u, u included.
// A k of zero or less yields {u}.
func (g *Graph) NeighborhoodAtMostK(u string, k int) (Set, Status) {
	id, ok := g.ids[u]
	if !ok {
		return Set{}, StatusMissingNode
	}

	visited := g.expand(id, k)
	var ids []int
	for n, seen := range visited {
		if seen {
			ids = append(ids, n)
		}
	}
	return g.setFromIDs(ids), StatusOK
}

// IsWithinDistance reports whether v is at most k hops from u.
// With k of zero or less it is true only when u and v are the same node.
func (g *Graph) IsWithinDistance(u, v string, k int) (bool, Status) {
	ui, vi, ok := g.pair(u, v)
	if !ok {
		return false, StatusMissingNode
	}
	if ui == vi {
		return true, StatusOK
	}
	if k <= 0 {
		return false, StatusOK
	}
	return g.expand(ui, k)[vi], StatusOK
}

// Distance returns the shortest-path hop count between u and v using a
// level-synchronous breadth-first search that stops as soon as v is seen.
func (g *Graph) Distance(u, v string) Distance {
	ui, vi, ok := g.pair(u, v)
	if !ok {
		return undefined(StatusMissingNode)
	}
	if ui == vi {
		return defined(0)
	}

	visited := make([]bool, len(g.names))
	visited[ui] = true
	frontier := []int{ui}

	for level := 0; len(frontier) > 0; level++ {
		var next []int
		for _, n := range frontier {
			for _, m := range g.adj[n] {
				if visited[m] {
					continue
				}
				if m == vi {
					return defined(level + 1)
				}
				visited[m] = true
				next = append(next, m)
			}
		}
		frontier = next
	}

	return undefined(StatusUnreachable)
}

// DistanceNaive computes the same value as Distance by testing
// IsWithinDistance for k = 1 .. Len()-1 and returning the first k that holds.
// It exists to cross-check Distance.
func (g *Graph) DistanceNaive(u, v string) Distance {
	if !g.Has(u) || !g.Has(v) {
		return undefined(StatusMissingNode)
	}
	if u == v {
		return defined(0)
	}

	for k := 1; k < g.Len(); k++ {
		if within, _ := g.IsWithinDistance(u, v, k); within {
			return defined(k)
		}
	}
	return undefined(StatusUnreachable)
}
