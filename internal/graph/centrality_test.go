package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEccentricity_Scenario(t *testing.T) {
	g := collabGraph()

	assert.Equal(t, defined(2), g.Eccentricity("a1"))
	assert.Equal(t, defined(3), g.Eccentricity("p5"))
	assert.Equal(t, undefined(StatusMissingNode), g.Eccentricity("z1"))
}

func TestEccentricity_MatchesDistances(t *testing.T) {
	g := collabGraph()
	for _, u := range g.Names() {
		want := 0
		for _, v := range g.Names() {
			if d := g.Distance(u, v); d.Defined() && d.Hops > want {
				want = d.Hops
			}
		}
		require.Equal(t, defined(want), g.Eccentricity(u), "eccentricity(%s)", u)
	}
}

func TestEccentricity_Disconnected(t *testing.T) {
	g := FromAdjacency(map[string][]string{
		"x":    {"y"},
		"y":    {"z"},
		"u":    {"v"},
		"lone": nil,
	})

	assert.Equal(t, defined(2), g.Eccentricity("x"), "unreachable nodes are ignored")
	assert.Equal(t, defined(1), g.Eccentricity("u"))
	assert.Equal(t, defined(0), g.Eccentricity("lone"))
}

func TestCenter_Scenario(t *testing.T) {
	g := collabGraph()

	center, status := g.Center()
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "a1", center)
	assert.Equal(t, defined(3), g.MaxEccentricity())
}

func TestCenter_EmptyGraph(t *testing.T) {
	g := NewBuilder().Graph()

	center, status := g.Center()
	assert.Equal(t, "", center)
	assert.Equal(t, StatusEmptyGraph, status)
	assert.Equal(t, undefined(StatusEmptyGraph), g.MaxEccentricity())
}

func TestCenter_TieBreakByName(t *testing.T) {
	// Every node of a cycle has the same eccentricity.
	g := FromAdjacency(map[string][]string{
		"delta":   {"alpha"},
		"alpha":   {"bravo"},
		"bravo":   {"charlie"},
		"charlie": {"delta"},
	})

	center, status := g.Center()
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "alpha", center)
}

func TestCentrality_WorkerCounts(t *testing.T) {
	g := collabGraph()

	for _, workers := range []int{0, 1, 3, 64} {
		c, err := g.Centrality(context.Background(), workers)
		require.NoError(t, err)

		center, _ := c.Center()
		assert.Equal(t, "a1", center, "workers=%d", workers)
		assert.Equal(t, defined(3), c.Max(), "workers=%d", workers)
		for _, name := range g.Names() {
			require.Equal(t, g.Eccentricity(name), c.Eccentricity(name), "workers=%d node=%s", workers, name)
		}
	}
}

func TestCentrality_Ranking(t *testing.T) {
	c, err := collabGraph().Centrality(context.Background(), 2)
	require.NoError(t, err)

	top := c.Ranking(5)
	want := []Ranked{
		{Name: "a1", Eccentricity: 2},
		{Name: "a2", Eccentricity: 2},
		{Name: "a3", Eccentricity: 2},
		{Name: "a4", Eccentricity: 2},
		{Name: "d4", Eccentricity: 2},
	}
	assert.Equal(t, want, top)

	all := c.Ranking(0)
	assert.Len(t, all, collabNodes)
	assert.Equal(t, 3, all[len(all)-1].Eccentricity)

	assert.Equal(t, undefined(StatusMissingNode), c.Eccentricity("z1"))
}

func TestCentrality_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := collabGraph().Centrality(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, c)
}
