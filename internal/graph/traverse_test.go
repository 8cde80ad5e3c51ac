package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Scenario(t *testing.T) {
	g := collabGraph()

	tests := []struct {
		u, v string
		want Distance
	}{
		{u: "a1", v: "a1", want: defined(0)},
		{u: "a1", v: "a2", want: defined(1)},
		{u: "a2", v: "a5", want: defined(2)},
		{u: "p5", v: "a7", want: defined(3)},
		{u: "z5", v: "z6", want: undefined(StatusMissingNode)},
		{u: "a1", v: "z6", want: undefined(StatusMissingNode)},
		{u: "z5", v: "z5", want: undefined(StatusMissingNode)},
	}

	for _, tt := range tests {
		t.Run(tt.u+"-"+tt.v, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Distance(tt.u, tt.v))
			assert.Equal(t, tt.want, g.DistanceNaive(tt.u, tt.v))
		})
	}
}

func TestDistance_Unreachable(t *testing.T) {
	g := FromAdjacency(map[string][]string{
		"x": {"y"},
		"u": {"v"},
	})

	d := g.Distance("x", "v")
	assert.False(t, d.Defined())
	assert.Equal(t, StatusUnreachable, d.Status)
	assert.Equal(t, d, g.DistanceNaive("x", "v"))
	assert.Equal(t, "undefined", d.String())
}

func TestDistance_MatchesNaive(t *testing.T) {
	graphs := map[string]*Graph{
		"collab": collabGraph(),
		"path": FromAdjacency(map[string][]string{
			"n0": {"n1"}, "n1": {"n2"}, "n2": {"n3"}, "n3": {"n4"}, "n4": {"n5"},
		}),
		"split": FromAdjacency(map[string][]string{
			"x": {"y", "z"}, "y": {"z"}, "u": {"v"}, "lone": nil,
		}),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			for _, u := range g.Names() {
				for _, v := range g.Names() {
					require.Equal(t, g.DistanceNaive(u, v), g.Distance(u, v), "distance(%s, %s)", u, v)
				}
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	g := collabGraph()
	for _, u := range g.Names() {
		for _, v := range g.Names() {
			require.Equal(t, g.Distance(u, v), g.Distance(v, u), "distance(%s, %s)", u, v)
		}
	}
}

func TestCommonCollaborators(t *testing.T) {
	g := collabGraph()

	got, status := g.CommonCollaborators("a1", "d1")
	require.Equal(t, StatusOK, status)
	assert.Equal(t, []string{"a2", "a3", "d2", "d3", "p1", "p2", "p3"}, got.Names())

	got, status = g.CommonCollaborators("a5", "a7")
	require.Equal(t, StatusOK, status)
	assert.Equal(t, 0, got.Len(), "disjoint neighbourhoods give an empty set")

	_, status = g.CommonCollaborators("a1", "z1")
	assert.Equal(t, StatusMissingNode, status)
	_, status = g.CommonCollaborators("z1", "a1")
	assert.Equal(t, StatusMissingNode, status)
}

func TestCommonCollaborators_Symmetric(t *testing.T) {
	g := collabGraph()
	for _, u := range g.Names() {
		for _, v := range g.Names() {
			uv, _ := g.CommonCollaborators(u, v)
			vu, _ := g.CommonCollaborators(v, u)
			require.True(t, uv.Equal(vu), "common(%s, %s) = %v, common(%s, %s) = %v", u, v, uv.Names(), v, u, vu.Names())
		}
	}
}

func TestNeighborhoodAtMostK(t *testing.T) {
	g := collabGraph()

	zero, status := g.NeighborhoodAtMostK("a5", 0)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, []string{"a5"}, zero.Names())

	one, _ := g.NeighborhoodAtMostK("a5", 1)
	assert.Equal(t, []string{"a3", "a5", "p4"}, one.Names())

	negative, _ := g.NeighborhoodAtMostK("a5", -2)
	assert.Equal(t, []string{"a5"}, negative.Names())

	two, _ := g.NeighborhoodAtMostK("a1", 2)
	assert.Equal(t, collabNodes, two.Len(), "a1 reaches everything within its eccentricity")

	large, _ := g.NeighborhoodAtMostK("p5", 50)
	assert.Equal(t, collabNodes, large.Len())

	_, status = g.NeighborhoodAtMostK("z1", 3)
	assert.Equal(t, StatusMissingNode, status)
}

func TestNeighborhoodAtMostK_Monotone(t *testing.T) {
	g := collabGraph()
	for _, u := range g.Names() {
		prev, _ := g.NeighborhoodAtMostK(u, 0)
		for k := 0; k <= 4; k++ {
			cur, _ := g.NeighborhoodAtMostK(u, k)
			require.True(t, cur.Contains(u), "neighbourhood(%s, %d) lacks %s", u, k, u)
			require.True(t, prev.IsSubset(cur), "neighbourhood(%s, %d) shrank", u, k)
			prev = cur
		}
	}
}

func TestIsWithinDistance(t *testing.T) {
	g := collabGraph()

	tests := []struct {
		name       string
		u, v       string
		k          int
		want       bool
		wantStatus Status
	}{
		{name: "self at k=0", u: "a1", v: "a1", k: 0, want: true},
		{name: "neighbour at k=0", u: "a1", v: "a2", k: 0, want: false},
		{name: "neighbour at k=1", u: "a1", v: "a2", k: 1, want: true},
		{name: "too far", u: "p5", v: "a7", k: 2, want: false},
		{name: "exact distance", u: "p5", v: "a7", k: 3, want: true},
		{name: "beyond distance", u: "p5", v: "a7", k: 9, want: true},
		{name: "missing", u: "a1", v: "z1", k: 3, want: false, wantStatus: StatusMissingNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := g.IsWithinDistance(tt.u, tt.v, tt.k)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWithinDistance_MatchesNeighborhood(t *testing.T) {
	g := collabGraph()
	for _, u := range g.Names() {
		for k := 0; k <= 3; k++ {
			hood, _ := g.NeighborhoodAtMostK(u, k)
			for _, v := range g.Names() {
				within, _ := g.IsWithinDistance(u, v, k)
				require.Equal(t, hood.Contains(v), within, "within(%s, %s, %d)", u, v, k)
			}
		}
	}
}

func TestDistance_JSON(t *testing.T) {
	data, err := defined(3).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))

	data, err = undefined(StatusUnreachable).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestSet(t *testing.T) {
	s := NewSet("b", "a", "b")
	assert.Equal(t, []string{"a", "b"}, s.Names())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.True(t, NewSet("a").IsSubset(s))
	assert.False(t, s.IsSubset(NewSet("a")))

	data, err := NewSet().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
