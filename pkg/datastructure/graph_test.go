package datastructure

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-tour/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(names ...string) (*Graph, []Index) {
	g := NewGraph(costfunction.Time)
	ids := make([]Index, len(names))
	for i, name := range names {
		ids[i] = g.AddLocation(NewLocation(name, geo.NewCoordinate(float64(i), float64(i))))
	}
	return g, ids
}

func TestAddLocationIdempotent(t *testing.T) {
	g := NewGraph(costfunction.Cost)
	a := g.AddLocation(NewLocation("A", geo.NewCoordinate(1, 2)))
	b := g.AddLocation(NewLocation("B", geo.NewCoordinate(3, 4)))
	again := g.AddLocation(NewLocation("A", geo.NewCoordinate(50, 60)))

	assert.Equal(t, a, again)
	assert.Equal(t, Index(1), b)
	assert.Equal(t, 2, g.NumberOfVertices())
	assert.Equal(t, geo.NewCoordinate(1, 2), g.GetLocation(a).GetCoordinate())
	assert.Equal(t, []string{"A", "B"}, g.GetNames())
	assert.Equal(t, costfunction.Cost, g.GetCriterion())
}

func TestAddEdgeLastSeenWins(t *testing.T) {
	g, ids := newTestGraph("A", "B", "C")

	first := NewRouteEdge(ids[0], ids[1], 10, 40, 2, "bus")
	first.SetWeight(0.25)
	assert.False(t, g.AddEdge(first))
	assert.False(t, g.AddEdge(NewRouteEdge(ids[1], ids[2], 5, 50, 1, "train")))

	second := NewRouteEdge(ids[1], ids[0], 10, 80, 3, "taxi")
	second.SetWeight(0.125)
	assert.True(t, g.AddEdge(second))

	require.Equal(t, 2, g.NumberOfEdges())
	assert.Equal(t, 1, g.NumberOfOverwrites())

	e, ok := g.GetEdge(ids[0], ids[1])
	require.True(t, ok)
	assert.Equal(t, "taxi", e.GetTravelMode())
	assert.InDelta(t, 0.125, e.GetWeight(), 1e-12)

	// the pair keeps its original position and adjacency is not duplicated
	var modes []string
	g.ForEdges(func(e *RouteEdge) { modes = append(modes, e.GetTravelMode()) })
	assert.Equal(t, []string{"taxi", "train"}, modes)
	assert.Equal(t, []Index{ids[1]}, g.GetNeighbors(ids[0]))
}

func TestAddEdgeIgnoresSelfLoop(t *testing.T) {
	g, ids := newTestGraph("A")
	assert.False(t, g.AddEdge(NewRouteEdge(ids[0], ids[0], 0, 10, 1, "walk")))
	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestRouteEdgeDerivedValues(t *testing.T) {
	e := NewRouteEdge(0, 1, 12, 40, 2, "bus")
	assert.InDelta(t, 0.3, e.GetTime(), 1e-12)
	assert.InDelta(t, 24.0, e.GetCost(), 1e-12)
	assert.Equal(t, Index(1), e.Other(0))
	assert.Equal(t, Index(0), e.Other(1))
}

func TestConnectedComponents(t *testing.T) {
	testCases := []struct {
		name  string
		edges [][2]int
		n     int
		want  [][]Index
	}{
		{
			name: "empty graph",
			n:    0,
			want: [][]Index{},
		},
		{
			name: "single vertex",
			n:    1,
			want: [][]Index{{0}},
		},
		{
			name:  "path",
			n:     4,
			edges: [][2]int{{0, 1}, {1, 2}, {2, 3}},
			want:  [][]Index{{0, 1, 2, 3}},
		},
		{
			name:  "two components",
			n:     5,
			edges: [][2]int{{0, 2}, {1, 3}, {3, 4}},
			want:  [][]Index{{0, 2}, {1, 3, 4}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, tt.n)
			for i := range names {
				names[i] = string(rune('A' + i))
			}
			g, ids := newTestGraph(names...)
			for _, e := range tt.edges {
				g.AddEdge(NewRouteEdge(ids[e[0]], ids[e[1]], 1, 1, 1, "bus"))
			}
			assert.Equal(t, tt.want, g.ConnectedComponents())
		})
	}
}

func TestRouteRecordCoordinates(t *testing.T) {
	r := NewRouteRecord("A", geo.NewCoordinate(37.5, 126.9), "B", geo.NewCoordinate(37.6, 127.0), 40, 2, "bus")
	c1, err := r.Coordinate1()
	require.NoError(t, err)
	assert.Equal(t, geo.NewCoordinate(37.5, 126.9), c1)

	r.Coordinates2 = []float64{37.6}
	_, err = r.Coordinate2()
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	r.Coordinates2 = []float64{91, 0}
	_, err = r.Coordinate2()
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestDistanceMatrix(t *testing.T) {
	nodes := []string{"home", "x", "y"}
	dm := NewDistanceMatrix(nodes, func(i, j int) float64 { return float64(10*i + j) })

	require.Equal(t, 3, dm.Size())
	for i := range nodes {
		assert.Equal(t, 0.0, dm.Matrix[i][i])
		idx, ok := dm.IndexOf(nodes[i])
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, 12.0, dm.Matrix[1][2])
	assert.Equal(t, 21.0, dm.Matrix[2][1])
	assert.Equal(t, []string{"y", "home"}, dm.Names([]int{2, 0}))

	_, ok := dm.IndexOf("z")
	assert.False(t, ok)

	// appending to a row must not spill into the next one
	dm.Matrix[0] = append(dm.Matrix[0], 99)
	assert.Equal(t, 10.0, dm.Matrix[1][0])
}
