package datastructure

import (
	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
)

type Index uint32

type edgeKey struct {
	u, v Index
}

func newEdgeKey(u, v Index) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u: u, v: v}
}

/*
Graph. undirected, label-keyed transport network.

vertices keep their first-insertion order, which is the node order of every derived table (all-pairs table,
distance matrix). adding a location twice keeps the first one.
at most one edge per unordered pair of locations: adding an edge for a pair that already has one replaces it in
place (last seen wins) and counts an overwrite.
*/
type Graph struct {
	criterion costfunction.Criterion

	vertices    []Location
	vertexIndex map[string]Index

	edges      []*RouteEdge
	edgeIndex  map[edgeKey]int
	adjacency  [][]Index
	overwrites int
}

func NewGraph(criterion costfunction.Criterion) *Graph {
	return &Graph{
		criterion:   criterion,
		vertices:    make([]Location, 0),
		vertexIndex: make(map[string]Index),
		edges:       make([]*RouteEdge, 0),
		edgeIndex:   make(map[edgeKey]int),
		adjacency:   make([][]Index, 0),
	}
}

func (g *Graph) GetCriterion() costfunction.Criterion {
	return g.criterion
}

// AddLocation. returns the index of loc's name, inserting loc if the name is new.
func (g *Graph) AddLocation(loc Location) Index {
	if id, ok := g.vertexIndex[loc.GetName()]; ok {
		return id
	}
	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, loc)
	g.vertexIndex[loc.GetName()] = id
	g.adjacency = append(g.adjacency, make([]Index, 0, 2))
	return id
}

// AddEdge. insert e or replace the existing edge between the same pair. returns true when an edge was replaced.
// self loops are ignored.
func (g *Graph) AddEdge(e *RouteEdge) bool {
	if e.from == e.to {
		return false
	}
	key := newEdgeKey(e.from, e.to)
	if pos, ok := g.edgeIndex[key]; ok {
		g.edges[pos] = e
		g.overwrites++
		return true
	}
	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, e)
	g.adjacency[e.from] = append(g.adjacency[e.from], e.to)
	g.adjacency[e.to] = append(g.adjacency[e.to], e.from)
	return false
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

// NumberOfOverwrites. how many edges were replaced by a later record for the same pair.
func (g *Graph) NumberOfOverwrites() int {
	return g.overwrites
}

func (g *Graph) GetLocation(v Index) Location {
	return g.vertices[v]
}

func (g *Graph) GetIndex(name string) (Index, bool) {
	id, ok := g.vertexIndex[name]
	return id, ok
}

// GetNames. location names in insertion order.
func (g *Graph) GetNames() []string {
	names := make([]string, len(g.vertices))
	for i, loc := range g.vertices {
		names[i] = loc.GetName()
	}
	return names
}

func (g *Graph) GetLocations() []Location {
	locs := make([]Location, len(g.vertices))
	copy(locs, g.vertices)
	return locs
}

func (g *Graph) GetEdge(u, v Index) (*RouteEdge, bool) {
	pos, ok := g.edgeIndex[newEdgeKey(u, v)]
	if !ok {
		return nil, false
	}
	return g.edges[pos], true
}

func (g *Graph) GetNeighbors(v Index) []Index {
	return g.adjacency[v]
}

// ForEdges. visit edges in insertion order of their location pair.
func (g *Graph) ForEdges(handle func(e *RouteEdge)) {
	for _, e := range g.edges {
		handle(e)
	}
}
