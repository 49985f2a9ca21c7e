package guidance

import da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"

type Graph interface {
	GetLocation(v da.Index) da.Location
	GetEdge(u, v da.Index) (*da.RouteEdge, bool)
}

// PathTable. shortest path between two vertices, both ends included.
type PathTable interface {
	Path(u, v int) []int
}
