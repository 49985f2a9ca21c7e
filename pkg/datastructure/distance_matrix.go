package datastructure

// DistanceMatrix. dense n x n weights plus the node <-> index bijection used by the tour solver.
// node order is fixed at construction and never changes.
type DistanceMatrix struct {
	Matrix [][]float64
	Index  map[string]int
	Nodes  []string
}

// NewDistanceMatrix. Matrix[i][j] = dist(i, j) for i != j, the diagonal is 0.
func NewDistanceMatrix(nodes []string, dist func(i, j int) float64) *DistanceMatrix {
	n := len(nodes)
	dm := &DistanceMatrix{
		Matrix: make([][]float64, n),
		Index:  make(map[string]int, n),
		Nodes:  make([]string, n),
	}
	copy(dm.Nodes, nodes)

	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		dm.Index[nodes[i]] = i
		dm.Matrix[i] = flat[i*n : (i+1)*n : (i+1)*n]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dm.Matrix[i][j] = dist(i, j)
		}
	}
	return dm
}

func (dm *DistanceMatrix) Size() int {
	return len(dm.Nodes)
}

func (dm *DistanceMatrix) IndexOf(name string) (int, bool) {
	i, ok := dm.Index[name]
	return i, ok
}

// Names. node names of the index sequence order.
func (dm *DistanceMatrix) Names(order []int) []string {
	names := make([]string, len(order))
	for i, idx := range order {
		names[i] = dm.Nodes[idx]
	}
	return names
}
