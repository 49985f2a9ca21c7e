package datastructure

import "slices"

// ConnectedComponents. connected components of the undirected graph, each sorted by vertex index.
// components are ordered by their smallest vertex.
func (g *Graph) ConnectedComponents() [][]Index {
	n := Index(len(g.vertices))
	visited := make([]bool, n)
	components := make([][]Index, 0, 1)

	stack := make([]Index, 0, n)
	for root := Index(0); root < n; root++ {
		if visited[root] {
			continue
		}
		component := make([]Index, 0, 8)
		visited[root] = true
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, v)
			for _, w := range g.adjacency[v] {
				if !visited[w] {
					visited[w] = true
					stack = append(stack, w)
				}
			}
		}
		slices.Sort(component)
		components = append(components, component)
	}
	return components
}
