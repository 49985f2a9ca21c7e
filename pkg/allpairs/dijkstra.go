package allpairs

import (
	"context"
	"math"

	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"golang.org/x/sync/errgroup"
)

/*
ResolveDijkstra. all pairs shortest paths by one dijkstra search per source vertex, using a 4-ary heap.
O(n (n + m) log n), cheaper than Resolve on sparse graphs. every source writes only its own row of the
table, so sources run concurrently without synchronization.
distances equal Resolve's up to float rounding. when two paths tie, the chosen next hop may differ.
*/
func ResolveDijkstra(ctx context.Context, g *da.Graph, opts ...Option) (*Table, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumberOfVertices()
	t := newTable(n)
	if n == 0 {
		return t, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(min(o.workers, n), 1))
	for s := 0; s < n; s++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t.shortestPathTree(g, s)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := t.checkConnected(g); err != nil {
		return nil, err
	}
	return t, nil
}

// shortestPathTree. fills row s of dist and next.
func (t *Table) shortestPathTree(g *da.Graph, s int) {
	n := t.n
	dist := t.dist[s*n : (s+1)*n]
	next := t.next[s*n : (s+1)*n]

	nodes := make([]*da.PriorityQueueNode[da.Index], n)
	settled := make([]bool, n)
	pq := da.NewFourAryHeap[da.Index]()
	pq.Preallocate(n)

	nodes[s] = da.NewPriorityQueueNode(0, da.Index(s))
	pq.Insert(nodes[s])

	for !pq.IsEmpty() {
		node, _ := pq.ExtractMin()
		u := node.GetItem()
		settled[u] = true

		for _, v := range g.GetNeighbors(u) {
			if settled[v] {
				continue
			}
			e, _ := g.GetEdge(u, v)
			cand := node.GetRank() + e.GetWeight()
			if cand >= dist[v] {
				continue
			}
			dist[v] = cand
			if int(u) == s {
				next[v] = int32(v)
			} else {
				next[v] = next[u]
			}

			if nodes[v] == nil {
				nodes[v] = da.NewPriorityQueueNode(cand, v)
				pq.Insert(nodes[v])
			} else {
				pq.DecreaseKey(nodes[v], cand)
			}
		}
	}

	for v := range dist {
		if math.IsInf(dist[v], 1) {
			next[v] = -1
		}
	}
}
