package allpairs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	da "github.com/lintang-b-s/navigatorx-tour/pkg/datastructure"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDisconnectedGraph = errors.New("graph is disconnected")
	ErrWeightOverflow    = errors.New("shortest path weight overflows float64")
)

// DisconnectedError. returned by Resolve when some pair of locations has no path.
// Components holds the location names of every connected component.
type DisconnectedError struct {
	Components [][]string
}

func (e *DisconnectedError) Error() string {
	parts := make([]string, 0, 2)
	for i := 0; i < len(e.Components) && i < 2; i++ {
		parts = append(parts, "{"+strings.Join(e.Components[i], ", ")+"}")
	}
	return fmt.Sprintf("%s: %d components, %s are not connected", ErrDisconnectedGraph.Error(), len(e.Components),
		strings.Join(parts, " and "))
}

func (e *DisconnectedError) Unwrap() error {
	return ErrDisconnectedGraph
}

type options struct {
	workers int
}

type Option func(*options)

// WithWorkers. relax the rows of each intermediate vertex with up to n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Table. minimal path weight between every pair of graph vertices, plus the next hop of each path.
type Table struct {
	n    int
	dist []float64
	next []int32
}

func newTable(n int) *Table {
	t := &Table{
		n:    n,
		dist: make([]float64, n*n),
		next: make([]int32, n*n),
	}
	for i := range t.dist {
		t.dist[i] = math.Inf(1)
		t.next[i] = -1
	}
	for i := 0; i < n; i++ {
		t.dist[i*n+i] = 0
		t.next[i*n+i] = int32(i)
	}
	return t
}

func (t *Table) Size() int {
	return t.n
}

func (t *Table) Dist(u, v int) float64 {
	return t.dist[u*t.n+v]
}

// Path. vertices of the shortest path u -> v, both ends included. nil if v is unreachable.
func (t *Table) Path(u, v int) []int {
	if t.next[u*t.n+v] < 0 {
		return nil
	}
	path := []int{u}
	for u != v {
		u = int(t.next[u*t.n+v])
		path = append(path, u)
	}
	return path
}

/*
Resolve. floyd-warshall all pairs shortest paths over the undirected graph g.

dist[i][j] starts at the direct edge weight (+Inf without an edge, 0 on the diagonal), then for every
intermediate vertex k in ascending order:

	dist[i][j] = min(dist[i][j], dist[i][k] + dist[k][j])

only a strict improvement replaces an entry. O(n^3) time, O(n^2) memory.
during iteration k row k and column k never change, so the rows of one iteration can be relaxed concurrently
and the result is identical to the sequential run.
*/
func Resolve(ctx context.Context, g *da.Graph, opts ...Option) (*Table, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumberOfVertices()
	t := newTable(n)
	if n == 0 {
		return t, nil
	}

	g.ForEdges(func(e *da.RouteEdge) {
		u, v := int(e.GetFrom()), int(e.GetTo())
		w := e.GetWeight()
		t.dist[u*n+v] = w
		t.dist[v*n+u] = w
		t.next[u*n+v] = int32(v)
		t.next[v*n+u] = int32(u)
	})

	workers := min(o.workers, n)
	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if workers <= 1 {
			t.relaxRows(k, 0, n)
			continue
		}

		eg := errgroup.Group{}
		eg.SetLimit(workers)
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			lo, hi := lo, min(lo+chunk, n)
			eg.Go(func() error {
				t.relaxRows(k, lo, hi)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	if err := t.checkConnected(g); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) relaxRows(k, lo, hi int) {
	n := t.n
	rowK := t.dist[k*n : (k+1)*n]
	for i := lo; i < hi; i++ {
		dik := t.dist[i*n+k]
		if math.IsInf(dik, 1) {
			continue
		}
		rowI := t.dist[i*n : (i+1)*n]
		nextI := t.next[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			if cand := dik + rowK[j]; cand < rowI[j] {
				rowI[j] = cand
				nextI[j] = nextI[k]
			}
		}
	}
}

func (t *Table) checkConnected(g *da.Graph) error {
	for _, d := range t.dist {
		if !math.IsInf(d, 1) {
			continue
		}
		components := g.ConnectedComponents()
		if len(components) <= 1 {
			return ErrWeightOverflow
		}
		named := make([][]string, len(components))
		for i, c := range components {
			named[i] = make([]string, len(c))
			for j, v := range c {
				named[i][j] = g.GetLocation(v).GetName()
			}
		}
		return &DisconnectedError{Components: named}
	}
	return nil
}
