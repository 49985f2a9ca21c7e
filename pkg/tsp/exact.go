package tsp

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// minimum number of subsets handed to one goroutine.
const minChunk = 512

/*
SolveExact. held-karp dynamic programming over the n x n matrix m, anchored at start.

the non start locations get local indices 0..r-1 (r = n-1, ascending by matrix index). a state (S, k) is a
subset S of them that contains k:

	C(S, k) = minimum weight of a path from start that visits exactly S and ends at k
	C({k}, k) = m[start][k]
	C(S, k) = min over j in S\{k} of C(S\{k}, j) + m[j][k]

the answer is min over k of C(all, k) + m[k][start]. only the minimizing predecessor of each state is kept
and the tour is rebuilt once at the end. ties go to the smallest index.
time O(n^2 * 2^n), memory O(n * 2^n).

subsets of the same size only depend on the previous size, so each level can be split across workers. the
result does not depend on the number of workers.
*/
func SolveExact(ctx context.Context, m [][]float64, start int, opts ...Option) (Tour, error) {
	o := options{workers: 1, maxNodes: MaxNodes}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateMatrix(m, start, o.maxNodes); err != nil {
		return Tour{}, err
	}

	n := len(m)
	if n == 1 {
		return Tour{Order: []int{start}, Cost: 0}, nil
	}

	s := newHeldKarp(m, start)
	for level := 1; level <= s.r; level++ {
		if err := ctx.Err(); err != nil {
			return Tour{}, err
		}
		masks := subsetsOfSize(s.r, level)
		if err := s.solveLevel(masks, o.workers); err != nil {
			return Tour{}, err
		}
		if o.observer != nil {
			o.observer(level, len(masks)*level)
		}
	}

	return s.tour()
}

type heldKarp struct {
	m      [][]float64
	start  int
	r      int
	others []int
	cost   []float64
	pred   []int8
}

func newHeldKarp(m [][]float64, start int) *heldKarp {
	n := len(m)
	r := n - 1
	others := make([]int, 0, r)
	for v := 0; v < n; v++ {
		if v != start {
			others = append(others, v)
		}
	}

	size := (1 << r) * r
	s := &heldKarp{
		m:      m,
		start:  start,
		r:      r,
		others: others,
		cost:   make([]float64, size),
		pred:   make([]int8, size),
	}
	return s
}

func (s *heldKarp) solveLevel(masks []uint32, workers int) error {
	if workers <= 1 || len(masks) < 2*minChunk {
		s.relaxMasks(masks)
		return nil
	}

	chunk := max((len(masks)+workers-1)/workers, minChunk)
	eg := errgroup.Group{}
	eg.SetLimit(workers)
	for lo := 0; lo < len(masks); lo += chunk {
		part := masks[lo:min(lo+chunk, len(masks))]
		eg.Go(func() error {
			s.relaxMasks(part)
			return nil
		})
	}
	return eg.Wait()
}

// relaxMasks. fill C(S, k) for every subset S of masks and every k in S. the subsets one element smaller must
// already be solved.
func (s *heldKarp) relaxMasks(masks []uint32) {
	r := s.r
	for _, mask := range masks {
		base := int(mask) * r
		for k := 0; k < r; k++ {
			bit := uint32(1) << k
			if mask&bit == 0 {
				continue
			}
			to := s.others[k]
			prev := mask ^ bit
			if prev == 0 {
				s.cost[base+k] = s.m[s.start][to]
				s.pred[base+k] = -1
				continue
			}

			best, bestPred := math.Inf(1), int8(-1)
			prevBase := int(prev) * r
			for j := 0; j < r; j++ {
				if prev&(1<<j) == 0 {
					continue
				}
				if c := s.cost[prevBase+j] + s.m[s.others[j]][to]; c < best {
					best, bestPred = c, int8(j)
				}
			}
			s.cost[base+k] = best
			s.pred[base+k] = bestPred
		}
	}
}

func (s *heldKarp) tour() (Tour, error) {
	r := s.r
	full := uint32(1)<<r - 1
	base := int(full) * r

	best, last := math.Inf(1), -1
	for k := 0; k < r; k++ {
		if c := s.cost[base+k] + s.m[s.others[k]][s.start]; c < best {
			best, last = c, k
		}
	}
	if last < 0 {
		return Tour{}, ErrNoHamiltonianCycle
	}

	order := make([]int, r+1)
	order[0] = s.start
	mask, k := full, last
	for i := r; i >= 1; i-- {
		order[i] = s.others[k]
		p := s.pred[int(mask)*r+k]
		mask ^= 1 << k
		k = int(p)
	}

	return Tour{Order: order, Cost: best}, nil
}

// subsetsOfSize. every r bit mask with exactly size bits set, ascending.
func subsetsOfSize(r, size int) []uint32 {
	masks := make([]uint32, 0, binomial(r, size))
	limit := uint64(1) << r
	x := uint64(1)<<size - 1
	for x < limit {
		masks = append(masks, uint32(x))
		c := x & -x
		y := x + c
		x = (((y ^ x) >> 2) / c) | y
	}
	return masks
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}
