package tsp

import (
	"fmt"
	"math"
)

const maxBruteForceNodes = 10

// BruteForce. try every visiting order of the non start locations. only for small matrices, used to verify
// SolveExact.
func BruteForce(m [][]float64, start int) (Tour, error) {
	if err := validateMatrix(m, start, MaxNodes); err != nil {
		return Tour{}, err
	}
	n := len(m)
	if n > maxBruteForceNodes {
		return Tour{}, fmt.Errorf("%w: brute force is limited to %d locations", ErrTooManyNodes, maxBruteForceNodes)
	}
	if n == 1 {
		return Tour{Order: []int{start}, Cost: 0}, nil
	}

	perm := make([]int, 0, n)
	perm = append(perm, start)
	for v := 0; v < n; v++ {
		if v != start {
			perm = append(perm, v)
		}
	}

	best := Tour{Cost: math.Inf(1)}
	permute(perm, 1, func(p []int) {
		if c := CycleCost(m, p); c < best.Cost {
			best = Tour{Order: append([]int(nil), p...), Cost: c}
		}
	})
	if best.Order == nil {
		return Tour{}, ErrNoHamiltonianCycle
	}
	return best, nil
}

// permute. every ordering of p[k:], p[:k] stays fixed.
func permute(p []int, k int, visit func(p []int)) {
	if k == len(p) {
		visit(p)
		return
	}
	for i := k; i < len(p); i++ {
		p[k], p[i] = p[i], p[k]
		permute(p, k+1, visit)
		p[k], p[i] = p[i], p[k]
	}
}
