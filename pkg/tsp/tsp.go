// Package tsp finds the minimum weight round trip over a dense distance matrix.
package tsp

import (
	"errors"
	"fmt"
	"math"
)

// MaxNodes. largest matrix SolveExact accepts. the cost and predecessor tables hold (n-1) * 2^(n-1) states of
// 9 bytes each: about 400 MB at n = 22, 3.6 GB at n = 25.
const MaxNodes = 22

var (
	ErrEmptyGraph         = errors.New("graph has no locations")
	ErrStartNotFound      = errors.New("start location not found")
	ErrNonSquare          = errors.New("distance matrix is not square")
	ErrInvalidWeight      = errors.New("distance matrix has a negative or NaN weight")
	ErrTooManyNodes       = errors.New("too many locations for the exact solver")
	ErrNoHamiltonianCycle = errors.New("no round trip visits every location")
)

// Tour. cyclic visiting order starting at the start index (start is not repeated at the end) and its total weight.
type Tour struct {
	Order []int
	Cost  float64
}

// Observer. called after each subset size level with the number of dp states computed on that level.
type Observer func(level, states int)

type options struct {
	workers  int
	maxNodes int
	observer Observer
}

type Option func(*options)

func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxNodes. lower the node limit. values above MaxNodes are ignored.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		if n > 0 && n <= MaxNodes {
			o.maxNodes = n
		}
	}
}

func WithObserver(f Observer) Option {
	return func(o *options) {
		o.observer = f
	}
}

func validateMatrix(m [][]float64, start, maxNodes int) error {
	n := len(m)
	if n == 0 {
		return ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return fmt.Errorf("%w: index %d, matrix has %d locations", ErrStartNotFound, start, n)
	}
	if n > maxNodes {
		return fmt.Errorf("%w: %d locations, limit is %d", ErrTooManyNodes, n, maxNodes)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, w := range row {
			if math.IsNaN(w) || w < 0 {
				return fmt.Errorf("%w: m[%d][%d] = %v", ErrInvalidWeight, i, j, w)
			}
		}
	}
	return nil
}

// CycleCost. total weight of the closed tour perm[0] -> perm[1] -> ... -> perm[0].
func CycleCost(m [][]float64, perm []int) float64 {
	if len(perm) < 2 {
		return 0
	}
	total := 0.0
	for i := range perm {
		total += m[perm[i]][perm[(i+1)%len(perm)]]
	}
	return total
}
