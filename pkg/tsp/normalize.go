package tsp

import (
	"fmt"
	"slices"
)

// Rotate. cyclic rotation of perm that begins at start. the direction of travel is kept.
func Rotate(perm []int, start int) ([]int, error) {
	pos := slices.Index(perm, start)
	if pos < 0 {
		return nil, fmt.Errorf("%w: index %d is not on the tour", ErrStartNotFound, start)
	}
	rotated := make([]int, 0, len(perm))
	rotated = append(rotated, perm[pos:]...)
	rotated = append(rotated, perm[:pos]...)
	return rotated, nil
}

// Normalize. rotate perm to begin at start and map every index to its location name.
func Normalize(perm []int, start int, nodes []string) ([]string, error) {
	rotated, err := Rotate(perm, start)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(rotated))
	for i, idx := range rotated {
		if idx < 0 || idx >= len(nodes) {
			return nil, fmt.Errorf("tour index %d out of range, %d locations", idx, len(nodes))
		}
		names[i] = nodes[idx]
	}
	return names, nil
}
