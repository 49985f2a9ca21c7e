package datastructure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapOrder(t *testing.T) {
	for _, d := range []int{2, 4, 8} {
		h := NewdAryHeap[int](d)
		ranks := []float64{5, 3, 9, 1, 7, 2, 8, 6, 4, 0}
		for i, r := range ranks {
			h.Insert(NewPriorityQueueNode(r, i))
		}
		assert.Equal(t, len(ranks), h.Size())
		assert.Equal(t, 0.0, h.GetMinRank())

		prev := math.Inf(-1)
		for !h.IsEmpty() {
			node, err := h.ExtractMin()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, node.GetRank(), prev)
			assert.Equal(t, -1, node.GetPos())
			prev = node.GetRank()
		}
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[string]()
	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(5.0, "b")
	c := NewPriorityQueueNode(7.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(a, 1))
	top, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, "a", top.GetItem())

	assert.Error(t, h.DecreaseKey(c, 100))

	_, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Error(t, h.DecreaseKey(a, 0))
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewBinaryHeap[int]()
	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	_, err = h.GetMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	assert.True(t, math.IsInf(h.GetMinRank(), 1))
}
