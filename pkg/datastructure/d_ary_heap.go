package datastructure

import (
	"errors"
	"math"
)

var ErrHeapEmpty = errors.New("heap is empty")

type PriorityQueueNode[T comparable] struct {
	rank    float64
	item    T
	itemPos int
}

func (p *PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

func (p *PriorityQueueNode[T]) SetRank(rank float64) {
	p.rank = rank
}

func (p *PriorityQueueNode[T]) SetPos(i int) {
	p.itemPos = i
}

func (p *PriorityQueueNode[T]) GetPos() int {
	return p.itemPos
}

func NewPriorityQueueNode[T comparable](rank float64, item T) *PriorityQueueNode[T] {
	return &PriorityQueueNode[T]{rank: rank, item: item}
}

// MinHeap. d-ary min heap with position tracking for DecreaseKey.
type MinHeap[T comparable] struct {
	heap []*PriorityQueueNode[T]
	d    int
}

func NewBinaryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](2)
}

func NewFourAryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](4)
}

func NewdAryHeap[T comparable](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]*PriorityQueueNode[T], 0),
		d:    d,
	}
}

func (h *MinHeap[T]) Preallocate(size int) {
	h.heap = make([]*PriorityQueueNode[T], 0, size)
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].rank < h.heap[h.parent(index)].rank {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown. swap with the smallest child until the heap property holds. O(d log_d n).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := min(leftMostChild+h.d, len(h.heap))

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.heap[i].rank < h.heap[smallest].rank {
				smallest = i
			}
		}

		if h.heap[smallest].rank >= h.heap[index].rank {
			return
		}
		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]

	h.heap[i].SetPos(i)
	h.heap[j].SetPos(j)
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) GetMin() (*PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return nil, ErrHeapEmpty
	}
	return h.heap[0], nil
}

// GetMinRank. +Inf when empty.
func (h *MinHeap[T]) GetMinRank() float64 {
	if h.IsEmpty() {
		return math.Inf(1)
	}
	return h.heap[0].rank
}

func (h *MinHeap[T]) Insert(key *PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	key.SetPos(index)
	h.heapifyUp(index)
}

// ExtractMin. pops the root. the popped node gets position -1.
func (h *MinHeap[T]) ExtractMin() (*PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return nil, ErrHeapEmpty
	}
	root := h.heap[0]

	h.Swap(0, h.Size()-1)

	h.heap = h.heap[:h.Size()-1]
	root.SetPos(-1)
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}

// DecreaseKey. lowers the rank of a node still in the heap.
func (h *MinHeap[T]) DecreaseKey(item *PriorityQueueNode[T], rank float64) error {
	itemPos := item.GetPos()
	if itemPos < 0 || itemPos >= h.Size() || h.heap[itemPos] != item || item.GetRank() < rank {
		return errors.New("invalid index or new value")
	}

	item.SetRank(rank)
	h.heapifyUp(itemPos)
	return nil
}
