package concurrent

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapKeepsJobOrder(t *testing.T) {
	jobs := make([]int, 100)
	for i := range jobs {
		jobs[i] = i
	}

	var calls atomic.Int32
	out := Map(context.Background(), 8, jobs, func(ctx context.Context, job int) int {
		calls.Add(1)
		return job * job
	})

	assert.Equal(t, int32(100), calls.Load())
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestMapEmptyAndSingleWorker(t *testing.T) {
	out := Map(context.Background(), 4, []string{}, func(ctx context.Context, job string) int { return len(job) })
	assert.Empty(t, out)

	out = Map(context.Background(), 0, []string{"a", "bcd"}, func(ctx context.Context, job string) int { return len(job) })
	assert.Equal(t, []int{1, 3}, out)
}

func TestMapPassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := Map(ctx, 2, []int{1, 2, 3}, func(ctx context.Context, job int) error {
		return ctx.Err()
	})
	for _, err := range out {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
