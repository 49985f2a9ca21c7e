package concurrent

import (
	"context"
	"sync"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) G

type indexedJob[T any] struct {
	index int
	job   T
}

// Result. output of the job added with the same index.
type Result[G any] struct {
	Index int
	Value G
}

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan indexedJob[T]
	results    chan Result[G]
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan indexedJob[T], jobQueueSize),
		results:    make(chan Result[G], jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(ctx context.Context, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for j := range wp.jobQueue {
		wp.results <- Result[G]{Index: j.index, Value: jobFunc(ctx, j.job)}
	}
}

func (wp *WorkerPool[T, G]) Start(ctx context.Context, jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, jobFunc)
	}
}

// Wait. block until every worker returned, then close the results channel. call Close first.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(index int, job T) {
	wp.jobQueue <- indexedJob[T]{index: index, job: job}
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan Result[G] {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Map. apply jobFunc to every job with numWorkers goroutines. out[i] is the result of jobs[i].
func Map[T any, G any](ctx context.Context, numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](min(numWorkers, max(len(jobs), 1)), len(jobs))
	wp.Start(ctx, jobFunc)
	for i, job := range jobs {
		wp.AddJob(i, job)
	}
	wp.Close()
	wp.Wait()

	out := make([]G, len(jobs))
	for res := range wp.CollectResults() {
		out[res.Index] = res.Value
	}
	return out
}
