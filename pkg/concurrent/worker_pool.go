package concurrent

import (
	"context"
	"sync"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) (G, error)

type indexedJob[T any] struct {
	index int
	job   T
}

// WorkerPool runs jobs on a fixed number of goroutines. results keep the order of the jobs.
type WorkerPool[T any, G any] struct {
	numWorkers int
	wg         sync.WaitGroup
	once       sync.Once
	err        error
}

func NewWorkerPool[T any, G any](numWorkers int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
	}
}

func (wp *WorkerPool[T, G]) worker(ctx context.Context, cancel context.CancelFunc, jobQueue <-chan indexedJob[T],
	results []G, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range jobQueue {
		if ctx.Err() != nil {
			continue
		}
		res, err := jobFunc(ctx, job.job)
		if err != nil {
			wp.once.Do(func() {
				wp.err = err
				cancel()
			})
			continue
		}
		results[job.index] = res
	}
}

// Run executes jobFunc for every job and waits for all of them.
// the first error cancels the context passed to the remaining jobs and is returned.
// a pool is meant for one Run call.
func (wp *WorkerPool[T, G]) Run(ctx context.Context, jobs []T, jobFunc JobFunc[T, G]) ([]G, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]G, len(jobs))
	jobQueue := make(chan indexedJob[T], len(jobs))
	for i, job := range jobs {
		jobQueue <- indexedJob[T]{index: i, job: job}
	}
	close(jobQueue)

	numWorkers := wp.numWorkers
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}
	for i := 0; i < numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, cancel, jobQueue, results, jobFunc)
	}
	wp.wg.Wait()

	if wp.err != nil {
		return nil, wp.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
