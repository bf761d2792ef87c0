// Package primes finds prime numbers with a chunked producer/consumer
// pipeline: a dispatcher splits [2, upperBound) into chunks and feeds
// them to a fixed pool of workers through a work queue; workers push the
// primes they find on a result queue; the collector drains one batch per
// chunk and reassembles them in submission order.
package primes

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Options tunes a Search run. Workers and QueueDepth default when zero;
// ChunkSize must be set unless a Strategy is given.
type Options struct {
	// ChunkSize is the chunk length used when Strategy is nil.
	ChunkSize int
	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers int
	// Strategy overrides fixed-size chunking, e.g. PowerLaw.
	Strategy ChunkStrategy
	// QueueDepth bounds both queues; 0 means twice the worker count.
	QueueDepth int
	// DrainTimeout fails the run with ErrDrainTimeout if collecting the
	// results takes longer. 0 disables the deadline.
	DrainTimeout time.Duration
	// Progress, when non-nil, is updated as elements are checked.
	Progress *Progress

	// check replaces IsPrime in tests to inject element-level faults.
	check func(int) bool
}

// Find returns all primes in [2, upperBound) in ascending order.
func Find(ctx context.Context, upperBound, chunkSize, workers int) ([]int, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidArgument, workers)
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, chunkSize)
	}
	return Search(ctx, upperBound, Options{ChunkSize: chunkSize, Workers: workers})
}

// Search runs the pipeline and returns the primes in [2, upperBound),
// ordered by chunk submission index (ascending, since chunks are
// contiguous). Malformed arguments fail with ErrInvalidArgument before
// any goroutine starts; a worker failure cancels the run and surfaces as
// *WorkerFailureError.
func Search(ctx context.Context, upperBound int, opts Options) ([]int, error) {
	if upperBound < 2 {
		return nil, fmt.Errorf("%w: upper bound must be at least 2, got %d", ErrInvalidArgument, upperBound)
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidArgument, opts.Workers)
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = FixedSize{Size: opts.ChunkSize}
	}
	check := opts.check
	if check == nil {
		check = IsPrime
	}

	chunks, err := strategy.Split(2, upperBound)
	if err != nil {
		return nil, err
	}
	if opts.Progress != nil {
		opts.Progress.begin(int64(upperBound - 2))
	}
	if len(chunks) == 0 {
		return []int{}, nil
	}

	depth := opts.QueueDepth
	if depth <= 0 {
		depth = opts.Workers * 2
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	work := make(chan workItem, depth)
	results := make(chan ResultBatch, depth)
	failures := make(chan *WorkerFailureError, opts.Workers)

	var wg sync.WaitGroup
	for id := 0; id < opts.Workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(ctx, id, check, opts.Progress, work, results, failures)
		}(id)
	}

	// Feed every chunk, then one done marker per worker. Feeding runs in
	// its own goroutine so a bounded work queue can never stall the drain.
	go func() {
		for _, c := range chunks {
			select {
			case work <- workItem{chunk: c}:
			case <-ctx.Done():
				return
			}
		}
		for i := 0; i < opts.Workers; i++ {
			select {
			case work <- workItem{done: true}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var deadline <-chan time.Time
	if opts.DrainTimeout > 0 {
		timer := time.NewTimer(opts.DrainTimeout)
		defer timer.Stop()
		deadline = timer.C
	}

	// The chunk count is known up front, so the drain expects exactly one
	// batch per chunk; the done markers only stop the workers.
	batches := make([][]int, len(chunks))
	for drained := 0; drained < len(chunks); drained++ {
		select {
		case b := <-results:
			batches[b.Chunk.Index] = b.Primes
		case f := <-failures:
			cancel()
			wg.Wait()
			return nil, f
		case <-deadline:
			cancel()
			wg.Wait()
			return nil, fmt.Errorf("%w after %s with %d of %d batches collected",
				ErrDrainTimeout, opts.DrainTimeout, drained, len(chunks))
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	wg.Wait()

	out := make([]int, 0, upperBound/8)
	for _, b := range batches {
		out = append(out, b...)
	}
	return out, nil
}
