package primes

import (
	"context"
	"errors"
	"fmt"
)

// workItem is what travels on the work queue: either a chunk or a
// termination marker. Exactly one done item is enqueued per worker, and a
// worker that consumes it exits without touching the queue again.
type workItem struct {
	chunk Chunk
	done  bool
}

// ResultBatch holds the primes found in one chunk, in ascending order.
// Produced by exactly one worker and never mutated afterwards.
type ResultBatch struct {
	Chunk  Chunk
	Primes []int
}

func runWorker(ctx context.Context, id int, check func(int) bool, progress *Progress,
	work <-chan workItem, results chan<- ResultBatch, failures chan<- *WorkerFailureError) {
	for {
		select {
		case <-ctx.Done():
			return
		case item := <-work:
			if item.done {
				return
			}

			batch, err := processChunk(ctx, check, progress, item.chunk)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				// failures is buffered one slot per worker, the send cannot block
				failures <- &WorkerFailureError{Worker: id, Chunk: item.chunk, Err: err}
				return
			}

			select {
			case results <- batch:
			case <-ctx.Done():
				return
			}
		}
	}
}

func processChunk(ctx context.Context, check func(int) bool, progress *Progress, c Chunk) (batch ResultBatch, err error) {
	n := c.Start
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("checking %d: panic: %v", n, r)
		}
	}()

	batch.Chunk = c
	for ; n < c.End; n++ {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		if check(n) {
			batch.Primes = append(batch.Primes, n)
		}
		if progress != nil {
			progress.checked.Add(1)
		}
	}

	return batch, nil
}
