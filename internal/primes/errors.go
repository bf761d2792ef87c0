package primes

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDrainTimeout    = errors.New("result drain timed out")
)

// WorkerFailureError reports a worker that died while processing a chunk,
// with enough context to reproduce the failure.
type WorkerFailureError struct {
	Worker int
	Chunk  Chunk
	Err    error
}

func (e *WorkerFailureError) Error() string {
	return fmt.Sprintf("worker %d failed on chunk %s: %v", e.Worker, e.Chunk, e.Err)
}

func (e *WorkerFailureError) Unwrap() error { return e.Err }
