package primes

import (
	"fmt"
	"math"
)

// Chunk is a contiguous half-open sub-range [Start, End) of the search
// space. Index is the submission position, so the collector can put
// results back in submission order.
type Chunk struct {
	Index int
	Start int
	End   int
}

func (c Chunk) Len() int { return c.End - c.Start }

func (c Chunk) String() string { return fmt.Sprintf("[%d:%d)", c.Start, c.End) }

// ChunkStrategy partitions [start, end) into contiguous chunks whose
// concatenation reconstructs the range exactly.
type ChunkStrategy interface {
	Split(start, end int) ([]Chunk, error)
}

// FixedSize yields chunks of Size elements each, except possibly the last.
type FixedSize struct {
	Size int
}

func (s FixedSize) Split(start, end int) ([]Chunk, error) {
	if s.Size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, s.Size)
	}

	var chunks []Chunk
	for lo := start; lo < end; lo += s.Size {
		hi := lo + s.Size
		if hi > end {
			hi = end
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Start: lo, End: hi})
	}

	return chunks, nil
}

// PowerLaw makes chunks smaller and smaller as the numbers grow, to
// compensate for trial division getting slower on larger numbers.
//
// Checking one number near x is assumed to cost about x^p for some
// empirical 0 < p < 0.5, so checking every number in [a, b) costs about
// b^(1+p) - a^(1+p). The first chunk is Size elements long; every later
// chunk carries the same estimated cost, which makes it shorter. The
// exponent is a tunable, not a derived constant.
type PowerLaw struct {
	Size     int
	Exponent float64
}

func (s PowerLaw) Split(start, end int) ([]Chunk, error) {
	if s.Size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, s.Size)
	}
	if s.Exponent <= 0 || s.Exponent >= 0.5 {
		return nil, fmt.Errorf("%w: exponent must be in (0, 0.5), got %g", ErrInvalidArgument, s.Exponent)
	}

	q := 1 + s.Exponent
	budget := math.Pow(float64(start+s.Size), q) - math.Pow(float64(start), q)

	var chunks []Chunk
	for lo := start; lo < end; {
		hi := int(math.Round(math.Pow(math.Pow(float64(lo), q)+budget, 1/q)))
		if hi <= lo {
			hi = lo + 1
		}
		if hi > end {
			hi = end
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Start: lo, End: hi})
		lo = hi
	}

	return chunks, nil
}
