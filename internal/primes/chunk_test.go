package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCoversRange checks that the chunks reconstruct [start, end)
// exactly: contiguous, no gaps, no overlaps, ascending indices.
func assertCoversRange(t *testing.T, chunks []Chunk, start, end int) {
	t.Helper()

	next := start
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, next, c.Start, "chunk %d must start where the previous ended", i)
		assert.Greater(t, c.End, c.Start, "chunk %d must be nonempty", i)
		next = c.End
	}
	assert.Equal(t, end, next, "chunks must reach the end of the range")
}

func TestFixedSizeSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int
		size       int
		wantChunks int
		wantLast   int
	}{
		{name: "exact multiple", start: 2, end: 22, size: 5, wantChunks: 4, wantLast: 5},
		{name: "short last chunk", start: 2, end: 20, size: 7, wantChunks: 3, wantLast: 4},
		{name: "single chunk", start: 2, end: 5, size: 100, wantChunks: 1, wantLast: 3},
		{name: "size one", start: 1, end: 6, size: 1, wantChunks: 5, wantLast: 1},
		{name: "empty range", start: 2, end: 2, size: 10, wantChunks: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chunks, err := FixedSize{Size: tt.size}.Split(tt.start, tt.end)
			require.NoError(t, err)
			require.Len(t, chunks, tt.wantChunks)

			assertCoversRange(t, chunks, tt.start, tt.end)
			for _, c := range chunks[:max(len(chunks)-1, 0)] {
				assert.Equal(t, tt.size, c.Len())
			}
			if tt.wantChunks > 0 {
				assert.Equal(t, tt.wantLast, chunks[len(chunks)-1].Len())
			}
		})
	}
}

func TestFixedSizeSplit_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -3} {
		_, err := FixedSize{Size: size}.Split(2, 100)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestPowerLawSplit(t *testing.T) {
	t.Parallel()

	const start, end = 2, 100000
	chunks, err := PowerLaw{Size: 1000, Exponent: 0.3}.Split(start, end)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	assertCoversRange(t, chunks, start, end)

	assert.Equal(t, 1000, chunks[0].Len(), "first chunk carries the nominal size")
	assert.Less(t, chunks[len(chunks)-2].Len(), chunks[0].Len(),
		"later chunks must shrink to balance the heavier numbers")
	assert.Greater(t, len(chunks), (end-start)/1000,
		"shrinking chunks means more of them than fixed-size splitting")
}

func TestPowerLawSplit_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int
		exponent float64
	}{
		{name: "zero size", size: 0, exponent: 0.3},
		{name: "zero exponent", size: 100, exponent: 0},
		{name: "negative exponent", size: 100, exponent: -0.2},
		{name: "exponent at half", size: 100, exponent: 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := PowerLaw{Size: tt.size, Exponent: tt.exponent}.Split(2, 1000)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
