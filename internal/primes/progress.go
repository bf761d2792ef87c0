package primes

import "sync/atomic"

// Progress counts how many numbers a search has checked so far. All
// workers increment the same counter, so updates must be atomic; a plain
// read-modify-write would lose increments under contention. The zero
// value is ready to use and a single Progress may be polled while the
// search is running.
type Progress struct {
	checked atomic.Int64
	total   atomic.Int64
}

func (p *Progress) begin(total int64) {
	p.checked.Store(0)
	p.total.Store(total)
}

// Checked returns the number of elements tested so far.
func (p *Progress) Checked() int64 { return p.checked.Load() }

// Total returns the number of elements the search will test.
func (p *Progress) Total() int64 { return p.total.Load() }

// Fraction returns completion in [0, 1]; 0 before the search starts.
func (p *Progress) Fraction() float64 {
	total := p.total.Load()
	if total <= 0 {
		return 0
	}
	return float64(p.checked.Load()) / float64(total)
}
