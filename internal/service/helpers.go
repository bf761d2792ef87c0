package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"primefinder/internal/models"
	"primefinder/internal/primes"
)

// buildSearch validates the request and turns it into pipeline options,
// applying the configured defaults. All validation happens here, before
// anything concurrent starts, so a bad request fails the HTTP call
// instead of producing a failed background task.
func (s *Service) buildSearch(req models.CreateSearchRequest) (models.Search, primes.Options, error) {
	var meta models.Search

	if req.UpperBound < 2 {
		return meta, primes.Options{}, fmt.Errorf("upper_bound must be at least 2, got %d", req.UpperBound)
	}
	if req.UpperBound > s.cfg.Search.MaxUpperBound {
		return meta, primes.Options{}, fmt.Errorf("upper_bound must not exceed %d, got %d", s.cfg.Search.MaxUpperBound, req.UpperBound)
	}

	chunkSize := req.ChunkSize
	if chunkSize == 0 {
		chunkSize = s.cfg.Search.DefaultChunkSize
	}
	if chunkSize <= 0 {
		return meta, primes.Options{}, fmt.Errorf("chunk_size must be positive, got %d", chunkSize)
	}

	workers := req.Workers
	if workers == 0 {
		workers = s.cfg.Search.DefaultWorkers
	}
	if workers < 0 {
		return meta, primes.Options{}, fmt.Errorf("workers must not be negative, got %d", workers)
	}

	opts := primes.Options{
		ChunkSize:    chunkSize,
		Workers:      workers,
		DrainTimeout: s.cfg.Search.DrainTimeout,
		Progress:     &primes.Progress{},
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = models.StrategyFixed
	}

	switch strategy {
	case models.StrategyFixed:
	case models.StrategyPowerLaw:
		exponent := req.Exponent
		if exponent == 0 {
			exponent = s.cfg.Search.DefaultExponent
		}
		if exponent <= 0 || exponent >= 0.5 {
			return meta, primes.Options{}, fmt.Errorf("exponent must be in (0, 0.5), got %g", exponent)
		}
		opts.Strategy = primes.PowerLaw{Size: chunkSize, Exponent: exponent}
		meta.Exponent = exponent
	default:
		return meta, primes.Options{}, fmt.Errorf("unknown strategy %q", strategy)
	}

	meta.UpperBound = req.UpperBound
	meta.ChunkSize = chunkSize
	meta.Workers = workers
	meta.Strategy = strategy

	return meta, opts, nil
}

func (s *Service) runSearch(searchID string, upperBound int, opts primes.Options) {
	s.mu.Lock()
	r := s.searches[searchID]
	r.status = models.StatusRunning
	s.mu.Unlock()

	start := time.Now()
	found, err := primes.Search(context.Background(), upperBound, opts)
	elapsed := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	r.elapsed = elapsed
	delete(s.activeSearches, searchID)
	s.completedSearches[searchID] = struct{}{}

	if err != nil {
		s.log.Error("search failed",
			slog.String("searchID", searchID),
			slog.String("error", err.Error()))

		r.status = models.StatusFailed
		r.errMsg = err.Error()
		return
	}

	r.status = models.StatusCompleted
	r.primes = found

	s.log.Info("search completed",
		slog.String("searchID", searchID),
		slog.Int("primes_found", len(found)),
		slog.Duration("elapsed", elapsed))
}

func (s *Service) snapshotLocked(r *run) *models.Search {
	snap := r.meta
	snap.Status = r.status
	snap.Progress = r.progress.Fraction()

	switch r.status {
	case models.StatusCompleted:
		snap.Progress = 1
		snap.PrimeCount = len(r.primes)
		snap.Elapsed = r.elapsed.String()

		limit := s.cfg.Search.MaxPrimesInResponse
		if limit > 0 && len(r.primes) > limit {
			snap.Primes = r.primes[:limit]
			snap.Truncated = true
		} else {
			snap.Primes = r.primes
		}
	case models.StatusFailed:
		snap.Error = r.errMsg
		snap.Elapsed = r.elapsed.String()
	}

	return &snap
}

func (s *Service) activeIDsLocked() []string {
	var ids []string
	for id := range s.activeSearches {
		ids = append(ids, id)
	}
	return ids
}

func (s *Service) completedIDsLocked() []string {
	var ids []string
	for id := range s.completedSearches {
		ids = append(ids, id)
	}
	return ids
}
