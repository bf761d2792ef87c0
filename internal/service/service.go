package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"primefinder/internal/config"
	"primefinder/internal/models"
	"primefinder/internal/primes"

	"github.com/google/uuid"
)

// run is one search task: its immutable parameters, its mutable status
// under the service mutex, and a lock-free progress counter the workers
// update while handlers poll it.
type run struct {
	meta     models.Search
	status   models.SearchStatus
	progress *primes.Progress
	primes   []int
	errMsg   string
	elapsed  time.Duration
}

type Service struct {
	searches          map[string]*run
	activeSearches    map[string]struct{}
	completedSearches map[string]struct{}
	cfg               *config.Config
	log               *slog.Logger
	mu                sync.Mutex
}

func NewService(cfg *config.Config, log *slog.Logger) *Service {
	return &Service{
		cfg:               cfg,
		log:               log,
		searches:          make(map[string]*run),
		activeSearches:    make(map[string]struct{}),
		completedSearches: make(map[string]struct{}),
	}
}

func (s *Service) CreateSearch(ctx context.Context, req models.CreateSearchRequest) (*models.SearchResponse, error) {
	meta, opts, err := s.buildSearch(req)
	if err != nil {
		s.log.Error("invalid search request", slog.String("error", err.Error()))

		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.activeSearches) >= s.cfg.Search.MaxConcurrentSearches {
		s.log.Error("server busy. Too many active searches",
			slog.Int("active", len(s.activeSearches)),
			slog.Int("max", s.cfg.Search.MaxConcurrentSearches))

		return nil, fmt.Errorf("server busy. Too many active searches: %d", len(s.activeSearches))
	}

	searchID := uuid.New().String()
	meta.ID = searchID

	r := &run{
		meta:     meta,
		status:   models.StatusPending,
		progress: opts.Progress,
	}
	s.searches[searchID] = r
	s.activeSearches[searchID] = struct{}{}

	s.log.Info("search created",
		slog.String("searchID", searchID),
		slog.Int("upper_bound", meta.UpperBound),
		slog.Int("workers", meta.Workers),
		slog.String("strategy", meta.Strategy))

	go s.runSearch(searchID, meta.UpperBound, opts)

	return &models.SearchResponse{
		Search:            s.snapshotLocked(r),
		ActiveSearches:    s.activeIDsLocked(),
		CompletedSearches: s.completedIDsLocked(),
	}, nil
}

func (s *Service) GetSearch(ctx context.Context, searchID string) (*models.SearchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.searches[searchID]
	if !ok {
		s.log.Error("search not found", slog.String("searchID", searchID))

		return nil, fmt.Errorf("search with id %s not found", searchID)
	}

	return &models.SearchResponse{
		Search:            s.snapshotLocked(r),
		ActiveSearches:    s.activeIDsLocked(),
		CompletedSearches: s.completedIDsLocked(),
	}, nil
}

func (s *Service) ListSearches(ctx context.Context) (*models.SearchListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.SearchListResponse{
		ActiveSearches:    s.activeIDsLocked(),
		CompletedSearches: s.completedIDsLocked(),
	}, nil
}
