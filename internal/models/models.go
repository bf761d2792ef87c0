package models

type SearchStatus string

const (
	StatusPending   SearchStatus = "pending"
	StatusRunning   SearchStatus = "running"
	StatusCompleted SearchStatus = "completed"
	StatusFailed    SearchStatus = "failed"
)

const (
	StrategyFixed    = "fixed"
	StrategyPowerLaw = "powerlaw"
)

type Search struct {
	ID         string       `json:"id"`
	Status     SearchStatus `json:"status"`
	UpperBound int          `json:"upper_bound"`
	ChunkSize  int          `json:"chunk_size"`
	Workers    int          `json:"workers"`
	Strategy   string       `json:"strategy"`
	Exponent   float64      `json:"exponent,omitempty"`
	Progress   float64      `json:"progress"`
	PrimeCount int          `json:"prime_count,omitempty"`
	Primes     []int        `json:"primes,omitempty"`
	Truncated  bool         `json:"truncated,omitempty"`
	Elapsed    string       `json:"elapsed,omitempty"`
	Error      string       `json:"error,omitempty"`
}

type SearchResponse struct {
	Search            *Search  `json:"search"`
	ActiveSearches    []string `json:"active_searches"`
	CompletedSearches []string `json:"completed_searches"`
}

type SearchListResponse struct {
	ActiveSearches    []string `json:"active_searches"`
	CompletedSearches []string `json:"completed_searches"`
}

type ErrorResponse struct {
	Request string `json:"request"`
	Error   string `json:"error"`
}

type CreateSearchRequest struct {
	UpperBound int     `json:"upper_bound" binding:"required"`
	ChunkSize  int     `json:"chunk_size"`
	Workers    int     `json:"workers"`
	Strategy   string  `json:"strategy"`
	Exponent   float64 `json:"exponent"`
}
