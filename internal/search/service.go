package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-search/internal/logger"
	"talent-search/internal/metrics"
	"talent-search/internal/storage"

	"github.com/google/uuid"
)

// ErrEmptyQuery is returned when the search query is missing or blank.
var ErrEmptyQuery = errors.New("search query is required")

const (
	defaultPage         = 1
	defaultLimit        = 10
	defaultQueryTimeout = 5 * time.Second
)

// Store is the persistence surface the orchestrator needs.
type Store interface {
	QueryCandidates(ctx context.Context, query string, args ...interface{}) ([]storage.Candidate, error)
	SaveSearchHistory(ctx context.Context, userID, searchQuery string, resultCount int) error
}

// Request is one search invocation.
type Request struct {
	Query   string
	Filters *Filters
	Page    int
	Limit   int
	UserID  string
}

// Result is the shaped search response.
type Result struct {
	Candidates []ScoredCandidate `json:"candidates"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	SearchID   string            `json:"searchId"`
	Degraded   bool              `json:"degraded"`
}

// Service sequences extraction, query building, store access, scoring and
// history logging. It is stateless apart from its dependencies; one instance
// serves concurrent requests.
type Service struct {
	store        Store
	extractor    Extractor
	logger       logger.Logger
	queryTimeout time.Duration
}

func NewService(store Store, extractor Extractor, log logger.Logger, queryTimeout time.Duration) *Service {
	if extractor == nil {
		extractor = NewVocabularyExtractor()
	}
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &Service{
		store:        store,
		extractor:    extractor,
		logger:       log,
		queryTimeout: queryTimeout,
	}
}

// Search runs the full pipeline. A store failure (including timeout) degrades
// to a synthetic result set instead of an error, so the endpoint never
// hard-fails on backend outages; the result carries Degraded=true so callers
// can tell. Only input validation produces an error.
func (s *Service) Search(ctx context.Context, req Request) (*Result, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	page, limit := req.Page, req.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	criteria, err := s.extractor.Extract(ctx, query)
	if err != nil {
		s.logger.Warn("criteria extraction failed, using fallback", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		criteria = FallbackCriteria(query)
	}

	sqlQuery, args := BuildQuery(criteria, req.Filters, page, limit)

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rows, err := s.store.QueryCandidates(queryCtx, sqlQuery, args...)
	if err != nil {
		s.logger.Error("candidate query failed, returning fallback results", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		metrics.SearchesTotal.WithLabelValues("degraded").Inc()
		return s.fallbackResult(query, page, limit), nil
	}

	scored := ScoreCandidates(rows, criteria)

	// Best effort: a failed history write never fails the search.
	if err := s.store.SaveSearchHistory(ctx, req.UserID, query, len(scored)); err != nil {
		metrics.HistoryWriteFailures.Inc()
		s.logger.Warn("failed to save search history", map[string]interface{}{
			"error":  err.Error(),
			"userId": req.UserID,
		})
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	s.logger.Info("search completed", map[string]interface{}{
		"query":   query,
		"results": len(scored),
		"page":    page,
	})

	return &Result{
		Candidates: scored,
		Total:      len(scored),
		Page:       page,
		Limit:      limit,
		SearchID:   uuid.NewString(),
	}, nil
}
