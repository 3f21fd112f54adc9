package api

import (
	"context"
	"encoding/json"
	"net/http"

	"talent-search/internal/config"
	"talent-search/internal/logger"
	"talent-search/internal/search"
	"talent-search/internal/storage"

	"github.com/lib/pq"
)

const defaultUserID = "demo-user"

// Searcher runs the search pipeline.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Result, error)
}

// HistoryStore serves the history and shortlist endpoints.
type HistoryStore interface {
	GetSearchHistory(ctx context.Context, userID string, limit int) ([]storage.SearchHistoryEntry, error)
	ShortlistCandidate(ctx context.Context, userID string, candidateID int) error
	GetShortlist(ctx context.Context, userID string) ([]storage.ShortlistEntry, error)
}

type API struct {
	searcher     Searcher
	store        HistoryStore
	logger       logger.Logger
	historyLimit int
	production   bool
}

func NewAPI(searcher Searcher, store HistoryStore, cfg *config.Config, log logger.Logger) *API {
	return &API{
		searcher:     searcher,
		store:        store,
		logger:       log,
		historyLimit: cfg.Search.HistoryLimit,
		production:   cfg.App.IsProduction(),
	}
}

// userID resolves the acting user. There is no authentication layer; the
// header stands in for it, with a demo fallback.
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return defaultUserID
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]interface{}{"error": message}
	// Detail is only exposed outside production.
	if err != nil && !a.production {
		body["message"] = err.Error()
	}
	a.writeJSON(w, status, body)
}

// handleError maps persistence errors onto HTTP statuses: unique violations
// are conflicts, everything else is a generic 500.
func (a *API) handleError(w http.ResponseWriter, err error) {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		a.writeError(w, http.StatusConflict, "Duplicate entry", err)
		return
	}
	a.logger.Error("request failed", map[string]interface{}{"error": err.Error()})
	a.writeError(w, http.StatusInternalServerError, "Something went wrong!", err)
}
