package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"talent-search/internal/search"
	"talent-search/internal/storage"
)

// SearchRequest is the body of POST /api/search/candidates.
type SearchRequest struct {
	SearchQuery string          `json:"searchQuery"`
	Filters     *search.Filters `json:"filters,omitempty"`
	Page        int             `json:"page,omitempty"`
	Limit       int             `json:"limit,omitempty"`
}

// SearchResponse wraps a search result with the success flag the UI expects.
type SearchResponse struct {
	Success bool `json:"success"`
	*search.Result
}

// SearchCandidatesHandler runs a free-text candidate search
// @Summary Search candidates
// @Description Derives criteria from a free-text job description and returns ranked candidates
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search request"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /search/candidates [post]
func (a *API) SearchCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}

	if strings.TrimSpace(req.SearchQuery) == "" {
		a.writeError(w, http.StatusBadRequest, "Search query is required", nil)
		return
	}

	result, err := a.searcher.Search(r.Context(), search.Request{
		Query:   strings.TrimSpace(req.SearchQuery),
		Filters: req.Filters,
		Page:    req.Page,
		Limit:   req.Limit,
		UserID:  userID(r),
	})
	if err != nil {
		if err == search.ErrEmptyQuery {
			a.writeError(w, http.StatusBadRequest, "Search query is required", nil)
			return
		}
		a.handleError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, SearchResponse{Success: true, Result: result})
}

// SearchHistoryHandler returns recent searches
// @Summary Search history
// @Description Returns the current user's most recent searches, newest first
// @Tags search
// @Produce json
// @Success 200 {array} storage.SearchHistoryEntry
// @Failure 500 {object} map[string]string
// @Router /search/history [get]
func (a *API) SearchHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	entries, err := a.store.GetSearchHistory(r.Context(), userID(r), a.historyLimit)
	if err != nil {
		a.handleError(w, err)
		return
	}
	if entries == nil {
		entries = []storage.SearchHistoryEntry{}
	}
	a.writeJSON(w, http.StatusOK, entries)
}

// ShortlistRequest is the body of POST /api/search/shortlist.
type ShortlistRequest struct {
	CandidateID int `json:"candidateId"`
}

// ShortlistHandler records or lists shortlisted candidates
// @Summary Shortlist a candidate
// @Description Idempotently shortlists a candidate for the current user; GET lists the shortlist
// @Tags search
// @Accept json
// @Produce json
// @Param request body ShortlistRequest true "Shortlist request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /search/shortlist [post]
func (a *API) ShortlistHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries, err := a.store.GetShortlist(r.Context(), userID(r))
		if err != nil {
			a.handleError(w, err)
			return
		}
		if entries == nil {
			entries = []storage.ShortlistEntry{}
		}
		a.writeJSON(w, http.StatusOK, entries)
	case http.MethodPost:
		var req ShortlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			a.writeError(w, http.StatusBadRequest, "invalid JSON", err)
			return
		}
		if req.CandidateID <= 0 {
			a.writeError(w, http.StatusBadRequest, "candidateId is required", nil)
			return
		}
		if err := a.store.ShortlistCandidate(r.Context(), userID(r), req.CandidateID); err != nil {
			a.handleError(w, err)
			return
		}
		a.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Candidate shortlisted",
		})
	default:
		a.writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
	}
}
