package storage

import "time"

// Candidate is one row of the candidate store. Rows are created by the
// seeder; the search pipeline only reads them.
type Candidate struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	ExperienceYears int       `json:"experience_years"`
	Location        string    `json:"location"`
	Skills          []string  `json:"skills"`
	Education       string    `json:"education"`
	Availability    bool      `json:"availability"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Strengths       []string  `json:"strengths"`
	AreasToProbe    []string  `json:"areas_to_probe"`
	AIVerdict       string    `json:"ai_verdict"`
	About           string    `json:"about"`
	MatchPercentage int       `json:"match_percentage"` // stored baseline score, always 0..100
	CreatedAt       time.Time `json:"created_at"`
}

// SearchHistoryEntry is one append-only log row written after each search.
type SearchHistoryEntry struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	SearchQuery string    `json:"search_query"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShortlistEntry records that a user shortlisted a candidate. The
// (user_id, candidate_id) pair is unique; inserts are idempotent.
type ShortlistEntry struct {
	UserID      string    `json:"user_id"`
	CandidateID int       `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// clampPercentage enforces the 0..100 invariant on stored baseline scores.
func clampPercentage(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
