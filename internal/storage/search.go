package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// candidateColumns is the select list every candidate query uses; scanCandidate
// must stay in sync with it.
const candidateColumns = `id, name, photo_url, title, company, experience_years,
		location, skills, education, availability, email, phone,
		strengths, areas_to_probe, ai_verdict, about, match_percentage, created_at`

// QueryCandidates executes a parameterized candidate query produced by the
// query builder and scans the resulting rows.
func (db *DB) QueryCandidates(ctx context.Context, query string, args ...interface{}) ([]Candidate, error) {
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		var photoURL, education, email, phone, verdict, about sql.NullString
		if err := rows.Scan(
			&c.ID, &c.Name, &photoURL, &c.Title, &c.Company, &c.ExperienceYears,
			&c.Location, pq.Array(&c.Skills), &education, &c.Availability, &email, &phone,
			pq.Array(&c.Strengths), pq.Array(&c.AreasToProbe), &verdict, &about,
			&c.MatchPercentage, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		c.PhotoURL = photoURL.String
		c.Education = education.String
		c.Email = email.String
		c.Phone = phone.String
		c.AIVerdict = verdict.String
		c.About = about.String
		c.MatchPercentage = clampPercentage(c.MatchPercentage)
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// SaveSearchHistory appends one history row. The log is append-only; rows are
// never updated or deleted here.
func (db *DB) SaveSearchHistory(ctx context.Context, userID, searchQuery string, resultCount int) error {
	query := `INSERT INTO search_history (user_id, search_query, result_count)
		  VALUES ($1, $2, $3)`
	if _, err := db.connection.ExecContext(ctx, query, userID, searchQuery, resultCount); err != nil {
		return fmt.Errorf("save search history: %w", err)
	}
	return nil
}

// GetSearchHistory returns the user's most recent history entries, newest first.
func (db *DB) GetSearchHistory(ctx context.Context, userID string, limit int) ([]SearchHistoryEntry, error) {
	query := `SELECT id, user_id, search_query, result_count, created_at
		  FROM search_history
		  WHERE user_id = $1
		  ORDER BY created_at DESC
		  LIMIT $2`
	rows, err := db.connection.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get search history: %w", err)
	}
	defer rows.Close()

	var entries []SearchHistoryEntry
	for rows.Next() {
		var e SearchHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.SearchQuery, &e.ResultCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ShortlistCandidate records a shortlist action. Duplicate pairs are a no-op:
// the unique constraint plus ON CONFLICT makes concurrent duplicates safe.
func (db *DB) ShortlistCandidate(ctx context.Context, userID string, candidateID int) error {
	query := `INSERT INTO shortlisted_candidates (user_id, candidate_id)
		  VALUES ($1, $2)
		  ON CONFLICT (user_id, candidate_id) DO NOTHING`
	if _, err := db.connection.ExecContext(ctx, query, userID, candidateID); err != nil {
		return fmt.Errorf("shortlist candidate: %w", err)
	}
	return nil
}

// GetShortlist returns the user's shortlist entries, newest first.
func (db *DB) GetShortlist(ctx context.Context, userID string) ([]ShortlistEntry, error) {
	query := `SELECT user_id, candidate_id, created_at
		  FROM shortlisted_candidates
		  WHERE user_id = $1
		  ORDER BY created_at DESC`
	rows, err := db.connection.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get shortlist: %w", err)
	}
	defer rows.Close()

	var entries []ShortlistEntry
	for rows.Next() {
		var e ShortlistEntry
		if err := rows.Scan(&e.UserID, &e.CandidateID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shortlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
