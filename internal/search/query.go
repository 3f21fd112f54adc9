package search

import (
	"fmt"
	"strings"
)

// Filters are caller-supplied constraints applied on top of the extracted
// criteria.
type Filters struct {
	Availability *bool `json:"availability,omitempty"`
}

const candidateSelect = `SELECT id, name, photo_url, title, company, experience_years,
		location, skills, education, availability, email, phone,
		strengths, areas_to_probe, ai_verdict, about, match_percentage, created_at
	FROM candidates`

// BuildQuery turns criteria plus pagination into a parameterized SQL query.
// Each non-empty criteria field contributes one OR group; groups are combined
// with AND. With empty criteria no WHERE clause is emitted and all candidates
// are eligible. Every value, including LIMIT/OFFSET, is a bound parameter.
func BuildQuery(criteria *Criteria, filters *Filters, page, limit int) (string, []interface{}) {
	if criteria == nil {
		criteria = &Criteria{}
	}

	var conditions []string
	var args []interface{}
	param := 0

	next := func(v interface{}) string {
		param++
		args = append(args, v)
		return fmt.Sprintf("$%d", param)
	}

	if len(criteria.Skills) > 0 {
		group := make([]string, 0, len(criteria.Skills))
		for _, skill := range criteria.Skills {
			p := next("%" + skill + "%")
			group = append(group, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE s ILIKE %s)", p))
		}
		conditions = append(conditions, "("+strings.Join(group, " OR ")+")")
	}

	if criteria.Experience != nil {
		lo := next(criteria.Experience.Min)
		hi := next(criteria.Experience.Max)
		conditions = append(conditions, fmt.Sprintf("experience_years BETWEEN %s AND %s", lo, hi))
	}

	if len(criteria.Locations) > 0 {
		group := make([]string, 0, len(criteria.Locations))
		for _, location := range criteria.Locations {
			group = append(group, fmt.Sprintf("location ILIKE %s", next("%"+location+"%")))
		}
		conditions = append(conditions, "("+strings.Join(group, " OR ")+")")
	}

	if len(criteria.TitleKeywords) > 0 {
		group := make([]string, 0, len(criteria.TitleKeywords))
		for _, keyword := range criteria.TitleKeywords {
			group = append(group, fmt.Sprintf("title ILIKE %s", next("%"+keyword+"%")))
		}
		conditions = append(conditions, "("+strings.Join(group, " OR ")+")")
	}

	if filters != nil && filters.Availability != nil {
		conditions = append(conditions, fmt.Sprintf("availability = %s", next(*filters.Availability)))
	}

	query := candidateSelect
	if len(conditions) > 0 {
		query += "\n\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\tORDER BY match_percentage DESC"

	limitParam := next(limit)
	offsetParam := next((page - 1) * limit)
	query += fmt.Sprintf("\n\tLIMIT %s OFFSET %s", limitParam, offsetParam)

	return query, args
}
