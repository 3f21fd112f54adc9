package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryEmptyCriteria(t *testing.T) {
	query, args := BuildQuery(&Criteria{}, nil, 1, 10)

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY match_percentage DESC")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestBuildQueryNilCriteria(t *testing.T) {
	query, args := BuildQuery(nil, nil, 1, 10)

	assert.NotContains(t, query, "WHERE")
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestBuildQueryAllCriteria(t *testing.T) {
	available := true
	criteria := &Criteria{
		Skills:        []string{"react", "node"},
		Experience:    &ExperienceRange{Min: 5, Max: 15},
		TitleKeywords: []string{"developer"},
		Locations:     []string{"surat"},
	}

	query, args := BuildQuery(criteria, &Filters{Availability: &available}, 2, 5)

	require.Contains(t, query, "WHERE")
	assert.Contains(t, query, "EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE s ILIKE $1)")
	assert.Contains(t, query, "EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE s ILIKE $2)")
	assert.Contains(t, query, "experience_years BETWEEN $3 AND $4")
	assert.Contains(t, query, "location ILIKE $5")
	assert.Contains(t, query, "title ILIKE $6")
	assert.Contains(t, query, "availability = $7")
	assert.Contains(t, query, "LIMIT $8 OFFSET $9")

	assert.Equal(t, []interface{}{
		"%react%", "%node%", 5, 15, "%surat%", "%developer%", true, 5, 5,
	}, args)
}

func TestBuildQuerySkillsGroupedWithOr(t *testing.T) {
	criteria := &Criteria{Skills: []string{"react", "node"}}
	query, _ := BuildQuery(criteria, nil, 1, 10)

	start := strings.Index(query, "WHERE")
	require.Greater(t, start, 0)
	clause := query[start:]
	assert.Contains(t, clause, " OR ")

	// Grouped OR conditions must sit inside parentheses so later AND
	// conditions cannot widen the result set.
	assert.Contains(t, clause, "(EXISTS")
}

func TestBuildQueryGroupsJoinedWithAnd(t *testing.T) {
	criteria := &Criteria{
		Skills:    []string{"python"},
		Locations: []string{"pune", "mumbai"},
	}
	query, args := BuildQuery(criteria, nil, 1, 10)

	assert.Contains(t, query, ") AND (")
	assert.Contains(t, query, "location ILIKE $2 OR location ILIKE $3")
	assert.Equal(t, []interface{}{"%python%", "%pune%", "%mumbai%", 10, 0}, args)
}

func TestBuildQueryPaginationOffsets(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		limit  int
		offset int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"third page small limit", 3, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, args := BuildQuery(&Criteria{}, nil, tt.page, tt.limit)
			require.Len(t, args, 2)
			assert.Equal(t, tt.limit, args[0])
			assert.Equal(t, tt.offset, args[1])
		})
	}
}

func TestBuildQueryNoInterpolatedValues(t *testing.T) {
	criteria := &Criteria{
		Skills:     []string{"react'; DROP TABLE candidates;--"},
		Experience: &ExperienceRange{Min: 0, Max: 10},
	}
	query, args := BuildQuery(criteria, nil, 1, 10)

	assert.NotContains(t, query, "DROP TABLE")
	assert.Contains(t, args[0], "DROP TABLE")
}
