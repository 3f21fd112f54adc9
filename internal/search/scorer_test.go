package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-search/internal/storage"
)

func TestScoreCandidatesFullMatchClampsAt100(t *testing.T) {
	candidates := []storage.Candidate{{
		ID:              1,
		Name:            "Asha Patel",
		Title:           "React.js Developer",
		ExperienceYears: 6,
		Location:        "Surat, Gujarat",
		Skills:          []string{"React", "Node.js", "JavaScript"},
		MatchPercentage: 70,
	}}
	criteria := &Criteria{
		Skills:        []string{"react", "node"},
		Experience:    &ExperienceRange{Min: 5, Max: 15},
		TitleKeywords: []string{"developer"},
		Locations:     []string{"surat"},
	}

	scored := ScoreCandidates(candidates, criteria)

	require.Len(t, scored, 1)
	assert.Equal(t, 100, scored[0].MatchPercent)
	assert.Equal(t, colorGood, scored[0].MatchColor)
}

func TestScoreCandidatesZeroBaselineUsesDefault(t *testing.T) {
	candidates := []storage.Candidate{{ID: 1, MatchPercentage: 0}}

	scored := ScoreCandidates(candidates, &Criteria{})

	require.Len(t, scored, 1)
	assert.Equal(t, 50, scored[0].MatchPercent)
	assert.Equal(t, colorPoor, scored[0].MatchColor)
}

func TestScoreCandidatesSortedDescending(t *testing.T) {
	candidates := []storage.Candidate{
		{ID: 1, MatchPercentage: 55, Skills: []string{"Java"}},
		{ID: 2, MatchPercentage: 55, Skills: []string{"React"}},
		{ID: 3, MatchPercentage: 55, Skills: []string{"Python"}},
	}
	criteria := &Criteria{Skills: []string{"react"}}

	scored := ScoreCandidates(candidates, criteria)

	require.Len(t, scored, 3)
	assert.Equal(t, 2, scored[0].ID)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].MatchPercent, scored[i].MatchPercent)
	}
	// Stable: equal scores keep input order.
	assert.Equal(t, 1, scored[1].ID)
	assert.Equal(t, 3, scored[2].ID)
}

func TestScoreCandidatesBounds(t *testing.T) {
	candidates := []storage.Candidate{
		{ID: 1, MatchPercentage: 95, Skills: []string{"React"}, Location: "Surat", Title: "Developer", ExperienceYears: 5},
		{ID: 2, MatchPercentage: 10},
		{ID: 3, MatchPercentage: 0, ExperienceYears: 30},
	}
	criteria := &Criteria{
		Skills:     []string{"react"},
		Experience: &ExperienceRange{Min: 2, Max: 8},
		Locations:  []string{"surat"},
	}

	for _, sc := range ScoreCandidates(candidates, criteria) {
		assert.GreaterOrEqual(t, sc.MatchPercent, 0)
		assert.LessOrEqual(t, sc.MatchPercent, 100)
	}
}

func TestSkillOverlapEitherDirection(t *testing.T) {
	// Criteria term contained in candidate skill, and the reverse.
	assert.Equal(t, 1.0, skillOverlap([]string{"React.js"}, []string{"react"}))
	assert.Equal(t, 1.0, skillOverlap([]string{"js"}, []string{"node.js"}))
	assert.Equal(t, 0.5, skillOverlap([]string{"React"}, []string{"react", "python"}))
	assert.Equal(t, 0.0, skillOverlap([]string{"Figma"}, []string{"react"}))
}

func TestExperienceMatch(t *testing.T) {
	tests := []struct {
		name     string
		years    int
		r        ExperienceRange
		expected float64
	}{
		{"inside range", 7, ExperienceRange{Min: 5, Max: 15}, 1},
		{"at bounds", 5, ExperienceRange{Min: 5, Max: 15}, 1},
		{"below min proportional", 2, ExperienceRange{Min: 5, Max: 15}, 0.4},
		{"above max decays", 12, ExperienceRange{Min: 0, Max: 10}, 0.8},
		{"far above max floors at zero", 25, ExperienceRange{Min: 0, Max: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, experienceMatch(tt.years, tt.r), 1e-9)
		})
	}
}

func TestTitleOverlap(t *testing.T) {
	assert.Equal(t, 1.0, titleOverlap("React.js Developer", []string{"developer"}))
	assert.Equal(t, 0.5, titleOverlap("React.js Developer", []string{"developer", "designer"}))
	assert.Equal(t, 0.0, titleOverlap("Product Designer", []string{"developer"}))
}

func TestMatchColorBands(t *testing.T) {
	assert.Equal(t, colorGood, matchColor(80))
	assert.Equal(t, colorGood, matchColor(150))
	assert.Equal(t, colorFair, matchColor(60))
	assert.Equal(t, colorFair, matchColor(79))
	assert.Equal(t, colorPoor, matchColor(59))
	assert.Equal(t, colorPoor, matchColor(0))
}
