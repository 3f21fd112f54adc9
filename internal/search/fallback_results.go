package search

import (
	"fmt"

	"talent-search/internal/storage"

	"github.com/google/uuid"
)

const fallbackResultCount = 15

var (
	fallbackCompanies = []string{"TCS", "Infosys", "Wipro", "Accenture"}
	fallbackCities    = []string{"Mumbai", "Delhi", "Bangalore", "Chennai"}
	fallbackSkillSet  = []string{"JavaScript", "React", "Node.js", "MongoDB"}
)

// fallbackResult builds a deterministic synthetic result set for when the
// candidate store is unreachable. The shape matches a real result so the
// endpoint keeps working through outages; Degraded marks it as synthetic.
func (s *Service) fallbackResult(query string, page, limit int) *Result {
	candidates := make([]ScoredCandidate, 0, fallbackResultCount)
	for i := 1; i <= fallbackResultCount; i++ {
		score := 60 + i*2
		candidates = append(candidates, ScoredCandidate{
			Candidate: storage.Candidate{
				ID:              i,
				Name:            fmt.Sprintf("Candidate %d", i),
				PhotoURL:        fmt.Sprintf("https://i.pravatar.cc/150?img=%d", i),
				Title:           "Software Developer",
				Company:         fallbackCompanies[i%len(fallbackCompanies)],
				ExperienceYears: i%5 + 1,
				Location:        fallbackCities[i%len(fallbackCities)],
				Skills:          fallbackSkillSet[:i%3+2],
				Availability:    i%3 != 0,
				Email:           fmt.Sprintf("candidate%d@example.com", i),
				Phone:           fmt.Sprintf("+91 %d", 9000000000+i),
				Strengths:       []string{"Quick Learner", "Team Player"},
				AreasToProbe:    []string{"System Design"},
				AIVerdict:       "Good technical fit",
				About:           "Experienced developer",
				MatchPercentage: clamp100(score),
			},
			MatchPercent: clamp100(score),
			MatchColor:   matchColor(float64(score)),
		})
	}

	start := (page - 1) * limit
	if start > len(candidates) {
		start = len(candidates)
	}
	end := start + limit
	if end > len(candidates) {
		end = len(candidates)
	}

	s.logger.Info("returning fallback results", map[string]interface{}{
		"query": query,
		"total": fallbackResultCount,
	})

	return &Result{
		Candidates: candidates[start:end],
		Total:      fallbackResultCount,
		Page:       page,
		Limit:      limit,
		SearchID:   uuid.NewString(),
		Degraded:   true,
	}
}

func clamp100(v int) int {
	if v > 100 {
		return 100
	}
	return v
}
