package search

import (
	"math"
	"sort"
	"strings"

	"talent-search/internal/storage"
)

// Scoring weights. The stored baseline contributes the base; criteria overlap
// can add up to 100 more before the final clamp.
const (
	defaultBaseScore = 50
	skillsWeight     = 40
	experienceWeight = 20
	titleWeight      = 20
	locationWeight   = 20
)

// Match color bands (thresholds on the raw, pre-clamp score).
const (
	colorGood = "#10b981"
	colorFair = "#f59e0b"
	colorPoor = "#ef4444"
)

// ScoredCandidate is a candidate plus its per-request match score. Lifetime is
// one search response.
type ScoredCandidate struct {
	storage.Candidate
	MatchPercent int    `json:"match_percent"`
	MatchColor   string `json:"match_color"`
}

// ScoreCandidates re-ranks candidates against the criteria using a weighted
// heuristic, sorted descending by match percent. The sort is stable so equal
// scores keep their input order and repeated runs are deterministic.
func ScoreCandidates(candidates []storage.Candidate, criteria *Criteria) []ScoredCandidate {
	if criteria == nil {
		criteria = &Criteria{}
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := float64(c.MatchPercentage)
		if c.MatchPercentage == 0 {
			score = defaultBaseScore
		}

		if len(criteria.Skills) > 0 {
			score += skillsWeight * skillOverlap(c.Skills, criteria.Skills)
		}
		if criteria.Experience != nil {
			score += experienceWeight * experienceMatch(c.ExperienceYears, *criteria.Experience)
		}
		if len(criteria.TitleKeywords) > 0 {
			score += titleWeight * titleOverlap(c.Title, criteria.TitleKeywords)
		}
		if len(criteria.Locations) > 0 && locationMatch(c.Location, criteria.Locations) {
			score += locationWeight
		}

		scored = append(scored, ScoredCandidate{
			Candidate:    c,
			MatchPercent: int(math.Round(math.Min(100, score))),
			MatchColor:   matchColor(score),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercent > scored[j].MatchPercent
	})
	return scored
}

// skillOverlap returns the fraction of criteria skills present in the
// candidate's skill list. A skill matches on case-insensitive substring
// containment in either direction.
func skillOverlap(candidateSkills, criteriaSkills []string) float64 {
	if len(criteriaSkills) == 0 {
		return 0
	}
	matched := 0
	for _, want := range criteriaSkills {
		wantLower := strings.ToLower(want)
		for _, have := range candidateSkills {
			haveLower := strings.ToLower(have)
			if strings.Contains(haveLower, wantLower) || strings.Contains(wantLower, haveLower) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(criteriaSkills))
}

// experienceMatch scores how well the candidate's years fit the range: 1.0
// inside the range, proportional below the minimum, decaying by a tenth per
// year above the maximum.
func experienceMatch(years int, r ExperienceRange) float64 {
	switch {
	case years >= r.Min && years <= r.Max:
		return 1
	case years < r.Min:
		if r.Min == 0 {
			return 0
		}
		return float64(years) / float64(r.Min)
	default:
		m := 1 - float64(years-r.Max)/10
		if m < 0 {
			return 0
		}
		return m
	}
}

func titleOverlap(title string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	lowerTitle := strings.ToLower(title)
	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(lowerTitle, strings.ToLower(keyword)) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

func locationMatch(location string, preferred []string) bool {
	lowerLocation := strings.ToLower(location)
	for _, p := range preferred {
		if strings.Contains(lowerLocation, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func matchColor(score float64) string {
	switch {
	case score >= 80:
		return colorGood
	case score >= 60:
		return colorFair
	default:
		return colorPoor
	}
}
