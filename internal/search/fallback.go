package search

import (
	"strconv"
	"strings"
)

// fallbackSkills is the reduced lexicon used when the primary extractor is
// unavailable. Deliberately smaller than skillsVocabulary: the degraded path
// trades recall for simplicity.
var fallbackSkills = []string{
	"javascript", "typescript", "react", "angular", "vue", "node",
	"python", "java", "html", "css", "sql",
}

var fallbackLocations = []string{
	"mumbai", "delhi", "bangalore", "chennai", "hyderabad", "pune", "surat",
}

// FallbackCriteria derives criteria without the richer vocabulary handling.
// Used when the primary Extractor errors; it cannot fail.
func FallbackCriteria(query string) *Criteria {
	lower := strings.ToLower(query)

	var skills []string
	for _, skill := range fallbackSkills {
		if strings.Contains(lower, skill) {
			skills = append(skills, skill)
		}
	}

	var locations []string
	for _, city := range fallbackLocations {
		if strings.Contains(lower, city) {
			locations = append(locations, city)
		}
	}

	experience := &ExperienceRange{Min: 0, Max: 10}
	if m := experienceYearsRe.FindStringSubmatch(lower); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			min := years - 2
			if min < 0 {
				min = 0
			}
			experience = &ExperienceRange{Min: min, Max: years + 2}
		}
	}

	var keywords []string
	for _, word := range strings.Fields(lower) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}

	return &Criteria{
		Skills:        skills,
		Experience:    experience,
		TitleKeywords: keywords,
		Locations:     locations,
		Education:     []string{},
	}
}
