package search

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// skillsVocabulary is the fixed skills lexicon used for criteria extraction.
// Order matters: extracted skills preserve vocabulary order, not query order.
var skillsVocabulary = []string{
	"javascript", "typescript", "react", "angular", "vue", "node", "express",
	"python", "django", "flask", "java", "spring", "c#", "dotnet",
	"php", "laravel", "wordpress", "html", "css", "sass", "bootstrap",
	"mongodb", "mysql", "postgresql", "sql", "redis", "aws", "docker",
	"kubernetes", "git", "jenkins", "figma", "photoshop", "illustrator",
	"selenium", "cypress", "jest", "testing", "devops", "agile", "scrum",
}

var locationsVocabulary = []string{
	"mumbai", "delhi", "bangalore", "chennai", "hyderabad", "pune",
	"kolkata", "ahmedabad", "surat", "jaipur", "lucknow", "kanpur",
	"nagpur", "indore", "thane", "bhopal", "visakhapatnam", "patna",
}

var jobTitleVocabulary = []string{
	"developer", "engineer", "designer", "manager", "analyst", "architect",
	"consultant", "specialist", "lead", "head", "director", "executive",
	"tester", "qa", "administrator", "coordinator", "assistant", "officer",
}

const (
	maxSkills        = 5
	maxTitleKeywords = 3
	maxLocations     = 3
)

var experienceYearsRe = regexp.MustCompile(`(?i)(\d+)\s*[+\-~]?\s*(?:years?|yrs?)`)

// ExperienceRange is an inclusive range of experience years.
type ExperienceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria is the structured filter derived from a free-text query.
// It is transient: built per request, never persisted.
type Criteria struct {
	Skills        []string         `json:"skills"`
	Experience    *ExperienceRange `json:"experience,omitempty"`
	TitleKeywords []string         `json:"title_keywords"`
	Locations     []string         `json:"location_preferences"`
	Education     []string         `json:"education"`
}

// Extractor derives search criteria from a free-text query. Implementations
// may call out to an external semantic service; callers must tolerate errors
// and fall back to FallbackCriteria.
type Extractor interface {
	Extract(ctx context.Context, query string) (*Criteria, error)
}

// VocabularyExtractor derives criteria with fixed-vocabulary string matching.
// It never returns an error.
type VocabularyExtractor struct{}

func NewVocabularyExtractor() *VocabularyExtractor {
	return &VocabularyExtractor{}
}

func (e *VocabularyExtractor) Extract(_ context.Context, query string) (*Criteria, error) {
	lower := strings.ToLower(query)

	return &Criteria{
		Skills:        extractSkills(lower),
		Experience:    extractExperience(lower),
		TitleKeywords: extractTitleKeywords(lower),
		Locations:     extractLocations(lower),
		Education:     extractEducation(lower),
	}, nil
}

func extractSkills(lowerQuery string) []string {
	var found []string
	for _, skill := range skillsVocabulary {
		if strings.Contains(lowerQuery, skill) {
			found = append(found, skill)
			if len(found) == maxSkills {
				break
			}
		}
	}
	return found
}

// extractExperience resolves the experience range by priority: seniority
// keywords first, then an explicit "N years" pattern, then the default.
// Only the first matching rule applies.
func extractExperience(lowerQuery string) *ExperienceRange {
	switch {
	case containsAny(lowerQuery, "fresher", "entry level", "0 year"):
		return &ExperienceRange{Min: 0, Max: 1}
	case containsAny(lowerQuery, "senior", "lead", "manager"):
		return &ExperienceRange{Min: 5, Max: 15}
	case containsAny(lowerQuery, "mid", "mid-level"):
		return &ExperienceRange{Min: 2, Max: 5}
	}

	if m := experienceYearsRe.FindStringSubmatch(lowerQuery); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			min := years - 1
			if min < 0 {
				min = 0
			}
			return &ExperienceRange{Min: min, Max: years + 2}
		}
	}

	return &ExperienceRange{Min: 0, Max: 10}
}

func extractTitleKeywords(lowerQuery string) []string {
	words := strings.Fields(lowerQuery)

	var found []string
	for _, word := range words {
		if len(word) <= 3 {
			continue
		}
		for _, title := range jobTitleVocabulary {
			if strings.Contains(title, word) || strings.Contains(word, title) {
				found = append(found, word)
				break
			}
		}
		if len(found) == maxTitleKeywords {
			break
		}
	}
	if len(found) > 0 {
		return found
	}

	// No vocabulary hits: fall back to the first few long tokens verbatim.
	for _, word := range words {
		if len(word) > 3 {
			found = append(found, word)
			if len(found) == maxTitleKeywords {
				break
			}
		}
	}
	return found
}

func extractLocations(lowerQuery string) []string {
	var found []string
	for _, city := range locationsVocabulary {
		if strings.Contains(lowerQuery, city) {
			found = append(found, city)
			if len(found) == maxLocations {
				break
			}
		}
	}
	return found
}

func extractEducation(lowerQuery string) []string {
	var tags []string
	if containsAny(lowerQuery, "bachelor", "b.tech", "be", "b.e") {
		tags = append(tags, "bachelor")
	}
	if containsAny(lowerQuery, "master", "m.tech", "me", "m.e") {
		tags = append(tags, "master")
	}
	if containsAny(lowerQuery, "phd", "doctorate") {
		tags = append(tags, "phd")
	}
	if containsAny(lowerQuery, "diploma") {
		tags = append(tags, "diploma")
	}
	return tags
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
