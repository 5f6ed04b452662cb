package rank

import (
	"math"
	"strings"

	"careerguide-engine/internal/domain"
)

// SkillCoverage is the student-dashboard radar: percentages of a target
// career's skills the profile already lists, and how well interests fit.
type SkillCoverage struct {
	CoreMatch   int `json:"coreMatch"`
	GrowthMatch int `json:"growthMatch"`
	InterestFit int `json:"interestFit"`
}

// Placeholders shown when the career lists no skills of a kind.
const (
	defaultCoreMatch   = 45
	defaultGrowthMatch = 38
	baseInterestFit    = 50
)

func ComputeSkillCoverage(profile *domain.Profile, career *domain.CareerPath, latest *domain.Assessment) SkillCoverage {
	var skills, interests []string
	if profile != nil {
		skills = Normalize(profile.Skills)
		interests = Normalize(profile.Interests)
	}

	cov := SkillCoverage{
		CoreMatch:   defaultCoreMatch,
		GrowthMatch: defaultGrowthMatch,
		InterestFit: baseInterestFit,
	}
	if career == nil {
		return cov
	}

	have := toSet(skills)
	if n := len(career.RequiredSkills); n > 0 {
		cov.CoreMatch = percent(countIn(career.RequiredSkills, have), n)
	}
	if n := len(career.SkillsToGrow); n > 0 {
		cov.GrowthMatch = percent(countIn(career.SkillsToGrow, have), n)
	}

	fit := baseInterestFit
	category := normalizeToken(career.Category)
	for _, interest := range interests {
		if interest != "" && category != "" && strings.Contains(interest, category) {
			fit += 30
			break
		}
	}
	if latest != nil && len(latest.Interests) > 0 {
		fit += 20
	}
	cov.InterestFit = min(100, fit)
	return cov
}

func countIn(skills []string, have map[string]bool) int {
	n := 0
	for _, s := range skills {
		if have[normalizeToken(s)] {
			n++
		}
	}
	return n
}

func percent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
