// internal/rank/fit_scorer.go
package rank

import (
	"strings"

	"careerguide-engine/internal/config"
	"careerguide-engine/internal/domain"
)

// FitScorer weighs demonstrated skills (strengths vs required skills) above
// aspiration (focus areas vs skills to grow), plus a flat bonus when an
// interest names the career's category.
type FitScorer struct {
	Cfg config.Scoring
}

func (s FitScorer) Score(u Attributes, career domain.CareerPath) Fit {
	strengths := toSet(u.Strengths)
	focus := toSet(u.FocusAreas)

	var f Fit
	for _, skill := range career.RequiredSkills {
		if strengths[normalizeToken(skill)] {
			f.RequiredMatch++
		}
	}
	for _, skill := range career.SkillsToGrow {
		if focus[normalizeToken(skill)] {
			f.GrowthMatch++
		}
	}

	category := normalizeToken(career.Category)
	for _, interest := range u.Interests {
		// "" is a substring of everything; blank tokens carry no signal
		if interest == "" {
			continue
		}
		if strings.Contains(category, interest) {
			f.CategoryBoost = s.Cfg.CategoryBoost
			break
		}
	}

	f.Score = f.RequiredMatch*s.Cfg.RequiredWeight + f.GrowthMatch*s.Cfg.GrowthWeight + f.CategoryBoost
	return f
}
