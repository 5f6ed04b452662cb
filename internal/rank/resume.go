package rank

import (
	"math"
	"strings"

	"careerguide-engine/internal/domain"
)

type ResumeReport struct {
	Score           int      `json:"score"`
	KeywordMatches  []string `json:"keywordMatches"`
	MissingKeywords []string `json:"missingKeywords"`
	Recommendations []string `json:"recommendations"`
}

var genericResumeKeywords = []string{"impact", "ownership", "analysis"}

// EvaluateResume checks resume text for the target career's skill keywords.
// The score starts at 40, adds up to 40 for length and 8 per keyword hit,
// loses 8 for double spaces, and is clamped to 35..100.
func EvaluateResume(resume string, career *domain.CareerPath) ResumeReport {
	keywords := genericResumeKeywords
	target := "target"
	if career != nil {
		keywords = append(append([]string{}, career.RequiredSkills...), career.SkillsToGrow...)
		target = career.Title
	}

	text := strings.ToLower(resume)
	rep := ResumeReport{KeywordMatches: []string{}, MissingKeywords: []string{}}
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			rep.KeywordMatches = append(rep.KeywordMatches, kw)
		} else if len(rep.MissingKeywords) < 5 {
			rep.MissingKeywords = append(rep.MissingKeywords, kw)
		}
	}

	lengthScore := min(40, int(math.Round(float64(len(strings.Fields(resume)))/5)))
	keywordScore := len(rep.KeywordMatches) * 8
	penalty := 0
	if strings.Contains(resume, "  ") {
		penalty = 8
	}
	rep.Score = clamp(40+lengthScore+keywordScore-penalty, 35, 100)

	rep.Recommendations = []string{
		"Mirror keywords from the job description.",
		"Quantify achievements with numbers.",
		"Keep a consistent tense and casing.",
	}
	if len(rep.MissingKeywords) > 0 {
		mention := "Mention: " + strings.Join(rep.MissingKeywords, ", ") + " to match " + target + " role."
		rep.Recommendations = append([]string{mention}, rep.Recommendations...)
	}
	return rep
}
