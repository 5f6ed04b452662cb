package rank

import "careerguide-engine/internal/domain"

// Attributes is a user's self-report after normalization.
type Attributes struct {
	Strengths  []string
	FocusAreas []string
	Interests  []string
}

func NewAttributes(strengths, focusAreas, interests []string) Attributes {
	return Attributes{
		Strengths:  Normalize(strengths),
		FocusAreas: Normalize(focusAreas),
		Interests:  Normalize(interests),
	}
}

// Fit is the breakdown behind one career's score.
type Fit struct {
	RequiredMatch int `json:"requiredMatch"`
	GrowthMatch   int `json:"growthMatch"`
	CategoryBoost int `json:"categoryBoost"`
	Score         int `json:"score"`
}

type Scorer interface {
	Score(u Attributes, career domain.CareerPath) Fit
}
