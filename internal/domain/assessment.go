package domain

import "time"

// Assessment is one self-report plus the recommendation computed for it.
// Records are append-only.
type Assessment struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Interests          []string  `json:"interests"`
	Strengths          []string  `json:"strengths"`
	FocusAreas         []string  `json:"focusAreas"`
	RecommendedCareers []string  `json:"recommendedCareers"`
	ConfidenceScore    int       `json:"confidenceScore"`
	Summary            string    `json:"summary"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Recommendation struct {
	RecommendedCareers []string `json:"recommendedCareers"`
	ConfidenceScore    int      `json:"confidenceScore"`
	Summary            string   `json:"summary"`
}
