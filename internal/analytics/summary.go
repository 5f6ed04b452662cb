package analytics

import (
	"time"

	"careerguide-engine/internal/domain"
)

const NotEnoughData = "Not enough data"

type Summary struct {
	PeakHourLabel  string `json:"peakHourLabel"`
	TopCareer      string `json:"topCareer"`
	TotalSessions  int    `json:"totalSessions"`
	UniqueLearners int    `json:"uniqueLearners"`
}

func Summarize(sessions []domain.MentorshipSession, assessments []domain.Assessment, loc *time.Location) Summary {
	learners := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		learners[s.UserID] = struct{}{}
	}
	return Summary{
		PeakHourLabel:  PeakHourLabel(sessions, loc),
		TopCareer:      TopCareer(assessments),
		TotalSessions:  len(sessions),
		UniqueLearners: len(learners),
	}
}

// TopCareer is the most frequently recommended career. Ties go to the career
// seen first.
func TopCareer(assessments []domain.Assessment) string {
	counts := make(map[string]int)
	var order []string
	for _, a := range assessments {
		for _, c := range a.RecommendedCareers {
			if counts[c] == 0 {
				order = append(order, c)
			}
			counts[c]++
		}
	}
	if len(order) == 0 {
		return NotEnoughData
	}
	top := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[top] {
			top = c
		}
	}
	return top
}
