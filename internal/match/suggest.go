// Package match pairs recent assessments with the counselor whose focus
// areas overlap them most.
package match

import (
	"strings"

	"careerguide-engine/internal/config"
	"careerguide-engine/internal/domain"
)

type Suggestion struct {
	AssessmentID  string `json:"assessmentId"`
	StudentFocus  string `json:"studentFocus"`
	CounselorID   string `json:"counselorId"`
	CounselorName string `json:"counselorName"`
	Overlap       int    `json:"overlap"`
	ScorePercent  int    `json:"scorePercent"`
}

// Suggest scores the first cfg.SampleSize assessments. The best counselor has
// the greatest overlap; equal overlaps go to the higher rating, then to the
// counselor listed first. A zero-overlap pick is still shown at BasePercent.
func Suggest(assessments []domain.Assessment, counselors []domain.Counselor, cfg config.Matching) []Suggestion {
	if len(assessments) == 0 || len(counselors) == 0 {
		return nil
	}
	if cfg.SampleSize > 0 && len(assessments) > cfg.SampleSize {
		assessments = assessments[:cfg.SampleSize]
	}

	out := make([]Suggestion, 0, len(assessments))
	for _, a := range assessments {
		best, overlap := bestCounselor(a, counselors)
		out = append(out, Suggestion{
			AssessmentID:  a.ID,
			StudentFocus:  studentFocus(a),
			CounselorID:   best.ID,
			CounselorName: best.Name,
			Overlap:       overlap,
			ScorePercent:  FitPercent(overlap, cfg),
		})
	}
	return out
}

func FitPercent(overlap int, cfg config.Matching) int {
	return min(100, cfg.BasePercent+overlap*cfg.PerOverlapPercent)
}

// Overlap counts counselor focus areas also present in the assessment.
func Overlap(counselor domain.Counselor, a domain.Assessment) int {
	focus := make(map[string]bool, len(a.FocusAreas))
	for _, f := range a.FocusAreas {
		focus[strings.ToLower(strings.TrimSpace(f))] = true
	}
	n := 0
	for _, area := range counselor.FocusAreas {
		if focus[strings.ToLower(strings.TrimSpace(area))] {
			n++
		}
	}
	return n
}

func bestCounselor(a domain.Assessment, counselors []domain.Counselor) (domain.Counselor, int) {
	best := counselors[0]
	bestOverlap := Overlap(best, a)
	for _, c := range counselors[1:] {
		o := Overlap(c, a)
		if o > bestOverlap || (o == bestOverlap && c.Rating > best.Rating) {
			best, bestOverlap = c, o
		}
	}
	return best, bestOverlap
}

func studentFocus(a domain.Assessment) string {
	if len(a.RecommendedCareers) > 0 {
		return a.RecommendedCareers[0]
	}
	return a.Summary
}
