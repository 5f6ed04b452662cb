package analytics

import (
	"fmt"
	"strings"

	"careerguide-engine/internal/domain"
)

type CounselorPerformance struct {
	CounselorID  string  `json:"counselorId"`
	Name         string  `json:"name"`
	Sessions     int     `json:"sessions"`
	Rating       float64 `json:"rating"`
	FocusAreas   string  `json:"focusAreas"`
	ResponseTime string  `json:"responseTime"`
}

// CounselorLoad lists each counselor with the number of sessions they handle.
// ResponseTime is a display SLA that tightens as load grows, bottoming at 1h.
func CounselorLoad(counselors []domain.Counselor, sessions []domain.MentorshipSession) []CounselorPerformance {
	handled := make(map[string]int)
	for _, s := range sessions {
		handled[s.CounselorID]++
	}

	out := make([]CounselorPerformance, 0, len(counselors))
	for _, c := range counselors {
		n := handled[c.ID]
		rt := "—"
		if n > 0 {
			rt = fmt.Sprintf("%dh SLA", max(1, 12-n))
		}
		out = append(out, CounselorPerformance{
			CounselorID:  c.ID,
			Name:         c.Name,
			Sessions:     n,
			Rating:       c.Rating,
			FocusAreas:   strings.Join(c.FocusAreas, ", "),
			ResponseTime: rt,
		})
	}
	return out
}
