package analytics

import "careerguide-engine/internal/domain"

type DuplicateAlert struct {
	Duplicates       []string `json:"duplicates"`
	SuspiciousLogins bool     `json:"suspiciousLogins"`
}

// DetectDuplicates flags every user holding more than threshold sessions.
// A user is flagged once, in the order they crossed the threshold. This is a
// review signal for a dashboard, not grounds for account action.
func DetectDuplicates(sessions []domain.MentorshipSession, threshold int) DuplicateAlert {
	counts := make(map[string]int)
	flagged := make(map[string]bool)
	alert := DuplicateAlert{Duplicates: []string{}}

	for _, s := range sessions {
		counts[s.UserID]++
		if counts[s.UserID] > threshold && !flagged[s.UserID] {
			flagged[s.UserID] = true
			alert.Duplicates = append(alert.Duplicates, s.UserID)
		}
	}
	alert.SuspiciousLogins = len(alert.Duplicates) > 0
	return alert
}
