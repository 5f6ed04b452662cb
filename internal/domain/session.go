package domain

import "time"

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

type MentorshipSession struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	CounselorID string        `json:"counselorId"`
	SessionDate time.Time     `json:"sessionDate"`
	Goal        string        `json:"goal"`
	Status      SessionStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// SessionWithCounselor is a session joined with its counselor; Counselor is
// nil when the counselor row no longer exists.
type SessionWithCounselor struct {
	Session   MentorshipSession `json:"session"`
	Counselor *Counselor        `json:"counselor"`
}
