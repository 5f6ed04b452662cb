package domain

import "time"

type GoalStatus string

const (
	GoalPending    GoalStatus = "pending"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalPending, GoalInProgress, GoalCompleted:
		return true
	}
	return false
}

type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      GoalStatus `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Category    string     `json:"category"` // Learning/Networking/Job Search
	CreatedAt   time.Time  `json:"createdAt"`
}
