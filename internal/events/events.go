package events

import (
	"encoding/json"
	"time"
)

// Event types streamed on /events.
const (
	AssessmentSubmitted = "assessment_submitted"
	GoalChanged         = "goal_changed"
	SessionBooked       = "session_booked"
	FeedbackSubmitted   = "feedback_submitted"
	CareerSaved         = "career_saved"
	DashboardRefreshed  = "dashboard_refreshed"
	ConfigUpdated       = "config_updated"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// Subscriber is the verified identity behind one stream.
type Subscriber struct {
	UserID string
	Admin  bool
}

// Audience selects the subscribers an event is delivered to. Admins receive
// everything; AdminOnly excludes everyone else; a UserID limits delivery to
// that user.
type Audience struct {
	UserID    string
	AdminOnly bool
}

var Everyone = Audience{}

func ForUser(userID string) Audience { return Audience{UserID: userID} }

func Admins() Audience { return Audience{AdminOnly: true} }

func (a Audience) Allows(s Subscriber) bool {
	switch {
	case s.Admin:
		return true
	case a.AdminOnly:
		return false
	case a.UserID != "":
		return s.UserID == a.UserID
	default:
		return true
	}
}

// Publisher is what mutating services need from the hub.
type Publisher interface {
	PublishTo(aud Audience, evt string)
}
