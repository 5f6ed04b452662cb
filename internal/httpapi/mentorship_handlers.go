package httpapi

import (
	"net/http"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/logger"
)

type MentorshipHandler struct {
	Svc *advisor.Service
	Log *logger.Logger
}

func (h MentorshipHandler) Counselors(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListCounselors(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, list)
}

func (h MentorshipHandler) SeedCounselors(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.SeedCounselors(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, map[string]int{"counselors": n})
}

func (h MentorshipHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListMySessions(r.Context(), caller(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, list)
}

func (h MentorshipHandler) Book(w http.ResponseWriter, r *http.Request) {
	var in advisor.BookingInput
	if !decodeJSON(w, r, &in) {
		return
	}
	s, err := h.Svc.BookSession(r.Context(), caller(r).UserID, in)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusCreated, s)
}
