package httpapi

import (
	"net/http"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/logger"
)

type AssessmentsHandler struct {
	Svc     *advisor.Service
	Log     *logger.Logger
	Limiter *UserLimiter
}

func (h AssessmentsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListMyAssessments(r.Context(), caller(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, list)
}

func (h AssessmentsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := caller(r)
	if id.UserID == "" {
		writeServiceError(w, r, h.Log, advisor.ErrUnauthenticated)
		return
	}
	if h.Limiter != nil && !h.Limiter.Allow(id.UserID) {
		WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many submissions, try again shortly")
		return
	}

	var in advisor.AssessmentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	rec, err := h.Svc.SubmitAssessment(r.Context(), id.UserID, in)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusCreated, rec)
}
