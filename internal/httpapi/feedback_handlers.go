package httpapi

import (
	"net/http"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/logger"
)

type FeedbackHandler struct {
	Svc *advisor.Service
	Log *logger.Logger
}

func (h FeedbackHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListMyFeedback(r.Context(), caller(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, list)
}

func (h FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in advisor.FeedbackInput
	if !decodeJSON(w, r, &in) {
		return
	}
	f, err := h.Svc.SubmitFeedback(r.Context(), caller(r).UserID, in)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusCreated, f)
}
