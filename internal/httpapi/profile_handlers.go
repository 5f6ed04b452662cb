package httpapi

import (
	"net/http"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/logger"
)

type ProfileHandler struct {
	Svc *advisor.Service
	Log *logger.Logger
}

func (h ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetProfile(r.Context(), caller(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	// null when the caller has no profile yet
	writeJSON(w, p)
}

func (h ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	var in domain.Profile
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.Svc.SaveProfile(r.Context(), caller(r).UserID, in)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, p)
}

func (h ProfileHandler) Onboarding(w http.ResponseWriter, r *http.Request) {
	st, err := h.Svc.Onboarding(r.Context(), caller(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, st)
}
