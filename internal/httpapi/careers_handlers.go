package httpapi

import (
	"net/http"
	"strings"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/logger"
)

type CareersHandler struct {
	Svc *advisor.Service
	Log *logger.Logger
}

func (h CareersHandler) List(w http.ResponseWriter, r *http.Request) {
	careers, err := h.Svc.ListCareers(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, careers)
}

func (h CareersHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Svc.CareerCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, cats)
}

func (h CareersHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	saved, err := h.Svc.ListSavedCareers(r.Context(), caller(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, saved)
}

type toggleSavedReq struct {
	CareerID string `json:"careerId"`
}

func (h CareersHandler) ToggleSaved(w http.ResponseWriter, r *http.Request) {
	var req toggleSavedReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.CareerID) == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_input", "careerId is required")
		return
	}
	state, err := h.Svc.ToggleSavedCareer(r.Context(), caller(r).UserID, req.CareerID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, map[string]string{"state": state})
}

func (h CareersHandler) Seed(w http.ResponseWriter, r *http.Request) {
	careers, counselors, err := h.Svc.SeedCatalog(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, map[string]int{"careers": careers, "counselors": counselors})
}
