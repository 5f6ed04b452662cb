package httpapi

import (
	"net/http"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/logger"
)

type DashboardHandler struct {
	Svc *advisor.Service
	Log *logger.Logger
}

// Student accepts ?careerId= to pin the target career.
func (h DashboardHandler) Student(w http.ResponseWriter, r *http.Request) {
	d, err := h.Svc.StudentDashboard(r.Context(), caller(r).UserID, r.URL.Query().Get("careerId"))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, d)
}

type resumeReq struct {
	CareerID string `json:"careerId"`
	Resume   string `json:"resume"`
}

func (h DashboardHandler) Resume(w http.ResponseWriter, r *http.Request) {
	var req resumeReq
	if !decodeJSON(w, r, &req) {
		return
	}
	rep, err := h.Svc.ResumeCheck(r.Context(), caller(r).UserID, req.CareerID, req.Resume)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, rep)
}

func (h DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	d, err := h.Svc.AdminDashboard(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, d)
}
