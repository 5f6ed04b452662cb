package httpapi

import (
	"net/http"
	"strings"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/logger"
)

type GoalsHandler struct {
	Svc *advisor.Service
	Log *logger.Logger
}

func (h GoalsHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.Svc.ListGoals(r.Context(), caller(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, goals)
}

func (h GoalsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in advisor.GoalInput
	if !decodeJSON(w, r, &in) {
		return
	}
	g, err := h.Svc.CreateGoal(r.Context(), caller(r).UserID, in)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusCreated, g)
}

type goalStatusReq struct {
	Status domain.GoalStatus `json:"status"`
}

// UpdateByPath expects /goals/{id}.
func (h GoalsHandler) UpdateByPath(w http.ResponseWriter, r *http.Request) {
	id, ok := goalID(w, r)
	if !ok {
		return
	}
	var req goalStatusReq
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.Svc.UpdateGoalStatus(r.Context(), caller(r).UserID, id, req.Status)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, g)
}

// DeleteByPath expects /goals/{id}.
func (h GoalsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id, ok := goalID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.DeleteGoal(r.Context(), caller(r).UserID, id); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

func goalID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/goals/"), "/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_input", "invalid goal id")
		return "", false
	}
	return id, true
}
