package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/logger"
	"careerguide-engine/internal/store"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeServiceError maps engine errors onto HTTP statuses. Anything
// unrecognised is logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, advisor.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidToken):
		WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "sign in to continue")
	case errors.Is(err, advisor.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), advisor.ErrInvalidInput.Error()+": ")
		WriteError(w, r, http.StatusBadRequest, "invalid_input", msg)
	case errors.Is(err, advisor.ErrForbidden):
		WriteError(w, r, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", "not found")
	default:
		log.Error("request failed",
			"request_id", RequestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
