package httpapi

import (
	"database/sql"
	"net/http"

	"careerguide-engine/internal/logger"
	"careerguide-engine/internal/store"
)

type DBHandler struct {
	DB  *sql.DB
	Log *logger.Logger
}

// Checkpoint folds the WAL into the database file so it can be copied for
// a backup. Local admin callers only.
func (h DBHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	if !isLocal(r) || !caller(r).IsAdmin() {
		WriteError(w, r, http.StatusForbidden, "forbidden", "forbidden")
		return
	}
	if err := store.Checkpoint(r.Context(), h.DB); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
