package httpapi

import (
	"net/http"

	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/logger"
	"careerguide-engine/internal/secrets"
)

type SecretsHandler struct {
	Secrets *secrets.Store
	Issuer  *auth.Issuer
	Log     *logger.Logger
}

type rotateSecretReq struct {
	Secret string `json:"secret"`
}

// RotateSigningSecret stores a new JWT signing secret in the keychain and
// starts signing with it. Every issued token is invalidated.
func (h SecretsHandler) RotateSigningSecret(w http.ResponseWriter, r *http.Request) {
	if !isLocal(r) || !caller(r).IsAdmin() {
		WriteError(w, r, http.StatusForbidden, "forbidden", "forbidden")
		return
	}
	var req rotateSecretReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.Secrets.SetSigningSecret(req.Secret); err != nil {
		WriteError(w, r, http.StatusBadRequest, "secret_rejected", "failed to store secret: "+err.Error())
		return
	}
	if err := h.Issuer.Rotate(req.Secret); err != nil {
		WriteError(w, r, http.StatusBadRequest, "secret_rejected", err.Error())
		return
	}
	h.Log.Warn("jwt signing secret rotated", "request_id", RequestIDFrom(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
