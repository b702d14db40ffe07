package handlers

import (
	"delivery-eda-service/internal/ports"
	"net/http"
)

// HealthHandler reports liveness and how many sessions are held.
type HealthHandler struct {
	Store ports.SessionStore
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]any{"status": "ok", "sessions": h.Store.Len()}
	writeJSON(w, r, http.StatusOK, res)
}
