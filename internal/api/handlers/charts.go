package handlers

import (
	"bytes"
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/ports"
	"delivery-eda-service/internal/services"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChartHandler renders one chart of the session's filtered dataset.
type ChartHandler struct {
	Preparer *services.DatasetPreparer
	Store    ports.SessionStore
	Renderer ports.ChartRenderer
}

func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	kind := ports.ChartKind(chi.URLParam(r, "kind"))
	if !knownChart(kind) {
		writeError(w, r, http.StatusNotFound, "unknown chart")
		return
	}

	sess, ok := sessionOrError(w, r, h.Store)
	if !ok {
		return
	}

	sel := selectionFromQuery(r.URL.Query(), domain.ObservedSelection(sess.Clean))
	filtered := h.Preparer.Filter(sess.Clean, sel)

	var buf bytes.Buffer
	if err := h.Renderer.Render(r.Context(), kind, filtered, &buf); err != nil {
		slog.ErrorContext(r.Context(), "render chart failed", "kind", kind, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", h.Renderer.ContentType())
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func knownChart(kind ports.ChartKind) bool {
	for _, k := range ports.ChartKinds {
		if k == kind {
			return true
		}
	}
	return false
}
