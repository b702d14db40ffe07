package handlers

import (
	"bytes"
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/platform/obs"
	"delivery-eda-service/internal/ports"
	"delivery-eda-service/internal/services"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const (
	msgNoFile   = "Please upload a dataset file to start the analysis."
	msgTooLarge = "The uploaded file is too large."
)

// DashboardHandler serves the HTML page and the upload/reset actions.
type DashboardHandler struct {
	Preparer       *services.DatasetPreparer
	Store          ports.SessionStore
	MaxUploadBytes int64
}

// Index renders the dashboard for the current session, or the upload prompt.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r, h.Store)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			slog.ErrorContext(r.Context(), "load session failed", "err", err)
		}
		h.page(w, r, http.StatusOK, pageView{Info: msgNoFile})
		return
	}

	sel := selectionFromQuery(r.URL.Query(), domain.ObservedSelection(sess.Clean))
	h.page(w, r, http.StatusOK, newPageView(h.Preparer.Overview(sess, sel)))
}

// Upload parses the posted file into a new session and redirects to the page.
// Failures re-render the page with the error and keep no partial dataset.
func (h *DashboardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		switch {
		case tooLarge(err):
			obs.RecordUpload("too_large")
			h.page(w, r, http.StatusRequestEntityTooLarge, pageView{Error: msgTooLarge})
		default:
			obs.RecordUpload("no_file")
			h.page(w, r, http.StatusBadRequest, pageView{Info: msgNoFile})
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, hdr, err := r.FormFile("file")
	if err != nil {
		obs.RecordUpload("no_file")
		h.page(w, r, http.StatusOK, pageView{Info: msgNoFile})
		return
	}
	defer file.Close()

	sess, err := h.Preparer.Prepare(r.Context(), hdr.Filename, file)
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			obs.RecordUpload("parse_error")
			slog.InfoContext(r.Context(), "upload rejected", "file", hdr.Filename, "err", err)
			h.page(w, r, http.StatusUnprocessableEntity, pageView{Error: "Could not parse the uploaded file: " + pe.Error()})
			return
		}
		obs.RecordUpload("error")
		slog.ErrorContext(r.Context(), "prepare dataset failed", "file", hdr.Filename, "err", err)
		h.page(w, r, http.StatusInternalServerError, pageView{Error: "Internal error while processing the file."})
		return
	}

	if old, err := r.Cookie(SessionCookie); err == nil {
		h.Store.Delete(old.Value)
	}
	id, err := h.Store.Put(sess)
	if err != nil {
		obs.RecordUpload("error")
		slog.ErrorContext(r.Context(), "store session failed", "err", err)
		h.page(w, r, http.StatusInternalServerError, pageView{Error: "Internal error while processing the file."})
		return
	}

	obs.RecordUpload("ok")
	slog.InfoContext(r.Context(), "dataset uploaded",
		"file", hdr.Filename, "rows", sess.Raw.Len(), "kept", sess.Clean.Len(), "session", id)

	setSessionCookie(w, r, id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset drops the session and returns to the upload prompt.
func (h *DashboardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		h.Store.Delete(c.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// tooLarge reports whether err came from the upload size limit; multipart
// parsing does not always keep the *http.MaxBytesError in the chain.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}

func (h *DashboardHandler) page(w http.ResponseWriter, r *http.Request, status int, v pageView) {
	v.MaxMB = h.MaxUploadBytes >> 20

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, v); err != nil {
		slog.ErrorContext(r.Context(), "render page failed", "err", fmt.Errorf("execute template: %w", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
