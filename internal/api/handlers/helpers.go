package handlers

import (
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/ports"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// SessionCookie carries the id of the browser's working session.
const SessionCookie = "eda_session"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// currentSession resolves the session named by the request cookie.
// A missing cookie and an expired session both yield domain.ErrSessionNotFound.
func currentSession(r *http.Request, store ports.SessionStore) (*domain.Session, error) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return nil, domain.ErrSessionNotFound
	}
	return store.Get(c.Value)
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionOrError writes a JSON error when the request has no live session.
func sessionOrError(w http.ResponseWriter, r *http.Request, store ports.SessionStore) (*domain.Session, bool) {
	sess, err := currentSession(r, store)
	if err == nil {
		return sess, true
	}
	if errors.Is(err, domain.ErrSessionNotFound) {
		writeError(w, r, http.StatusNotFound, "no dataset uploaded")
		return nil, false
	}
	slog.ErrorContext(r.Context(), "load session failed", "err", err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
	return nil, false
}
