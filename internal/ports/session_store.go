package ports

import (
	"delivery-eda-service/internal/domain"
	"time"
)

// Port: a boundary for keeping per-browser sessions between requests.
type SessionStore interface {
	// Assign an id to the session (when empty) and store it.
	Put(s *domain.Session) (string, error)
	// Return the session and mark it as seen; domain.ErrSessionNotFound when absent.
	Get(id string) (*domain.Session, error)
	Delete(id string)
	// Remove sessions idle since before the cutoff and return how many were removed.
	Sweep(cutoff time.Time) int
	Len() int
}
