package session

import (
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/platform/obs"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	sess     *domain.Session
	lastSeen time.Time
}

// MemoryStore keeps sessions in process memory. Stored sessions are treated
// as immutable; Get hands out a copy stamped with the access time.
//
// The store is safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Put(sess *domain.Session) (string, error) {
	if sess.ID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		sess.ID = id.String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess.LastSeen = now
	s.sessions[sess.ID] = entry{sess: sess, lastSeen: now}
	obs.SetActiveSessions(len(s.sessions))

	return sess.ID, nil
}

func (s *MemoryStore) Get(id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	e.lastSeen = s.now()
	s.sessions[id] = e

	cp := *e.sess
	cp.LastSeen = e.lastSeen
	return &cp, nil
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	obs.SetActiveSessions(len(s.sessions))
}

func (s *MemoryStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	obs.SetActiveSessions(len(s.sessions))
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
