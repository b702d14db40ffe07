package session

import (
	"delivery-eda-service/internal/ports"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper expires idle sessions on a cron schedule.
type Sweeper struct {
	store ports.SessionStore
	ttl   time.Duration
	cron  *cron.Cron
	now   func() time.Time
}

// NewSweeper schedules sweeps; schedule is a standard cron expression or a
// descriptor such as "@every 1m".
func NewSweeper(store ports.SessionStore, ttl time.Duration, schedule string) (*Sweeper, error) {
	s := &Sweeper{
		store: store,
		ttl:   ttl,
		cron:  cron.New(),
		now:   time.Now,
	}

	if _, err := s.cron.AddFunc(schedule, func() { s.Run() }); err != nil {
		return nil, fmt.Errorf("schedule session sweep %q: %w", schedule, err)
	}
	return s, nil
}

// Run removes sessions idle for longer than the TTL.
func (s *Sweeper) Run() int {
	removed := s.store.Sweep(s.now().Add(-s.ttl))
	if removed > 0 {
		slog.Info("sessions expired", "removed", removed, "active", s.store.Len())
	}
	return removed
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}
