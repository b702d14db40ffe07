package session

import (
	"delivery-eda-service/internal/domain"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore() (*MemoryStore, *clock) {
	c := &clock{t: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	s := NewMemoryStore()
	s.now = c.now
	return s, c
}

func TestMemoryStorePutAssignsID(t *testing.T) {
	s, _ := newTestStore()

	id, err := s.Put(&domain.Session{FileName: "a.csv"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "a.csv", got.FileName)

	other, err := s.Put(&domain.Session{})
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStoreKeepsGivenID(t *testing.T) {
	s, _ := newTestStore()

	id, err := s.Put(&domain.Session{ID: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s, _ := newTestStore()
	id, _ := s.Put(&domain.Session{})

	s.Delete(id)
	_, err := s.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStoreSweepUsesLastAccess(t *testing.T) {
	s, c := newTestStore()

	idle, _ := s.Put(&domain.Session{})
	active, _ := s.Put(&domain.Session{})

	c.advance(20 * time.Minute)
	_, err := s.Get(active)
	require.NoError(t, err)

	c.advance(15 * time.Minute)
	removed := s.Sweep(c.now().Add(-30 * time.Minute))

	assert.Equal(t, 1, removed)
	_, err = s.Get(idle)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = s.Get(active)
	assert.NoError(t, err)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s, _ := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := s.Put(&domain.Session{FileName: fmt.Sprintf("%d.csv", i)})
			if err != nil {
				return
			}
			_, _ = s.Get(id)
			if i%2 == 0 {
				s.Delete(id)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
}

func TestSweeperRun(t *testing.T) {
	s, c := newTestStore()
	_, _ = s.Put(&domain.Session{})

	sw, err := NewSweeper(s, 30*time.Minute, "@every 1m")
	require.NoError(t, err)
	sw.now = c.now

	assert.Equal(t, 0, sw.Run())
	c.advance(31 * time.Minute)
	assert.Equal(t, 1, sw.Run())
	assert.Equal(t, 0, s.Len())
}

func TestSweeperRejectsBadSchedule(t *testing.T) {
	_, err := NewSweeper(NewMemoryStore(), time.Minute, "every now and then")
	assert.Error(t, err)
}

func TestSweeperStartStop(t *testing.T) {
	sw, err := NewSweeper(NewMemoryStore(), time.Minute, "@every 1h")
	require.NoError(t, err)

	sw.Start()
	sw.Stop()
}
