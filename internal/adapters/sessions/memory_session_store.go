package sessions

import (
	"context"
	"errors"
	"fmt"
	"route-time-service/internal/domain"
	"route-time-service/internal/platform/obs"
	"route-time-service/internal/ports"
	"route-time-service/internal/services"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	mu        sync.Mutex
	calc      *services.RouteCalculator
	touchedAt time.Time
}

// MemorySessionStore keeps sessions in process memory only.
// Each session owns its own calculator; nothing is written to disk.
//
// The store is safe for concurrent use.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	table    domain.PositionTable
	now      func() time.Time
}

func NewMemorySessionStore(table domain.PositionTable) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*session),
		table:    table,
		now:      time.Now,
	}
}

// normalize makes ids pasted with surrounding whitespace or in upper case match.
func (s *MemorySessionStore) normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func (s *MemorySessionStore) Create(ctx context.Context) (_ string, err error) {
	defer obs.Time(ctx, "sessions.Create")(&err)

	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &session{
		calc:      services.NewRouteCalculator(s.table),
		touchedAt: s.now(),
	}

	return id, nil
}

func (s *MemorySessionStore) Do(
	ctx context.Context,
	id string,
	fn func(*services.RouteCalculator) error,
) (err error) {
	defer obs.Time(ctx, "sessions.Do")(&err)

	if fn == nil {
		return errors.New("session do: fn is nil")
	}

	key := s.normalize(id)

	s.mu.Lock()
	sess, ok := s.sessions[key]
	if ok {
		sess.touchedAt = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("session do %q: %w", id, ports.ErrSessionNotFound)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return fn(sess.calc)
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "sessions.Delete")(&err)

	key := s.normalize(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[key]; !ok {
		return fmt.Errorf("session delete %q: %w", id, ports.ErrSessionNotFound)
	}
	delete(s.sessions, key)

	return nil
}

func (s *MemorySessionStore) EvictIdle(ctx context.Context, idle time.Duration) (_ int, err error) {
	defer obs.Time(ctx, "sessions.EvictIdle")(&err)

	if idle <= 0 {
		return 0, errors.New("evict idle sessions: idle duration must be positive")
	}

	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}

	return evicted, nil
}

// Len reports the number of live sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

var _ ports.SessionStore = (*MemorySessionStore)(nil)
