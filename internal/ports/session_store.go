package ports

import (
	"context"
	"errors"
	"route-time-service/internal/services"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Port: a boundary for keeping one route calculator per dispatcher session.
// Sessions are isolated; no state is shared between them.
type SessionStore interface {
	// Start a new session with an empty route and return its identifier.
	Create(ctx context.Context) (string, error)
	// Run fn with exclusive access to the session's calculator.
	Do(ctx context.Context, id string, fn func(*services.RouteCalculator) error) error
	// Drop a session and its route.
	Delete(ctx context.Context, id string) error
	// Drop sessions untouched for longer than idle and return how many were removed.
	EvictIdle(ctx context.Context, idle time.Duration) (int, error)
}
