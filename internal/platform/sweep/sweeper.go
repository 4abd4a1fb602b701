package sweep

import (
	"context"
	"errors"
	"fmt"
	"route-time-service/internal/platform/obs"
	"route-time-service/internal/ports"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper periodically evicts idle sessions from a store.
type Sweeper struct {
	logger *zap.Logger
	store  ports.SessionStore
	idle   time.Duration
	cron   *cron.Cron
}

func NewSweeper(logger *zap.Logger, store ports.SessionStore, idle time.Duration) *Sweeper {
	return &Sweeper{
		logger: logger,
		store:  store,
		idle:   idle,
		cron:   cron.New(),
	}
}

// Start schedules the sweep with a cron spec such as "@every 1m".
func (s *Sweeper) Start(schedule string) error {
	if s.store == nil {
		return errors.New("start sweeper: store is nil")
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return fmt.Errorf("start sweeper: schedule %q: %w", schedule, err)
	}
	s.cron.Start()

	s.logger.Info("session sweeper started",
		zap.String("schedule", schedule),
		zap.Duration("idle", s.idle),
	)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep evicts idle sessions once and returns how many were dropped.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	n, err := s.store.EvictIdle(obs.WithLogger(ctx, s.logger), s.idle)
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	return n, nil
}

func (s *Sweeper) run() {
	n, err := s.Sweep(context.Background())
	if err != nil {
		s.logger.Error("session sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("evicted idle sessions", zap.Int("count", n))
	}
}
