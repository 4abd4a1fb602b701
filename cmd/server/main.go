package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"route-time-service/internal/adapters/sessions"
	"route-time-service/internal/api"
	"route-time-service/internal/config"
	"route-time-service/internal/domain"
	"route-time-service/internal/platform/logging"
	"route-time-service/internal/platform/sweep"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the in-memory session store, the idle sweeper and the HTTP API.
func main() {
	dotenv := config.LoadDotEnv()

	cfg, err := config.Load(config.New())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if !dotenv {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(logger, cfg); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(logger *zap.Logger, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := sessions.NewMemorySessionStore(domain.Montesa)

	sweeper := sweep.NewSweeper(logger, store, cfg.SessionTTL)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		return err
	}
	defer sweeper.Stop()

	router := api.NewRouter(logger, store, domain.Montesa)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
