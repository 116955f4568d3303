package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bgcalendar/nameday-api/internal/api"
	"github.com/bgcalendar/nameday-api/internal/config"
	"github.com/bgcalendar/nameday-api/internal/logger"
	"github.com/bgcalendar/nameday-api/internal/nameday"
	"github.com/bgcalendar/nameday-api/internal/nameday/namedata"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.Setup(cfg)
	log.Info("starting nameday API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
	)

	svc := nameday.NewService(namedata.Fixed, namedata.MovableHolidays, log)

	// Warm the cache for the current year so the first request doesn't
	// pay the index build.
	year := time.Now().Year()
	svc.All(year)
	log.Info("index ready",
		slog.Int("year", year),
		slog.Int("fixed_entries", len(namedata.Fixed)),
		slog.Int("movable_holidays", len(namedata.MovableHolidays)),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.SetupRoutes(svc, cfg, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
