package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/config"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const monitoringShutdownTimeout = 5 * time.Second

// StartAPIServer serves the public API until ctx is cancelled, then drains it within the shutdown timeout.
func StartAPIServer(ctx context.Context, log *slog.Logger, handler http.Handler, cfg config.HTTPConfig) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return serve(ctx, log.With(slog.String("server", "api")), srv, cfg.ShutdownTimeout)
}

// StartMonitoringServer serves /metrics from reg and /healthz backed by a database ping.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	port int,
) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/healthz", NewHealthChecker(db, log))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           mux,
		ReadHeaderTimeout: monitoringShutdownTimeout,
	}

	return serve(ctx, log.With(slog.String("server", "monitoring")), srv, monitoringShutdownTimeout)
}

func serve(ctx context.Context, log *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)

	go func() {
		log.InfoContext(ctx, "Starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "HTTP server shutdown failed", sl.Err(err))
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	log.InfoContext(shutdownCtx, "HTTP server stopped")

	return nil
}
