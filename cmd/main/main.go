package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/hrms-lite/internal/config"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
	"github.com/UnknownOlympus/hrms-lite/internal/server"
	"github.com/UnknownOlympus/hrms-lite/internal/services/attendance"
	"github.com/UnknownOlympus/hrms-lite/internal/services/employees"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)
	setupGinMode(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx, cfg.Postgres.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err) //nolint:gocritic // nothing to release yet
	}
	defer dtb.Close()

	txManager := repository.NewTxManager(dtb)
	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	attendanceRepo := repository.NewAttendanceRepository(dtb, appMetrics)
	directory := employees.NewDirectory(logger, employeeRepo, txManager, appMetrics)
	ledger := attendance.NewLedger(logger, attendanceRepo, employeeRepo, txManager, appMetrics)

	router := server.NewRouter(logger, directory, ledger, appMetrics, cfg.HTTP.CORSOrigins)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		if serveErr := server.StartMonitoringServer(ctx, logger, reg, dtb, cfg.Monitoring.Port); serveErr != nil {
			logger.ErrorContext(ctx, "Monitoring server failed", sl.Err(serveErr))
		}
	}()

	go func() {
		defer wgr.Done()
		if serveErr := server.StartAPIServer(ctx, logger, router, cfg.HTTP); serveErr != nil {
			logger.ErrorContext(ctx, "API server failed", sl.Err(serveErr))
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "address", cfg.HTTP.Address)

	wgr.Wait()

	logger.InfoContext(context.WithoutCancel(ctx), "Application stopped gracefully...")
}

// setupGinMode keeps gin's debug route dump for local runs only.
func setupGinMode(env string) {
	if env == envLocal {
		gin.SetMode(gin.DebugMode)
		return
	}

	gin.SetMode(gin.ReleaseMode)
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
