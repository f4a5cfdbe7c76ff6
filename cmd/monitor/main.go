package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hamed0406/healthmon/internal/config"
	"github.com/hamed0406/healthmon/internal/httpapi"
	"github.com/hamed0406/healthmon/internal/logging"
	"github.com/hamed0406/healthmon/internal/probe"
	"github.com/hamed0406/healthmon/internal/report"
	"github.com/hamed0406/healthmon/internal/scheduler"
	"github.com/hamed0406/healthmon/internal/stats"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "path to the endpoints config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logger init failed:", err)
		os.Exit(1)
	}

	// SIGINT/SIGTERM is the single cancellation trigger; repeated signals
	// are absorbed by the same context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, logger)
	stop()
	_ = logger.Sync()

	switch {
	case errors.Is(err, scheduler.ErrOverrun):
		fmt.Fprintln(os.Stderr, "Too many concurrent requests: the check workload exceeds the interval; adjust concurrency parameters")
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, "Monitor failed:", err)
		os.Exit(1)
	default:
		fmt.Println("Stopping monitor...")
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	eps, err := cfg.ParseEndpoints()
	if err != nil {
		return fmt.Errorf("parse endpoints: %w", err)
	}

	registry := stats.NewRegistry(eps)
	metrics := scheduler.NewMetrics(prometheus.DefaultRegisterer)
	exec := &scheduler.Executor{
		Log:      logger,
		Checker:  probe.NewHTTPChecker(cfg.RequestTimeout),
		Registry: registry,
		Metrics:  metrics,
	}
	mon := scheduler.NewMonitor(
		logger,
		eps,
		registry,
		exec,
		scheduler.NewPool(cfg.MaxConcurrency),
		report.Multi(report.NewConsole(os.Stdout), &report.LogReporter{Log: logger}),
		cfg.Interval,
		cfg.MaxConcurrency,
		metrics,
	)

	if cfg.StatusAddr != "" {
		api := httpapi.NewServer(logger, registry, prometheus.DefaultGatherer)
		srv := &http.Server{Addr: cfg.StatusAddr, Handler: api.Router()}
		go func() {
			logger.Info("status_api_listen", zap.String("addr", cfg.StatusAddr))
			if serr := srv.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
				logger.Warn("status_api_error", zap.Error(serr))
			}
		}()
		defer func() {
			shctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shctx)
		}()
	}

	logger.Info("monitor_start",
		zap.Int("endpoints", len(eps)),
		zap.Int("domains", registry.Len()),
		zap.Duration("interval", cfg.Interval),
		zap.Duration("request_timeout", cfg.RequestTimeout),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
	)
	return mon.Run(ctx)
}
