package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/taxfolio/docpipe/internal/bootstrap"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/dispatch"
	"github.com/taxfolio/docpipe/internal/observability/metrics"
)

const serviceName = "docpipe-worker"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics(serviceName)

	consumer, err := app.NewConsumer(func(job dispatch.Job) {
		workerMetrics.ObserveQueueLag(serviceName, time.Since(job.SubmittedAt))
	})
	if err != nil {
		logger.Error("queue setup failed", "error", err)
		os.Exit(1)
	}
	defer consumer.Shutdown(context.Background())
	app.Processor.SetOCRObserver(func(method string) {
		workerMetrics.RecordOCRMethod(serviceName, method)
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", workerMetrics.Handler())
	metricsServer := &http.Server{
		Addr:              cfg.Server.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics serve error", "error", err)
		}
	}()

	handler := workerMetrics.Instrument(serviceName, app.Processor)

	logger.Info("worker consuming", "subject", cfg.Queue.Subject)
	if err := consumer.Consume(ctx, handler); err != nil {
		logger.Error("consumer stopped with error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown error", "error", err)
	}
	logger.Info("worker stopped")
}
