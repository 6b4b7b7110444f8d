package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/payops/inquiry-reader/internal/bootstrap"
	"github.com/payops/inquiry-reader/internal/config"
	"github.com/payops/inquiry-reader/internal/observability/logging"
	"github.com/payops/inquiry-reader/internal/observability/metrics"
)

const serviceName = "inquiry-reader-worker"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics(serviceName)
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics_server_error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeInquiryQueued(ctx, func(handlerCtx context.Context, jobID string) error {
		processCtx, cancel := context.WithTimeout(handlerCtx, 5*time.Minute)
		defer cancel()

		workerMetrics.StartJob()
		start := time.Now()
		if job, getErr := app.Jobs.GetByID(processCtx, jobID); getErr == nil {
			workerMetrics.ObserveQueueLag(serviceName, start.Sub(job.CreatedAt))
		}

		processErr := app.ProcessUC.ProcessByID(processCtx, jobID)
		workerMetrics.FinishJob(serviceName, time.Since(start), processErr)
		return processErr
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
