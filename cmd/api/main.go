package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/payops/inquiry-reader/internal/adapters/http"
	"github.com/payops/inquiry-reader/internal/bootstrap"
	"github.com/payops/inquiry-reader/internal/config"
	"github.com/payops/inquiry-reader/internal/observability/logging"
	"github.com/payops/inquiry-reader/internal/observability/metrics"
)

const serviceName = "inquiry-reader-api"

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

	httpMetrics := metrics.NewHTTPServerMetrics(serviceName)
	router := httpadapter.NewRouter(
		app.ScanUC,
		app.ScanUC,
		app.Jobs,
		app.SendUC,
		app.Export,
		cfg.RunLogLimit,
	).Handler()

	mux := http.NewServeMux()
	mux.Handle("/metrics", httpMetrics.Handler())
	mux.Handle("/", httpMetrics.Middleware(serviceName, router))

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api_listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("api server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api_shutdown_error", "error", err)
	}
}
