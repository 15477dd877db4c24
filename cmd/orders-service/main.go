package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dmehra2102/otel-shop/internal/orders/application"
	"github.com/dmehra2102/otel-shop/internal/orders/domain"
	orderhttp "github.com/dmehra2102/otel-shop/internal/orders/infrastructure/http"
	"github.com/dmehra2102/otel-shop/pkg/config"
	"github.com/dmehra2102/otel-shop/pkg/latency"
	"github.com/dmehra2102/otel-shop/pkg/logging"
	"github.com/dmehra2102/otel-shop/pkg/metrics"
	"github.com/dmehra2102/otel-shop/pkg/server"
	"github.com/dmehra2102/otel-shop/pkg/shutdown"
	"github.com/dmehra2102/otel-shop/pkg/tracing"
)

func main() {
	cfg, err := config.Load("orders-service", ":8081")
	if err != nil {
		logging.New("orders-service", "INFO").Error("config load failed", "err", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Name, cfg.LogLevel)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	tp, err := tracing.Init(ctx, cfg.Name, cfg.OTel, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		_ = tp.Shutdown(flushCtx)
	}()

	hits, err := metrics.NewHitCounter(otel.Meter("orders"), "orders")
	if err != nil {
		log.Error("hit counter init failed", "err", err)
		os.Exit(1)
	}

	catalog := domain.SeedCatalog()
	svc := application.NewService(log, catalog, latency.NewRandom(time.Second), hits)
	handler := orderhttp.NewHandler(log, svc)

	r := server.NewRouter(metrics.NewServerMetrics("orders"))
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server.Instrument(cfg.Name, r),
		ReadTimeout:  cfg.Timeouts.Read,
		WriteTimeout: cfg.Timeouts.Write,
	}

	log.Info("serving orders", "count", catalog.Len())
	if err := shutdown.Serve(ctx, log, srv, cfg.Timeouts.Shutdown); err != nil {
		log.Error("http server error", "err", err)
	}
	log.Info("orders-service shutdown complete")
}
