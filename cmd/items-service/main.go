package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dmehra2102/otel-shop/internal/items/application"
	"github.com/dmehra2102/otel-shop/internal/items/domain"
	itemhttp "github.com/dmehra2102/otel-shop/internal/items/infrastructure/http"
	"github.com/dmehra2102/otel-shop/pkg/config"
	"github.com/dmehra2102/otel-shop/pkg/latency"
	"github.com/dmehra2102/otel-shop/pkg/logging"
	"github.com/dmehra2102/otel-shop/pkg/metrics"
	"github.com/dmehra2102/otel-shop/pkg/server"
	"github.com/dmehra2102/otel-shop/pkg/shutdown"
	"github.com/dmehra2102/otel-shop/pkg/tracing"
)

func main() {
	cfg, err := config.Load("items-service", ":8082")
	if err != nil {
		logging.New("items-service", "INFO").Error("config load failed", "err", err)
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

	hits, err := metrics.NewHitCounter(otel.Meter("items"), "items")
	if err != nil {
		log.Error("hit counter init failed", "err", err)
		os.Exit(1)
	}

	catalog := domain.SeedCatalog()
	svc := application.NewService(log, catalog, latency.NewRandom(time.Second), hits)
	handler := itemhttp.NewHandler(log, svc)

	r := server.NewRouter(metrics.NewServerMetrics("items"))
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server.Instrument(cfg.Name, r),
		ReadTimeout:  cfg.Timeouts.Read,
		WriteTimeout: cfg.Timeouts.Write,
	}

	log.Info("serving items", "count", catalog.Len())
	if err := shutdown.Serve(ctx, log, srv, cfg.Timeouts.Shutdown); err != nil {
		log.Error("http server error", "err", err)
	}
	log.Info("items-service shutdown complete")
}
