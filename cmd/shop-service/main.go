package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dmehra2102/otel-shop/internal/shop/application"
	"github.com/dmehra2102/otel-shop/internal/shop/infrastructure/client"
	shophttp "github.com/dmehra2102/otel-shop/internal/shop/infrastructure/http"
	"github.com/dmehra2102/otel-shop/pkg/config"
	"github.com/dmehra2102/otel-shop/pkg/logging"
	"github.com/dmehra2102/otel-shop/pkg/metrics"
	"github.com/dmehra2102/otel-shop/pkg/server"
	"github.com/dmehra2102/otel-shop/pkg/shutdown"
	"github.com/dmehra2102/otel-shop/pkg/tracing"
)

func main() {
	cfg, err := config.Load("shop-service", ":8080")
	if err != nil {
		logging.New("shop-service", "INFO").Error("config load failed", "err", err)
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

	hits, err := metrics.NewHitCounter(otel.Meter("shop"), "index")
	if err != nil {
		log.Error("hit counter init failed", "err", err)
		os.Exit(1)
	}

	// Backend clients
	hc := client.NewHTTPClient(cfg.Name, cfg.Timeouts.Connect)
	orders := client.NewOrdersClient(hc, cfg.Services.Orders)
	items := client.NewItemsClient(hc, cfg.Services.Items)

	svc := application.NewService(log, cfg.Title, orders, items, hits)
	handler := shophttp.NewHandler(log, svc)

	r := server.NewRouter(metrics.NewServerMetrics("shop"))
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server.Instrument(cfg.Name, r),
		ReadTimeout:  cfg.Timeouts.Read,
		WriteTimeout: cfg.Timeouts.Write,
	}

	log.Info("shop backends", "orders", cfg.Services.Orders, "items", cfg.Services.Items)
	if err := shutdown.Serve(ctx, log, srv, cfg.Timeouts.Shutdown); err != nil {
		log.Error("http server error", "err", err)
	}
	log.Info("shop-service shutdown complete")
}
