package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/onnuriprint/printshop-backend/api/controllers"
	"github.com/onnuriprint/printshop-backend/api/routes"
	"github.com/onnuriprint/printshop-backend/internal/dispatch"
	"github.com/onnuriprint/printshop-backend/internal/gallery"
	"github.com/onnuriprint/printshop-backend/internal/notify"
	"github.com/onnuriprint/printshop-backend/internal/printing"
	"github.com/onnuriprint/printshop-backend/internal/quote"
	"github.com/onnuriprint/printshop-backend/internal/render"
	"github.com/onnuriprint/printshop-backend/pkg/config"
	"github.com/onnuriprint/printshop-backend/pkg/db"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"github.com/onnuriprint/printshop-backend/pkg/metrics"
	"github.com/onnuriprint/printshop-backend/pkg/migrate"
	"github.com/onnuriprint/printshop-backend/pkg/pricing"
	"github.com/onnuriprint/printshop-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pricingMetrics := metrics.NewPricingMetrics(registry)

	pricingClient, err := pricing.NewClient(cfg.Pricing, logg, pricingMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing client", err)
		os.Exit(1)
	}

	noticeService, err := notify.NewService(cfg.Notices.TTL, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create notice service", err)
		os.Exit(1)
	}
	defer noticeService.Close()

	quoteService, err := quote.NewService(pricingClient, redisClient, noticeService, logg, pricingMetrics, cfg.Pricing.InFlightTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	documentService, err := render.NewService(cfg.Shop, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create render service", err)
		os.Exit(1)
	}

	printService, err := printing.NewService(documentService, cfg.Printing, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create printing service", err)
		os.Exit(1)
	}

	dispatchService, err := dispatch.NewService(cfg.Shop, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create dispatch service", err)
		os.Exit(1)
	}

	blobStore, err := gallery.NewLocalStore(cfg.Gallery.UploadDir, cfg.Gallery.PublicPathFmt)
	if err != nil {
		logg.Error(context.Background(), "failed to create blob store", err)
		os.Exit(1)
	}
	galleryService, err := gallery.NewService(gallery.NewRepository(dbClient.DB()), blobStore, cfg.Gallery, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create gallery service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	deps := map[string]controllers.Pinger{
		"db":      dbClient,
		"redis":   redisClient,
		"pricing": pricingClient,
	}

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			deps,
			registry,
			quoteService,
			documentService,
			printService,
			dispatchService,
			galleryService,
			noticeService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
