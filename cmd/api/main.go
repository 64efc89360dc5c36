package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/razorsharp/storefront-backend/api/routes"
	"github.com/razorsharp/storefront-backend/internal/assignments"
	"github.com/razorsharp/storefront-backend/internal/products"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/internal/stores"
	"github.com/razorsharp/storefront-backend/pkg/config"
	"github.com/razorsharp/storefront-backend/pkg/db"
	"github.com/razorsharp/storefront-backend/pkg/logger"
	"github.com/razorsharp/storefront-backend/pkg/metrics"
	"github.com/razorsharp/storefront-backend/pkg/migrate"
	"github.com/razorsharp/storefront-backend/pkg/redis"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	profileService, err := profiles.NewService(profiles.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	assignmentService, err := assignments.NewService(assignments.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create assignment service", err)
		os.Exit(1)
	}

	storeService, err := stores.NewService(stores.NewRepository(dbClient.DB()), assignmentService)
	if err != nil {
		logg.Error(context.Background(), "failed to create store service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.NewRepository(dbClient.DB()), storeService, assignmentService)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

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

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			httpMetrics,
			profileService,
			storeService,
			productService,
			assignmentService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
