package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reelworks/rentaldesk-backend/api/routes"
	"github.com/reelworks/rentaldesk-backend/internal/accounts"
	"github.com/reelworks/rentaldesk-backend/internal/availability"
	"github.com/reelworks/rentaldesk-backend/internal/catalog"
	"github.com/reelworks/rentaldesk-backend/internal/rentals"
	"github.com/reelworks/rentaldesk-backend/internal/users"
	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/db"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
	"github.com/reelworks/rentaldesk-backend/pkg/metrics"
	"github.com/reelworks/rentaldesk-backend/pkg/migrate"
	"github.com/reelworks/rentaldesk-backend/pkg/redis"
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

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	accountsRepo := accounts.NewRepository(dbClient.DB())
	accountsService, err := accounts.NewService(accountsRepo, dbClient, cfg.Password, cfg.Rental)
	if err != nil {
		logg.Error(context.Background(), "failed to create accounts service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	rentalsService, err := rentals.NewService(rentals.NewRepository(dbClient.DB()), dbClient, cfg.Rental)
	if err != nil {
		logg.Error(context.Background(), "failed to create rentals service", err)
		os.Exit(1)
	}

	availabilityService, err := availability.NewService(availability.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create availability service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.NewRepository(dbClient.DB()), cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

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
			httpMetrics,
			metricsHandler,
			accountsService,
			catalogService,
			rentalsService,
			availabilityService,
			usersService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
