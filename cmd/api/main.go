package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/adamolayo/vatcart-backend/api/controllers"
	"github.com/adamolayo/vatcart-backend/api/routes"
	cartsvc "github.com/adamolayo/vatcart-backend/internal/cart"
	"github.com/adamolayo/vatcart-backend/internal/catalog"
	"github.com/adamolayo/vatcart-backend/internal/customproducts"
	"github.com/adamolayo/vatcart-backend/pkg/config"
	"github.com/adamolayo/vatcart-backend/pkg/db"
	"github.com/adamolayo/vatcart-backend/pkg/kv"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
	"github.com/adamolayo/vatcart-backend/pkg/metrics"
	"github.com/adamolayo/vatcart-backend/pkg/redis"
	"github.com/joho/godotenv"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, readiness, cleanup, err := buildStore(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap persistence", err)
		os.Exit(1)
	}
	defer cleanup()

	customProductService, err := customproducts.NewService(ctx, customproducts.Params{
		Store:  store,
		Key:    cfg.Store.Key,
		Logger: logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create custom product store", err)
		os.Exit(1)
	}

	fetcher := catalog.NewFetcher(cfg.Catalog, logg)
	go func() {
		if err := fetcher.Load(ctx); err != nil {
			logg.Warn(ctx, "base catalog unavailable; serving custom products only")
		}
	}()

	catalogService, err := catalog.NewService(fetcher, customProductService)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(catalogService)
	if err != nil {
		logg.Error(ctx, "failed to create cart service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":   cfg.App.Env,
		"addr":  addr,
		"store": cfg.Store.Driver,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, httpMetrics,
			catalogService, customProductService, cartService, readiness...),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(startCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(startCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(startCtx, "graceful shutdown failed", err)
		}
	}
}

// buildStore wires the configured persistence substrate behind the kv.Store
// interface and reports any pingable dependency for readiness checks.
func buildStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (kv.Store, []controllers.NamedPinger, func(), error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(cfg.Store.Driver)) {
	case config.StoreDriverFile:
		store, err := kv.NewFileStore(cfg.Store.FileDir)
		if err != nil {
			return nil, nil, noop, err
		}
		return store, nil, noop, nil

	case config.StoreDriverRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, nil, noop, err
		}
		store, err := kv.NewRedisStore(client)
		if err != nil {
			client.Close()
			return nil, nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}
		return store, []controllers.NamedPinger{{Name: "redis", Pinger: client}}, cleanup, nil

	case config.StoreDriverDB:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, nil, noop, err
		}
		store, err := kv.NewDatabaseStore(client.DB())
		if err != nil {
			client.Close()
			return nil, nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}
		return store, []controllers.NamedPinger{{Name: "database", Pinger: client}}, cleanup, nil

	default:
		return nil, nil, noop, errors.New("unknown store driver " + cfg.Store.Driver)
	}
}
