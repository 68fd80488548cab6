package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/uteeni/storefront-api/internal/api"
	"github.com/uteeni/storefront-api/internal/core/service"
	mongodb "github.com/uteeni/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/uteeni/storefront-api/internal/infrastructure/db/redis"
	"github.com/uteeni/storefront-api/internal/infrastructure/memory"
	"github.com/uteeni/storefront-api/internal/pkg/config"
	"github.com/uteeni/storefront-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{Log: log}

	switch cfg.Store {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		orders := mongodb.NewOrderRepository(db)
		if err := orders.EnsureCounter(ctx); err != nil {
			log.Fatal().Err(err).Msg("order counter bootstrap failed")
		}

		deps.Identities = mongodb.NewIdentityRepository(db)
		deps.Catalog = mongodb.NewCatalogRepository(db)
		deps.Orders = orders
		deps.Mongo = db

	case config.StoreMemory:
		deps.Identities = memory.NewIdentityRepository(memory.SeedIdentities(), memory.SeedCredentials())
		deps.Catalog = memory.NewCatalogRepository(memory.SeedProducts())
		deps.Orders = memory.NewOrderRepository(memory.SeedOrders())

	default:
		log.Fatal().Str("store", cfg.Store).Msg("unknown store backend")
	}

	var idem service.IdempotencyStore = memory.NewIdempotencyStore()
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using in-process idempotency store")
		} else {
			defer rdb.Close()
			idem = redisdb.NewIdempotencyStore(rdb)
			deps.Redis = rdb
		}
	}
	deps.Idempotency = idem

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
