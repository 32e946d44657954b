package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"idlookup/internal/lookup/guard"
	"idlookup/internal/lookup/handler"
	"idlookup/internal/lookup/history"
	lookupmetrics "idlookup/internal/lookup/metrics"
	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers/adapters"
	"idlookup/internal/lookup/providers/identity"
	"idlookup/internal/lookup/providers/number"
	"idlookup/internal/lookup/service"
	"idlookup/internal/lookup/tracer"
	"idlookup/internal/platform/config"
	"idlookup/internal/platform/health"
	"idlookup/internal/platform/httpserver"
	"idlookup/internal/platform/logger"
	"idlookup/internal/platform/metrics"
	"idlookup/internal/platform/redis"
	httptransport "idlookup/internal/transport/http"
)

const (
	shutdownTimeout   = 10 * time.Second
	poolStatsInterval = 15 * time.Second
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/lookup.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log.Info("initializing idlookup",
		"addr", cfg.Server.Addr,
		"environment", cfg.Server.Environment,
		"identity_relay", cfg.Identity.RelayURL != "",
		"identity_guard", cfg.Guard.IdentityURL != "",
		"number_guard", cfg.Guard.NumberURL != "",
	)

	lookupMetrics := lookupmetrics.New()
	healthHandler := health.New(cfg.Server.Environment)

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	var kv history.KV
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck // process is exiting
		kv = history.NewRedisKV(redisClient.Client)
		healthHandler.RegisterCheck("redis", redisClient.Health)
		log.Info("history backend: redis")
	} else {
		kv = history.NewInMemoryKV()
		log.Warn("REDIS_URL not set; history is kept in process memory")
	}

	historyStore := history.New(kv,
		history.WithKeyPrefix(cfg.History.KeyPrefix),
		history.WithLogger(log),
		history.WithRecorder(lookupMetrics),
	)

	guardFetcher := guard.New(map[models.Category]guard.Source{
		models.CategoryIdentity: {URL: cfg.Guard.IdentityURL, Field: guard.IdentityField},
		models.CategoryNumber:   {URL: cfg.Guard.NumberURL, Field: guard.NumberField},
	},
		guard.WithHTTPClient(&http.Client{Timeout: cfg.Guard.Timeout}),
		guard.WithLogger(log),
		guard.WithRecorder(lookupMetrics),
	)

	serviceOpts := []service.Option{
		service.WithLogger(log),
		service.WithTracer(tracer.NewOTel()),
		service.WithRecorder(lookupMetrics),
	}

	identityService := service.New(models.CategoryIdentity,
		adapters.New(adapters.HTTPAdapterConfig{
			Category: models.CategoryIdentity,
			BaseURL:  cfg.Identity.URL,
			Param:    cfg.Identity.Param,
			RelayURL: cfg.Identity.RelayURL,
			Timeout:  cfg.Identity.Timeout,
		}),
		guardFetcher, historyStore, identity.Normalize, serviceOpts...,
	)

	numberService := service.New(models.CategoryNumber,
		adapters.New(adapters.HTTPAdapterConfig{
			Category: models.CategoryNumber,
			BaseURL:  cfg.Number.URL,
			Param:    cfg.Number.Param,
			RelayURL: cfg.Number.RelayURL,
			Timeout:  cfg.Number.Timeout,
		}),
		guardFetcher, historyStore, number.Normalize, serviceOpts...,
	)

	// A search is one guard fetch followed by one upstream call.
	requestTimeout := cfg.Guard.Timeout + max(cfg.Identity.Timeout, cfg.Number.Timeout) + 5*time.Second

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Observer:       metrics.New(),
		Health:         healthHandler,
		API:            []httptransport.Registrar{handler.New(identityService, numberService, log)},
		RequestTimeout: requestTimeout,
	})

	srv := httpserver.New(cfg.Server.Addr, router, requestTimeout+time.Second)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if redisClient != nil {
		g.Go(func() error {
			return redisClient.RunPoolStats(gctx, poolStatsInterval)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
