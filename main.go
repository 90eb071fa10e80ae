package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/config"
	httpLayer "github.com/tony-42069/biz-acquisition/http"
	"github.com/tony-42069/biz-acquisition/repository"
	"github.com/tony-42069/biz-acquisition/service"
)

// configPaths collects repeated -config flags.
type configPaths []string

func (c *configPaths) String() string {
	return strings.Join(*c, ",")
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func main() {
	var paths configPaths
	flag.Var(&paths, "config", "TOML configuration file (repeatable, later files win)")
	port := flag.Int("port", 0, "listen port, overrides configuration")
	flag.Parse()

	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	if len(paths) == 0 {
		if _, err := os.Stat("config.toml"); err == nil {
			paths = append(paths, "config.toml")
		}
	}

	cfg, err := config.LoadFromFiles(paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger := config.InitLogger(cfg)

	cache, cacheBackend, closeCache := buildCache(cfg, logger)
	defer closeCache()

	aiService := service.NewAIService(service.AIConfig{
		APIKey:    cfg.AI.APIKey,
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
	}, logger)
	if !aiService.Enabled() {
		logger.Info().Msg("ANTHROPIC_API_KEY not set, summaries use the built-in template")
	}

	dealService := service.NewDealService(cache, aiService, config.Duration(cfg.Cache.TTL), logger)
	dealHandler := httpLayer.NewDealHandler(dealService, logger)

	scenarioService := service.NewFinancingScenarioService(aiService, cfg.Scenarios.MaxTermRangeYears, logger)
	scenarioHandler := httpLayer.NewFinancingScenarioHandler(scenarioService, logger)

	amortizationService := service.NewAmortizationService(logger)
	amortizationHandler := httpLayer.NewAmortizationHandler(amortizationService, logger)

	healthHandler := httpLayer.NewHealthHandler(cacheBackend, aiService.Enabled(), logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, config.Duration(cfg.RateLimit.Window))
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/deal/evaluate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(dealHandler.Evaluate),
		),
	)

	mux.Handle(
		"/deal/financing-scenarios",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scenarioHandler.CompareTerms),
		),
	)

	mux.Handle(
		"/deal/amortization",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(amortizationHandler.Schedule),
		),
	)

	mux.HandleFunc("/healthz", healthHandler.Health)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  config.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: config.Duration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Duration(cfg.Server.IdleTimeout),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Str("cache", cacheBackend).
			Int("rate_limit", cfg.RateLimit.Requests).
			Str("rate_window", cfg.RateLimit.Window).
			Msg("Deal evaluator listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error().Err(err).Msg("Error starting server")
		return
	case <-quit:
		logger.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server exited")
}

// buildCache picks the configured backend and reports the one in use. An
// unreachable Redis falls back to the in-memory cache.
func buildCache(cfg *config.Config, logger arbor.ILogger) (repository.CacheRepository, string, func()) {
	noop := func() {}

	switch cfg.Cache.Backend {
	case "none":
		return nil, "none", noop
	case "redis":
		redisCache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Prefix:   cfg.Cache.RedisPrefix,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("Redis unavailable, using in-memory cache")
			_ = redisCache.Close()
			return repository.NewMemoryCache(), "memory", noop
		}
		return redisCache, "redis", func() {
			if err := redisCache.Close(); err != nil {
				logger.Warn().Err(err).Msg("Error closing redis client")
			}
		}
	}
	return repository.NewMemoryCache(), "memory", noop
}
