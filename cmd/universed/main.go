package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rubytopaz-glitch/universe/internal/adapters/audit"
	"github.com/rubytopaz-glitch/universe/internal/adapters/catalog"
	httpadapter "github.com/rubytopaz-glitch/universe/internal/adapters/http"
	"github.com/rubytopaz-glitch/universe/internal/adapters/llm/openrouter"
	"github.com/rubytopaz-glitch/universe/internal/app"
	"github.com/rubytopaz-glitch/universe/internal/config"
	"github.com/rubytopaz-glitch/universe/internal/ports"
)

// Completion temperatures: filter extraction wants determinism, reason
// writing tolerates a little variety.
const (
	filterTemperature = 0.2
	reasonTemperature = 0.3
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
	}

	var movieCatalog ports.Catalog
	switch cfg.CatalogBackend {
	case config.CatalogRedis:
		movieCatalog = catalog.NewRedisStore(redisClient, logger)
	default:
		movieCatalog = catalog.NewEmbeddedStore()
	}

	var auditLog ports.AuditLog
	var redisAudit *audit.RedisLog
	if redisClient != nil {
		redisAudit = audit.NewRedisLog(redisClient, logger)
		auditLog = redisAudit
	} else {
		auditLog = audit.NewLoggerSink(logger)
	}

	httpClient := &http.Client{Timeout: cfg.LLMTimeout}
	interpreter := openrouter.NewClient(
		httpClient,
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBaseURL,
		cfg.LLMModel,
		cfg.LLMFallbackModels,
		filterTemperature,
		logger,
	)
	annotator := openrouter.NewClient(
		httpClient,
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBaseURL,
		cfg.LLMReasonModel,
		cfg.LLMFallbackModels,
		reasonTemperature,
		logger,
	)

	svc := app.NewRecommendService(movieCatalog, interpreter, annotator, auditLog, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadapter.NewRequestValidator()

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, cfg.LLMModel)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	if redisAudit != nil {
		redisAudit.Close()
	}
}
