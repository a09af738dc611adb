// @title Interview Prep API
// @version 1.0
// @description Generates interview subtopics for a job role, refines and categorizes them, and runs practice sessions with model feedback.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"interview-prep/internal/adapter"
	"interview-prep/internal/adapter/embedding"
	"interview-prep/internal/adapter/llm"
	"interview-prep/internal/cache"
	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/handler"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
	"interview-prep/internal/validation"

	_ "interview-prep/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const (
	sweepInterval  = 5 * time.Minute
	cacheOpTimeout = 2 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	model, err := llm.NewModel(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	var caps domain.Capabilities = llm.NewCapabilities(model, cfg.LLM)

	// Redis is optional; it backs the answer cache.
	var capCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		capCache = adapter.NewRedisCache(redisClient, cacheOpTimeout)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}
	cachedCaps := service.NewCachedCapabilities(caps)
	if cfg.Embedding.Enabled {
		if capCache == nil {
			appLogger.Warn("Answer cache needs Redis; embedding.enabled is ignored")
		} else {
			embedder, err := embedding.NewService(cfg.Embedding)
			if err != nil {
				appLogger.Fatal("Failed to create embedding service", zap.Error(err))
			}
			cachedCaps.WithAnswerCache(service.NewAnswerCache(capCache, embedder, cfg))
			appLogger.Info("Answer cache enabled",
				zap.String("provider", cfg.Embedding.Provider),
				zap.Float64("similarity_threshold", cfg.Embedding.SimilarityThreshold))
		}
	}
	caps = cachedCaps

	sessions := service.NewSessionService(caps, cfg.Session.IdleTTL)
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go sessions.RunSweeper(sweepCtx, sweepInterval)

	v := validation.NewValidator()
	handlers := handler.Handlers{
		Pipeline: handler.NewPipelineHandler(sessions, v),
		Practice: handler.NewPracticeHandler(sessions, v),
		Feedback: handler.NewFeedbackHandler(v),
		Health:   handler.NewHealthHandler(sessions, capCache),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app.Group("/api"), handlers)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("llm_provider", cfg.LLM.Provider),
			zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
