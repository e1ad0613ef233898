package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finlogix/finlogix/internal/adapter/http"
	"github.com/finlogix/finlogix/internal/adapter/http/handler"
	"github.com/finlogix/finlogix/internal/adapter/http/middleware"
	"github.com/finlogix/finlogix/internal/adapter/llm"
	postgresRepo "github.com/finlogix/finlogix/internal/adapter/repository/postgres"
	redisRepo "github.com/finlogix/finlogix/internal/adapter/repository/redis"
	"github.com/finlogix/finlogix/internal/infrastructure/auth"
	"github.com/finlogix/finlogix/internal/infrastructure/config"
	"github.com/finlogix/finlogix/internal/infrastructure/logger"
	"github.com/finlogix/finlogix/internal/infrastructure/postgres"
	"github.com/finlogix/finlogix/internal/infrastructure/redis"
	"github.com/finlogix/finlogix/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	userRepo := postgresRepo.NewUserRepository(pool)
	txRepo := postgresRepo.NewTransactionRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Text generation is optional; without an API key the advisor
	// falls back to rule-based tips.
	var textGen usecase.TextGenerator
	if cfg.LLMAPIKey != "" {
		textGen = llm.NewClient(llm.Config{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
		})
		log.Info().Msg("text generation enabled")
	}

	// Initialize use cases
	userUC := usecase.NewUserUseCase(userRepo, idGen)
	txUC := usecase.NewTransactionUseCase(txRepo, idGen)
	analyticsUC := usecase.NewAnalyticsUseCase(txRepo)
	advisorUC := usecase.NewAdvisorUseCase(txRepo, userRepo, textGen, cfg.AdviceTimeout)
	adminUC := usecase.NewAdminUseCase(userRepo, txRepo)

	// Initialize handlers
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	txHandler := handler.NewTransactionHandler(txUC)
	dashboardHandler := handler.NewDashboardHandler(analyticsUC)
	advisorHandler := handler.NewAdvisorHandler(advisorUC)
	adminHandler := handler.NewAdminHandler(adminUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        authHandler,
		TransactionHandler: txHandler,
		DashboardHandler:   dashboardHandler,
		AdvisorHandler:     advisorHandler,
		AdminHandler:       adminHandler,
		HealthHandler:      healthHandler,
		JWTManager:         jwtManager,
		IdempotencyStore:   idempotencyStore,
		Logging:            middleware.NewLoggingMiddleware(appLogger),
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
