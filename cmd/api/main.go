package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/docs"
	"github.com/sightlinehq/sightline/internal/auth"
	"github.com/sightlinehq/sightline/internal/cache"
	"github.com/sightlinehq/sightline/internal/config"
	"github.com/sightlinehq/sightline/internal/handler"
	"github.com/sightlinehq/sightline/internal/logger"
	"github.com/sightlinehq/sightline/internal/nlq"
	"github.com/sightlinehq/sightline/internal/queue/sqs"
	"github.com/sightlinehq/sightline/internal/repository/clickhouse"
	"github.com/sightlinehq/sightline/internal/repository/postgres"
	"github.com/sightlinehq/sightline/internal/service"
)

// @title Sightline Analytics API
// @version 1.0
// @description Privacy-focused web analytics backend.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Postgres, log)
	if err != nil {
		log.Fatal("Failed to create Postgres client", zap.Error(err))
	}
	defer func() {
		if err := pgClient.Close(); err != nil {
			log.Error("Failed to close Postgres client", zap.Error(err))
		}
	}()

	if err := pgClient.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize Postgres schema", zap.Error(err))
	}

	chClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func() {
		if err := chClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}()

	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	overviewCache, err := cache.New(ctx, &cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect overview cache", zap.Error(err))
	}
	defer func() {
		if err := overviewCache.Close(); err != nil {
			log.Error("Failed to close overview cache", zap.Error(err))
		}
	}()

	var generator nlq.AnswerGenerator
	if cfg.NLQ.APIKey != "" {
		generator = nlq.NewOpenAIGenerator(&cfg.NLQ, log)
	} else {
		log.Info("NLQ generator disabled: no API key configured")
	}

	tenantRepo := postgres.NewTenantRepository(pgClient, log)
	projectRepo := postgres.NewProjectRepository(pgClient, log)
	eventRepo := clickhouse.NewRepository(chClient, log)

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	queryTimeout := time.Duration(cfg.Analytics.QueryTimeoutSec) * time.Second

	authService := service.NewAuthService(tenantRepo, issuer, cfg.Auth.BCryptCost, log)
	projectService := service.NewProjectService(projectRepo, log)
	trackService := service.NewTrackService(projectRepo, sqsClient, log)
	analyticsService := service.NewAnalyticsService(eventRepo, projectRepo, overviewCache, generator, queryTimeout, log)

	h := handler.NewHandler(authService, projectService, trackService, analyticsService, issuer, cfg.Service.CORSOrigins, log)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.APIPort),
		Handler: h,
	}

	go func() {
		log.Info("API server starting", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down API server gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
