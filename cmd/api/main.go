package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/kchsung/connecta-manager/internal/config"
	"github.com/kchsung/connecta-manager/internal/db"
	apphttp "github.com/kchsung/connecta-manager/internal/http"
	"github.com/kchsung/connecta-manager/internal/http/handlers"
	"github.com/kchsung/connecta-manager/internal/repositories"
	"github.com/kchsung/connecta-manager/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	campaignRepo := repositories.NewCampaignRepo(pool)
	influencerRepo := repositories.NewInfluencerRepo(pool)
	participationRepo := repositories.NewParticipationRepo(pool)
	contentRepo := repositories.NewContentRepo(pool)
	metricRepo := repositories.NewMetricRepo(pool)
	analysisRepo := repositories.NewAnalysisRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Services
	campaignService := services.NewCampaignService(campaignRepo, auditRepo, log)
	influencerService := services.NewInfluencerService(influencerRepo, auditRepo, log)
	participationService := services.NewParticipationService(participationRepo, campaignRepo, auditRepo, log)
	contentService := services.NewContentService(contentRepo, participationRepo, log)
	metricService := services.NewMetricService(metricRepo, participationRepo, influencerRepo, log)
	analysisService := services.NewAnalysisService(analysisRepo, campaignRepo, cfg.RecentWindow, log)
	analyticsService := services.NewAnalyticsService(campaignRepo, influencerRepo, participationRepo, contentRepo, log)

	// Handlers
	campaignHandler := handlers.NewCampaignHandler(campaignService, cfg.DefaultPageLimit, log)
	influencerHandler := handlers.NewInfluencerHandler(influencerService, cfg.DefaultPageLimit, log)
	participationHandler := handlers.NewParticipationHandler(participationService, cfg.DefaultPageLimit, log)
	contentHandler := handlers.NewContentHandler(contentService, log)
	metricHandler := handlers.NewMetricHandler(metricService, log)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, cfg.DefaultPageLimit, log)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.AppErrorHandler(log),
	})

	apphttp.SetupRouter(app, cfg, log, rdb,
		campaignHandler, influencerHandler, participationHandler,
		contentHandler, metricHandler, analysisHandler, analyticsHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
