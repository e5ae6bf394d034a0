package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kchsung/connecta-manager/internal/config"
	"github.com/kchsung/connecta-manager/internal/http/handlers"
	"github.com/kchsung/connecta-manager/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	campaignHandler *handlers.CampaignHandler,
	influencerHandler *handlers.InfluencerHandler,
	participationHandler *handlers.ParticipationHandler,
	contentHandler *handlers.ContentHandler,
	metricHandler *handlers.MetricHandler,
	analysisHandler *handlers.AnalysisHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	// Every OPTIONS request, preflight or not, answers 200 with the full
	// CORS header set and an empty body. Registered ahead of the cors
	// middleware, which would otherwise short-circuit preflights with 204.
	app.Options("/*", func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Set("Access-Control-Allow-Methods", corsAllowMethods)
		return c.SendStatus(fiber.StatusOK)
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsAllowOrigin,
		AllowHeaders: corsAllowHeaders,
		AllowMethods: corsAllowMethods,
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Influencers
	protected.Post("/influencers", influencerHandler.CreateInfluencer)
	protected.Get("/influencers", influencerHandler.ListInfluencers)
	protected.Get("/influencers/:id", influencerHandler.GetInfluencer)
	protected.Put("/influencers/:id", influencerHandler.UpdateInfluencer)
	protected.Delete("/influencers/:id", influencerHandler.DeleteInfluencer)

	// Campaign participations
	protected.Post("/participations", participationHandler.CreateParticipation)
	protected.Get("/participations", participationHandler.ListParticipations)
	protected.Get("/participations/:id", participationHandler.GetParticipation)
	protected.Put("/participations/:id", participationHandler.UpdateParticipation)
	protected.Delete("/participations/:id", participationHandler.DeleteParticipation)

	// Campaign contents
	protected.Post("/contents", contentHandler.CreateContent)
	protected.Get("/participations/:participationId/contents", contentHandler.ListContentsByParticipation)
	protected.Put("/contents/:id", contentHandler.UpdateContent)
	protected.Delete("/contents/:id", contentHandler.DeleteContent)

	// Performance metrics
	protected.Post("/performance-metrics", metricHandler.CreateMetric)
	protected.Get("/participations/:participationId/performance-metrics", metricHandler.ListMetricsByParticipation)
	protected.Get("/influencers/:influencerId/performance-metrics", metricHandler.ListMetricsByInfluencer)
	protected.Put("/performance-metrics/:id", metricHandler.UpdateMetric)
	protected.Delete("/performance-metrics/:id", metricHandler.DeleteMetric)

	// Analysis pipeline (action dispatch)
	protected.Post("/analysis", analysisHandler.Dispatch)

	// Aggregates
	protected.Get("/analytics/overview", analyticsHandler.GetOverview)
}
