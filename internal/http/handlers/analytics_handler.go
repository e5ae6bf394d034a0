package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kchsung/connecta-manager/internal/http/dto"
	"github.com/kchsung/connecta-manager/internal/middleware"
	"github.com/kchsung/connecta-manager/internal/services"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	log              *zap.Logger
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, log: log}
}

func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	overview, err := h.analyticsService.Overview(c.Context(), userID)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(overview, ""))
}
