package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kchsung/connecta-manager/internal/http/dto"
	"github.com/kchsung/connecta-manager/internal/middleware"
	"github.com/kchsung/connecta-manager/internal/models"
	"github.com/kchsung/connecta-manager/internal/services"
	"go.uber.org/zap"
)

type MetricHandler struct {
	metricService *services.MetricService
	log           *zap.Logger
}

func NewMetricHandler(metricService *services.MetricService, log *zap.Logger) *MetricHandler {
	return &MetricHandler{metricService: metricService, log: log}
}

func (h *MetricHandler) CreateMetric(c *fiber.Ctx) error {
	var req dto.CreateMetricRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	m := &models.PerformanceMetric{
		ParticipationID:       req.ParticipationID,
		ContentLink:           req.ContentLink,
		MetricType:            req.MetricType,
		MetricValue:           req.MetricValue,
		QualitativeEvaluation: req.QualitativeEvaluation,
		MeasurementDate:       req.MeasurementDate,
	}

	userID := middleware.GetUserID(c)
	if err := h.metricService.Create(c.Context(), userID, m); err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(m, "metric created"))
}

func (h *MetricHandler) ListMetricsByParticipation(c *fiber.Ctx) error {
	participationID, err := uuid.Parse(c.Params("participationId"))
	if err != nil {
		return badRequest(c, "invalid participation id")
	}

	userID := middleware.GetUserID(c)
	metrics, err := h.metricService.ListByParticipation(c.Context(), participationID, userID)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(metrics, ""))
}

func (h *MetricHandler) ListMetricsByInfluencer(c *fiber.Ctx) error {
	influencerID, err := uuid.Parse(c.Params("influencerId"))
	if err != nil {
		return badRequest(c, "invalid influencer id")
	}

	metrics, err := h.metricService.ListByInfluencer(c.Context(), influencerID)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(metrics, ""))
}

func (h *MetricHandler) UpdateMetric(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid metric id")
	}

	var req dto.UpdateMetricRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := services.MetricPatch{
		ContentLink:           req.ContentLink,
		MetricType:            req.MetricType,
		MetricValue:           req.MetricValue,
		QualitativeEvaluation: req.QualitativeEvaluation,
		MeasurementDate:       req.MeasurementDate,
	}

	userID := middleware.GetUserID(c)
	updated, err := h.metricService.Update(c.Context(), id, userID, patch)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(updated, "metric updated"))
}

func (h *MetricHandler) DeleteMetric(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid metric id")
	}

	userID := middleware.GetUserID(c)
	if err := h.metricService.Delete(c.Context(), id, userID); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(nil, "metric deleted"))
}
