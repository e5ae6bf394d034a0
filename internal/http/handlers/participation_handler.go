package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kchsung/connecta-manager/internal/http/dto"
	"github.com/kchsung/connecta-manager/internal/middleware"
	"github.com/kchsung/connecta-manager/internal/models"
	"github.com/kchsung/connecta-manager/internal/repositories"
	"github.com/kchsung/connecta-manager/internal/services"
	"go.uber.org/zap"
)

type ParticipationHandler struct {
	participationService *services.ParticipationService
	defaultLimit         int
	log                  *zap.Logger
}

func NewParticipationHandler(participationService *services.ParticipationService, defaultLimit int, log *zap.Logger) *ParticipationHandler {
	return &ParticipationHandler{participationService: participationService, defaultLimit: defaultLimit, log: log}
}

func (h *ParticipationHandler) CreateParticipation(c *fiber.Ctx) error {
	var req dto.CreateParticipationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	p := &models.Participation{
		CampaignID:         req.CampaignID,
		InfluencerID:       req.InfluencerID,
		ManagerComment:     req.ManagerComment,
		InfluencerRequests: req.InfluencerRequests,
		Memo:               req.Memo,
		SampleStatus:       req.SampleStatus,
		InfluencerFeedback: req.InfluencerFeedback,
		ContentUploaded:    req.ContentUploaded,
		CostKRW:            req.CostKRW,
		ContentLinks:       req.ContentLinks,
	}

	userID := middleware.GetUserID(c)
	if err := h.participationService.Create(c.Context(), userID, p); err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(p, "participation created"))
}

func (h *ParticipationHandler) GetParticipation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid participation id")
	}

	userID := middleware.GetUserID(c)
	p, err := h.participationService.Get(c.Context(), id, userID)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(p, ""))
}

func (h *ParticipationHandler) ListParticipations(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	filter := repositories.ParticipationFilter{
		OwnerID:     userID,
		SearchSNSID: queryFilter(c, "search"),
	}
	if v := c.Query("campaign_id"); v != "" && v != "all" {
		campaignID, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid campaign_id")
		}
		filter.CampaignID = &campaignID
	}
	filter.Limit, filter.Offset = pageParams(c, h.defaultLimit)

	details, total, err := h.participationService.List(c.Context(), userID, filter)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.Page(details, total, filter.Limit, filter.Offset))
}

func (h *ParticipationHandler) UpdateParticipation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid participation id")
	}

	var req dto.UpdateParticipationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := services.ParticipationPatch{
		ManagerComment:     req.ManagerComment,
		InfluencerRequests: req.InfluencerRequests,
		Memo:               req.Memo,
		SampleStatus:       req.SampleStatus,
		InfluencerFeedback: req.InfluencerFeedback,
		ContentUploaded:    req.ContentUploaded,
		CostKRW:            req.CostKRW,
		ContentLinks:       req.ContentLinks,
	}

	userID := middleware.GetUserID(c)
	updated, err := h.participationService.Update(c.Context(), id, userID, patch)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(updated, "participation updated"))
}

func (h *ParticipationHandler) DeleteParticipation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid participation id")
	}

	userID := middleware.GetUserID(c)
	if err := h.participationService.Delete(c.Context(), id, userID); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(nil, "participation deleted"))
}
