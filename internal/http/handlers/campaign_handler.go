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

type CampaignHandler struct {
	campaignService *services.CampaignService
	defaultLimit    int
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, defaultLimit int, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, defaultLimit: defaultLimit, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	campaign := &models.Campaign{
		CampaignName:         req.CampaignName,
		CampaignDescription:  req.CampaignDescription,
		CampaignType:         req.CampaignType,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Status:               req.Status,
		CampaignInstructions: req.CampaignInstructions,
		Tags:                 req.Tags,
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Create(c.Context(), userID, campaign); err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(campaign, "campaign created"))
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Get(c.Context(), id, userID)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(campaign, ""))
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	filter := repositories.CampaignFilter{
		OwnerID: userID,
		Type:    queryFilter(c, "campaign_type"),
		Status:  queryFilter(c, "status"),
		Search:  queryFilter(c, "search"),
	}
	filter.Limit, filter.Offset = pageParams(c, h.defaultLimit)

	campaigns, total, err := h.campaignService.List(c.Context(), userID, filter)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.Page(campaigns, total, filter.Limit, filter.Offset))
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := services.CampaignPatch{
		CampaignName:         req.CampaignName,
		CampaignDescription:  req.CampaignDescription,
		CampaignType:         req.CampaignType,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Status:               req.Status,
		CampaignInstructions: req.CampaignInstructions,
		Tags:                 req.Tags,
	}

	userID := middleware.GetUserID(c)
	updated, err := h.campaignService.Update(c.Context(), id, userID, patch)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(updated, "campaign updated"))
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Delete(c.Context(), id, userID); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(nil, "campaign deleted"))
}
