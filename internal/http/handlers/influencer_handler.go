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

type InfluencerHandler struct {
	influencerService *services.InfluencerService
	defaultLimit      int
	log               *zap.Logger
}

func NewInfluencerHandler(influencerService *services.InfluencerService, defaultLimit int, log *zap.Logger) *InfluencerHandler {
	return &InfluencerHandler{influencerService: influencerService, defaultLimit: defaultLimit, log: log}
}

func (h *InfluencerHandler) CreateInfluencer(c *fiber.Ctx) error {
	var req dto.CreateInfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	inf := &models.Influencer{
		Platform:              req.Platform,
		ContentCategory:       req.ContentCategory,
		InfluencerName:        req.InfluencerName,
		SNSID:                 req.SNSID,
		SNSURL:                req.SNSURL,
		ContactMethod:         req.ContactMethod,
		FollowersCount:        req.FollowersCount,
		PhoneNumber:           req.PhoneNumber,
		KakaoChannelID:        req.KakaoChannelID,
		Email:                 req.Email,
		ShippingAddress:       req.ShippingAddress,
		InterestedProducts:    req.InterestedProducts,
		OwnerComment:          req.OwnerComment,
		ManagerRating:         req.ManagerRating,
		ContentRating:         req.ContentRating,
		CommentsCount:         req.CommentsCount,
		ForeignFollowersRatio: req.ForeignFollowersRatio,
		ActivityScore:         req.ActivityScore,
		PreferredMode:         req.PreferredMode,
		PriceKRW:              req.PriceKRW,
		Tags:                  req.Tags,
		Active:                true,
		PostCount:             req.PostCount,
		ProfileText:           req.ProfileText,
		ProfileImageURL:       req.ProfileImageURL,
	}
	if req.Active != nil {
		inf.Active = *req.Active
	}

	userID := middleware.GetUserID(c)
	if err := h.influencerService.Create(c.Context(), userID, inf); err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(inf, "influencer created"))
}

func (h *InfluencerHandler) GetInfluencer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid influencer id")
	}

	inf, err := h.influencerService.Get(c.Context(), id)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(inf, ""))
}

func (h *InfluencerHandler) ListInfluencers(c *fiber.Ctx) error {
	filter := repositories.InfluencerFilter{
		Platform: queryFilter(c, "platform"),
		Category: queryFilter(c, "content_category"),
		Search:   queryFilter(c, "search"),
	}
	filter.Limit, filter.Offset = pageParams(c, h.defaultLimit)

	influencers, total, err := h.influencerService.List(c.Context(), filter)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.Page(influencers, total, filter.Limit, filter.Offset))
}

func (h *InfluencerHandler) UpdateInfluencer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid influencer id")
	}

	var req dto.UpdateInfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := services.InfluencerPatch{
		Platform:              req.Platform,
		ContentCategory:       req.ContentCategory,
		InfluencerName:        req.InfluencerName,
		SNSID:                 req.SNSID,
		SNSURL:                req.SNSURL,
		ContactMethod:         req.ContactMethod,
		FollowersCount:        req.FollowersCount,
		PhoneNumber:           req.PhoneNumber,
		KakaoChannelID:        req.KakaoChannelID,
		Email:                 req.Email,
		ShippingAddress:       req.ShippingAddress,
		InterestedProducts:    req.InterestedProducts,
		OwnerComment:          req.OwnerComment,
		ManagerRating:         req.ManagerRating,
		ContentRating:         req.ContentRating,
		CommentsCount:         req.CommentsCount,
		ForeignFollowersRatio: req.ForeignFollowersRatio,
		ActivityScore:         req.ActivityScore,
		PreferredMode:         req.PreferredMode,
		PriceKRW:              req.PriceKRW,
		Tags:                  req.Tags,
		Active:                req.Active,
		PostCount:             req.PostCount,
		ProfileText:           req.ProfileText,
		ProfileImageURL:       req.ProfileImageURL,
	}

	userID := middleware.GetUserID(c)
	updated, err := h.influencerService.Update(c.Context(), id, userID, patch)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(updated, "influencer updated"))
}

func (h *InfluencerHandler) DeleteInfluencer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid influencer id")
	}

	userID := middleware.GetUserID(c)
	if err := h.influencerService.Delete(c.Context(), id, userID); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(nil, "influencer deleted"))
}
