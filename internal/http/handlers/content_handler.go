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

type ContentHandler struct {
	contentService *services.ContentService
	log            *zap.Logger
}

func NewContentHandler(contentService *services.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{contentService: contentService, log: log}
}

func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	content := &models.Content{
		ParticipationID: req.ParticipationID,
		ContentURL:      req.ContentURL,
		PostedAt:        req.PostedAt,
		Caption:         req.Caption,
		QualitativeNote: req.QualitativeNote,
		Likes:           req.Likes,
		Comments:        req.Comments,
		Shares:          req.Shares,
		Views:           req.Views,
		Clicks:          req.Clicks,
		Conversions:     req.Conversions,
	}

	userID := middleware.GetUserID(c)
	if err := h.contentService.Create(c.Context(), userID, content); err != nil {
		return fail(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(content, "content created"))
}

func (h *ContentHandler) ListContentsByParticipation(c *fiber.Ctx) error {
	participationID, err := uuid.Parse(c.Params("participationId"))
	if err != nil {
		return badRequest(c, "invalid participation id")
	}

	userID := middleware.GetUserID(c)
	contents, err := h.contentService.ListByParticipation(c.Context(), participationID, userID)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(contents, ""))
}

func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid content id")
	}

	var req dto.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch := services.ContentPatch{
		ContentURL:      req.ContentURL,
		PostedAt:        req.PostedAt,
		Caption:         req.Caption,
		QualitativeNote: req.QualitativeNote,
		Likes:           req.Likes,
		Comments:        req.Comments,
		Shares:          req.Shares,
		Views:           req.Views,
		Clicks:          req.Clicks,
		Conversions:     req.Conversions,
	}

	userID := middleware.GetUserID(c)
	updated, err := h.contentService.Update(c.Context(), id, userID, patch)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(updated, "content updated"))
}

func (h *ContentHandler) DeleteContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid content id")
	}

	userID := middleware.GetUserID(c)
	if err := h.contentService.Delete(c.Context(), id, userID); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(nil, "content deleted"))
}
