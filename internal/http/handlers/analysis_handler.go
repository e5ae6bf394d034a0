package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/kchsung/connecta-manager/internal/apperr"
	"github.com/kchsung/connecta-manager/internal/http/dto"
	"github.com/kchsung/connecta-manager/internal/middleware"
	"github.com/kchsung/connecta-manager/internal/models"
	"github.com/kchsung/connecta-manager/internal/repositories"
	"github.com/kchsung/connecta-manager/internal/services"
	"go.uber.org/zap"
)

// AnalysisHandler exposes the analysis pipeline surface as one
// action-dispatch endpoint.
type AnalysisHandler struct {
	analysisService *services.AnalysisService
	defaultLimit    int
	log             *zap.Logger
}

func NewAnalysisHandler(analysisService *services.AnalysisService, defaultLimit int, log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, defaultLimit: defaultLimit, log: log}
}

func (h *AnalysisHandler) Dispatch(c *fiber.Ctx) error {
	var req dto.AnalysisActionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	switch req.Action {
	case "check_recent_analysis":
		return h.checkRecent(c, req.Data)
	case "save_analysis_result":
		return h.saveAnalysis(c, req.Data)
	case "get_analysis_data":
		return h.getAnalysisData(c, req.Data)
	case "get_statistics":
		return h.getStatistics(c)
	case "get_campaign_analysis":
		return h.getCampaignAnalysis(c, req.Data)
	case "save_campaign_analysis":
		return h.saveCampaignAnalysis(c, req.Data)
	default:
		return fail(c, h.log, apperr.InvalidAction())
	}
}

func (h *AnalysisHandler) checkRecent(c *fiber.Ctx, raw json.RawMessage) error {
	var data dto.CheckRecentAnalysisData
	if err := json.Unmarshal(raw, &data); err != nil {
		return badRequest(c, "invalid action data")
	}

	recent, err := h.analysisService.CheckRecent(c.Context(), data.InfluencerID, data.Platform)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"isRecentlyAnalyzed": recent}, ""))
}

func (h *AnalysisHandler) saveAnalysis(c *fiber.Ctx, raw json.RawMessage) error {
	var data dto.SaveAnalysisData
	if err := json.Unmarshal(raw, &data); err != nil {
		return badRequest(c, "invalid action data")
	}

	a := &models.InfluencerAnalysis{
		InfluencerID:        data.CrawlingData.InfluencerID,
		Platform:            data.CrawlingData.Platform,
		Name:                data.CrawlingData.Name,
		Alias:               data.CrawlingData.Alias,
		Followers:           data.CrawlingData.Followers,
		Followings:          data.CrawlingData.Followings,
		PostsCount:          data.CrawlingData.PostsCount,
		Category:            data.AnalysisResult.Category,
		Tags:                data.AnalysisResult.Tags,
		FollowNetwork:       data.AnalysisResult.FollowNetwork,
		CommentAuthenticity: data.AnalysisResult.CommentAuthenticity,
		ContentAnalysis:     data.AnalysisResult.ContentAnalysis,
		Evaluation:          data.AnalysisResult.Evaluation,
		Insights:            data.AnalysisResult.Insights,
		Summary:             data.AnalysisResult.Summary,
		Recommendation:      data.AnalysisResult.Recommendation,
		Notes:               data.AnalysisResult.Notes,
		OverallScore:        data.AnalysisResult.OverallScore,
	}

	if err := h.analysisService.SaveAnalysis(c.Context(), a); err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(a, "analysis saved"))
}

func (h *AnalysisHandler) getAnalysisData(c *fiber.Ctx, raw json.RawMessage) error {
	var filters dto.GetAnalysisDataFilters
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &filters); err != nil {
			return badRequest(c, "invalid action data")
		}
	}

	f := repositories.AnalysisFilter{
		Search:         filters.SearchTerm,
		Category:       filters.CategoryFilter,
		Recommendation: filters.RecommendationFilter,
		Limit:          h.defaultLimit,
	}
	if filters.Limit != nil && *filters.Limit > 0 {
		f.Limit = *filters.Limit
	}
	if filters.Offset != nil && *filters.Offset >= 0 {
		f.Offset = *filters.Offset
	}

	analyses, total, err := h.analysisService.GetAnalysisData(c.Context(), f)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.Page(analyses, total, f.Limit, f.Offset))
}

func (h *AnalysisHandler) getStatistics(c *fiber.Ctx) error {
	statistics, err := h.analysisService.Statistics(c.Context())
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(statistics, ""))
}

func (h *AnalysisHandler) getCampaignAnalysis(c *fiber.Ctx, raw json.RawMessage) error {
	var data dto.CampaignAnalysisData
	if err := json.Unmarshal(raw, &data); err != nil {
		return badRequest(c, "invalid action data")
	}

	userID := middleware.GetUserID(c)
	ca, err := h.analysisService.GetCampaignAnalysis(c.Context(), data.CampaignID, userID)
	if err != nil {
		return fail(c, h.log, err)
	}

	// ca is nil when no analysis exists; that is a success with null data.
	return c.JSON(dto.OK(ca, ""))
}

func (h *AnalysisHandler) saveCampaignAnalysis(c *fiber.Ctx, raw json.RawMessage) error {
	var data dto.CampaignAnalysisData
	if err := json.Unmarshal(raw, &data); err != nil {
		return badRequest(c, "invalid action data")
	}

	userID := middleware.GetUserID(c)
	ca, err := h.analysisService.SaveCampaignAnalysis(c.Context(), userID, data.CampaignID, data.AnalysisResult)
	if err != nil {
		return fail(c, h.log, err)
	}

	return c.JSON(dto.OK(ca, "campaign analysis saved"))
}
