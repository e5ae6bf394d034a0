package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kchsung/connecta-manager/internal/apperr"
	"github.com/kchsung/connecta-manager/internal/models"
	"github.com/kchsung/connecta-manager/internal/repositories"
	"github.com/kchsung/connecta-manager/internal/stats"
	"go.uber.org/zap"
)

// recentAnalysisWindow is how long an analysis stays "fresh". A fresh
// analysis tells callers to skip re-running the pipeline for that
// influencer/platform pair.
const recentAnalysisWindow = 30 * 24 * time.Hour

type AnalysisService struct {
	analysisRepo *repositories.AnalysisRepo
	campaignRepo *repositories.CampaignRepo
	log          *zap.Logger

	statsWindow time.Duration
	now         func() time.Time
}

func NewAnalysisService(
	analysisRepo *repositories.AnalysisRepo,
	campaignRepo *repositories.CampaignRepo,
	statsWindow time.Duration,
	log *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		analysisRepo: analysisRepo,
		campaignRepo: campaignRepo,
		log:          log,
		statsWindow:  statsWindow,
		now:          time.Now,
	}
}

// CheckRecent reports whether the influencer has been analyzed on the
// platform within the freshness window.
func (s *AnalysisService) CheckRecent(ctx context.Context, influencerID uuid.UUID, platform string) (bool, error) {
	if influencerID == uuid.Nil || platform == "" {
		return false, apperr.Validation("influencer_id and platform are required")
	}
	since := s.now().Add(-recentAnalysisWindow)
	recent, err := s.analysisRepo.HasRecent(ctx, influencerID, platform, since)
	if err != nil {
		return false, apperr.Internal("database error", err)
	}
	return recent, nil
}

// SaveAnalysis upserts an analysis run. The (influencer_id, alias,
// analyzed_on) key makes a same-day re-save update in place.
func (s *AnalysisService) SaveAnalysis(ctx context.Context, a *models.InfluencerAnalysis) error {
	if a.InfluencerID == uuid.Nil || a.Alias == "" {
		return apperr.Validation("influencer_id and alias are required")
	}
	if a.Recommendation == "" {
		a.Recommendation = models.RecommendationNeutral
	}
	if !models.IsValidRecommendation(a.Recommendation) {
		return apperr.Validation("invalid recommendation")
	}
	if a.Source == "" {
		a.Source = "ai_auto"
	}
	now := s.now().UTC()
	a.AnalyzedAt = now
	a.AnalyzedOn = now.Truncate(24 * time.Hour)

	if err := s.analysisRepo.Upsert(ctx, a); err != nil {
		return apperr.Internal("database error", err)
	}
	return nil
}

// GetAnalysisData lists analyses matching the filter, newest first.
func (s *AnalysisService) GetAnalysisData(ctx context.Context, f repositories.AnalysisFilter) ([]models.InfluencerAnalysis, int, error) {
	analyses, total, err := s.analysisRepo.ListPage(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal("database error", err)
	}
	return analyses, total, nil
}

// AnalysisStatistics is the reduction over all stored analyses.
type AnalysisStatistics struct {
	TotalCount         int            `json:"totalCount"`
	RecentCount        int            `json:"recentCount"`
	AvgScore           float64        `json:"avgScore"`
	RecommendationDist map[string]int `json:"recommendationDist"`
	CategoryStats      map[string]int `json:"categoryStats"`
	ScoreDistribution  []float64      `json:"scoreDistribution"`
}

// Statistics reduces every stored analysis in memory. Rows without a
// score are excluded from the average and the score slice; rows without
// a category or recommendation are excluded from those maps.
func (s *AnalysisService) Statistics(ctx context.Context) (*AnalysisStatistics, error) {
	rows, err := s.analysisRepo.ListStatRows(ctx)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}

	var (
		scores          []*float64
		recommendations []*string
		categories      []*string
		analyzedAt      []time.Time
	)
	scoreDist := make([]float64, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, row.OverallScore)
		recommendations = append(recommendations, row.Recommendation)
		categories = append(categories, row.Category)
		analyzedAt = append(analyzedAt, row.AnalyzedAt)
		if row.OverallScore != nil {
			scoreDist = append(scoreDist, *row.OverallScore)
		}
	}

	return &AnalysisStatistics{
		TotalCount:         len(rows),
		RecentCount:        stats.CountSince(analyzedAt, s.now(), s.statsWindow),
		AvgScore:           stats.AverageNonNil(scores),
		RecommendationDist: stats.Distribution(recommendations),
		CategoryStats:      stats.Distribution(categories),
		ScoreDistribution:  scoreDist,
	}, nil
}

// GetCampaignAnalysis returns the saved analysis for a campaign, or nil
// when none exists yet. A missing analysis is a normal state, not an
// error.
func (s *AnalysisService) GetCampaignAnalysis(ctx context.Context, campaignID, userID uuid.UUID) (*models.CampaignAnalysis, error) {
	if campaignID == uuid.Nil {
		return nil, apperr.Validation("campaign_id is required")
	}
	if _, err := s.campaignRepo.GetOwned(ctx, campaignID, userID); err != nil {
		return nil, apperr.FromDB(err, "campaign not found", "")
	}
	ca, err := s.analysisRepo.GetCampaignAnalysis(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Internal("database error", err)
	}
	return ca, nil
}

// SaveCampaignAnalysis upserts the one analysis row a campaign may
// carry.
func (s *AnalysisService) SaveCampaignAnalysis(ctx context.Context, userID uuid.UUID, campaignID uuid.UUID, result any) (*models.CampaignAnalysis, error) {
	if campaignID == uuid.Nil || result == nil {
		return nil, apperr.Validation("campaign_id and analysis_result are required")
	}
	if _, err := s.campaignRepo.GetOwned(ctx, campaignID, userID); err != nil {
		return nil, apperr.FromDB(err, "campaign not found", "")
	}
	ca := &models.CampaignAnalysis{
		CampaignID:     campaignID,
		AnalysisResult: result,
		AnalyzedAt:     s.now().UTC(),
	}
	if err := s.analysisRepo.UpsertCampaignAnalysis(ctx, ca); err != nil {
		return nil, apperr.Internal("database error", err)
	}
	return ca, nil
}
