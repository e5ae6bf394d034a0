package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/kchsung/connecta-manager/internal/apperr"
	"github.com/kchsung/connecta-manager/internal/models"
	"github.com/kchsung/connecta-manager/internal/repositories"
	"github.com/kchsung/connecta-manager/internal/stats"
	"go.uber.org/zap"
)

type AnalyticsService struct {
	campaignRepo      *repositories.CampaignRepo
	influencerRepo    *repositories.InfluencerRepo
	participationRepo *repositories.ParticipationRepo
	contentRepo       *repositories.ContentRepo
	log               *zap.Logger
}

func NewAnalyticsService(
	campaignRepo *repositories.CampaignRepo,
	influencerRepo *repositories.InfluencerRepo,
	participationRepo *repositories.ParticipationRepo,
	contentRepo *repositories.ContentRepo,
	log *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		campaignRepo:      campaignRepo,
		influencerRepo:    influencerRepo,
		participationRepo: participationRepo,
		contentRepo:       contentRepo,
		log:               log,
	}
}

type CampaignStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type InfluencerStats struct {
	Total            int   `json:"total"`
	TotalFollowers   int64 `json:"totalFollowers"`
	AverageFollowers int64 `json:"averageFollowers"`
}

type ParticipationStats struct {
	Total       int     `json:"total"`
	TotalCost   float64 `json:"totalCost"`
	AverageCost float64 `json:"averageCost"`
}

type PerformanceStats struct {
	TotalLikes       int64   `json:"totalLikes"`
	TotalComments    int64   `json:"totalComments"`
	TotalViews       int64   `json:"totalViews"`
	TotalConversions int64   `json:"totalConversions"`
	EngagementRate   float64 `json:"engagementRate"`
	ConversionRate   float64 `json:"conversionRate"`
}

type OverviewStats struct {
	Campaigns      CampaignStats      `json:"campaigns"`
	Influencers    InfluencerStats    `json:"influencers"`
	Participations ParticipationStats `json:"participations"`
	Performance    PerformanceStats   `json:"performance"`
}

// Overview aggregates everything the caller owns into one snapshot.
// All reductions run in memory over narrow projections; ratios are 0
// when their denominator is 0.
func (s *AnalyticsService) Overview(ctx context.Context, userID uuid.UUID) (*OverviewStats, error) {
	statuses, err := s.campaignRepo.ListStatuses(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}
	followerCounts, err := s.influencerRepo.ListFollowerCounts(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}
	costRows, err := s.participationRepo.ListCostRows(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}
	perfRows, err := s.contentRepo.ListPerformanceRows(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}

	var active, completed int
	for _, st := range statuses {
		switch st {
		case models.CampaignStatusActive:
			active++
		case models.CampaignStatusCompleted:
			completed++
		}
	}

	totalFollowers := stats.SumInt64(followerCounts)
	var avgFollowers int64
	if len(followerCounts) > 0 {
		avgFollowers = int64(math.Round(float64(totalFollowers) / float64(len(followerCounts))))
	}

	costs := make([]*float64, 0, len(costRows))
	for _, row := range costRows {
		costs = append(costs, row.CostKRW)
	}
	totalCost := stats.SumFloat64(costs)
	var avgCost float64
	if len(costRows) > 0 {
		avgCost = math.Round(totalCost / float64(len(costRows)))
	}

	var likes, comments, views, conversions []*int64
	for _, row := range perfRows {
		likes = append(likes, row.Likes)
		comments = append(comments, row.Comments)
		views = append(views, row.Views)
		conversions = append(conversions, row.Conversions)
	}
	totalLikes := stats.SumInt64(likes)
	totalComments := stats.SumInt64(comments)
	totalViews := stats.SumInt64(views)
	totalConversions := stats.SumInt64(conversions)

	return &OverviewStats{
		Campaigns: CampaignStats{
			Total:     len(statuses),
			Active:    active,
			Completed: completed,
		},
		Influencers: InfluencerStats{
			Total:            len(followerCounts),
			TotalFollowers:   totalFollowers,
			AverageFollowers: avgFollowers,
		},
		Participations: ParticipationStats{
			Total:       len(costRows),
			TotalCost:   totalCost,
			AverageCost: avgCost,
		},
		Performance: PerformanceStats{
			TotalLikes:       totalLikes,
			TotalComments:    totalComments,
			TotalViews:       totalViews,
			TotalConversions: totalConversions,
			EngagementRate:   round2(stats.Percent(float64(totalLikes+totalComments), float64(totalViews))),
			ConversionRate:   round2(stats.Percent(float64(totalConversions), float64(totalViews))),
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
