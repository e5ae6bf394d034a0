package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kchsung/connecta-manager/internal/apperr"
	"github.com/kchsung/connecta-manager/internal/models"
	"go.uber.org/zap"
)

// These tests exercise the validation paths that reject a request before
// any store access happens, so no database is required.

func TestCampaignCreateValidation(t *testing.T) {
	svc := NewCampaignService(nil, nil, zap.NewNop())
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name     string
		campaign models.Campaign
	}{
		{"missing name", models.Campaign{CampaignType: "seeding", StartDate: now}},
		{"missing type", models.Campaign{CampaignName: "spring launch", StartDate: now}},
		{"missing start date", models.Campaign{CampaignName: "spring launch", CampaignType: "seeding"}},
		{"bad type", models.Campaign{CampaignName: "spring launch", CampaignType: "branding", StartDate: now}},
		{"bad status", models.Campaign{CampaignName: "spring launch", CampaignType: "seeding", StartDate: now, Status: "archived"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.campaign
			err := svc.Create(context.Background(), userID, &c)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestInfluencerCreateValidation(t *testing.T) {
	svc := NewInfluencerService(nil, nil, zap.NewNop())
	userID := uuid.New()

	tests := []struct {
		name       string
		influencer models.Influencer
	}{
		{"missing sns_id", models.Influencer{Platform: "instagram", SNSURL: "https://instagram.com/x"}},
		{"missing sns_url", models.Influencer{Platform: "instagram", SNSID: "x"}},
		{"bad platform", models.Influencer{Platform: "myspace", SNSID: "x", SNSURL: "https://myspace.com/x"}},
		{"bad contact method", models.Influencer{Platform: "instagram", SNSID: "x", SNSURL: "https://instagram.com/x", ContactMethod: "fax"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inf := tt.influencer
			err := svc.Create(context.Background(), userID, &inf)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestParticipationCreateRequiresIDs(t *testing.T) {
	svc := NewParticipationService(nil, nil, nil, zap.NewNop())

	err := svc.Create(context.Background(), uuid.New(), &models.Participation{})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestContentCreateRequiresURL(t *testing.T) {
	svc := NewContentService(nil, nil, zap.NewNop())

	err := svc.Create(context.Background(), uuid.New(), &models.Content{ParticipationID: uuid.New()})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestMetricCreateValidation(t *testing.T) {
	svc := NewMetricService(nil, nil, nil, zap.NewNop())
	userID := uuid.New()

	err := svc.Create(context.Background(), userID, &models.PerformanceMetric{})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("missing fields: expected validation error, got %v", err)
	}

	err = svc.Create(context.Background(), userID, &models.PerformanceMetric{
		ParticipationID: uuid.New(),
		MetricType:      "impressions",
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("bad metric type: expected validation error, got %v", err)
	}
}

func TestAnalysisValidation(t *testing.T) {
	svc := NewAnalysisService(nil, nil, 7*24*time.Hour, zap.NewNop())

	if _, err := svc.CheckRecent(context.Background(), uuid.Nil, "instagram"); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("nil influencer id: expected validation error, got %v", err)
	}
	if _, err := svc.CheckRecent(context.Background(), uuid.New(), ""); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("empty platform: expected validation error, got %v", err)
	}

	if err := svc.SaveAnalysis(context.Background(), &models.InfluencerAnalysis{InfluencerID: uuid.New()}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("missing alias: expected validation error, got %v", err)
	}
	if err := svc.SaveAnalysis(context.Background(), &models.InfluencerAnalysis{
		InfluencerID:   uuid.New(),
		Alias:          "foodie_kim",
		Recommendation: "maybe",
	}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("bad recommendation: expected validation error, got %v", err)
	}

	if _, err := svc.GetCampaignAnalysis(context.Background(), uuid.Nil, uuid.New()); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("nil campaign id: expected validation error, got %v", err)
	}
	if _, err := svc.SaveCampaignAnalysis(context.Background(), uuid.New(), uuid.Nil, map[string]any{"x": 1}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("nil campaign id on save: expected validation error, got %v", err)
	}
}
