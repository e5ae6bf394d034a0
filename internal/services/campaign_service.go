package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kchsung/connecta-manager/internal/apperr"
	"github.com/kchsung/connecta-manager/internal/models"
	"github.com/kchsung/connecta-manager/internal/repositories"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) error {
	if c.CampaignName == "" || c.CampaignType == "" || c.StartDate.IsZero() {
		return apperr.Validation("campaign_name, campaign_type and start_date are required")
	}
	if !models.IsValidCampaignType(c.CampaignType) {
		return apperr.Validation("invalid campaign_type")
	}
	if c.Status == "" {
		c.Status = models.CampaignStatusPlanned
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return apperr.Validation("invalid status")
	}

	c.CreatedBy = userID
	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return apperr.FromDB(err, "campaign not found", "duplicate campaign")
	}

	s.audit(ctx, userID, "campaign_created", c.ID)
	return nil
}

func (s *CampaignService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "campaign not found", "")
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, userID uuid.UUID, f repositories.CampaignFilter) ([]models.Campaign, int, error) {
	f.OwnerID = userID
	campaigns, total, err := s.campaignRepo.ListPage(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal("database error", err)
	}
	return campaigns, total, nil
}

// CampaignPatch carries the allow-listed mutable fields of a campaign.
// Nil fields keep their current value; created_by can never change.
type CampaignPatch struct {
	CampaignName         *string
	CampaignDescription  *string
	CampaignType         *string
	StartDate            *time.Time
	EndDate              *time.Time
	Status               *string
	CampaignInstructions *string
	Tags                 *string
}

func (s *CampaignService) Update(ctx context.Context, id, userID uuid.UUID, patch CampaignPatch) (*models.Campaign, error) {
	existing, err := s.campaignRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "campaign not found", "")
	}

	if patch.CampaignName != nil {
		existing.CampaignName = *patch.CampaignName
	}
	if patch.CampaignDescription != nil {
		existing.CampaignDescription = patch.CampaignDescription
	}
	if patch.CampaignType != nil {
		existing.CampaignType = *patch.CampaignType
	}
	if patch.StartDate != nil {
		existing.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		existing.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.CampaignInstructions != nil {
		existing.CampaignInstructions = patch.CampaignInstructions
	}
	if patch.Tags != nil {
		existing.Tags = patch.Tags
	}

	if !models.IsValidCampaignType(existing.CampaignType) {
		return nil, apperr.Validation("invalid campaign_type")
	}
	if !models.IsValidCampaignStatus(existing.Status) {
		return nil, apperr.Validation("invalid status")
	}

	if err := s.campaignRepo.Update(ctx, existing, userID); err != nil {
		return nil, apperr.FromDB(err, "campaign not found", "")
	}

	s.audit(ctx, userID, "campaign_updated", id)
	return existing, nil
}

func (s *CampaignService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	deleted, err := s.campaignRepo.Delete(ctx, id, userID)
	if err != nil {
		return apperr.Internal("database error", err)
	}
	if !deleted {
		return apperr.NotFound("campaign not found")
	}

	s.audit(ctx, userID, "campaign_deleted", id)
	return nil
}

func (s *CampaignService) audit(ctx context.Context, userID uuid.UUID, action string, entityID uuid.UUID) {
	if err := s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		Action:      action,
		EntityType:  "campaign",
		EntityID:    &entityID,
	}); err != nil {
		s.log.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}
}
