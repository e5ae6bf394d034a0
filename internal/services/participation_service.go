package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kchsung/connecta-manager/internal/apperr"
	"github.com/kchsung/connecta-manager/internal/models"
	"github.com/kchsung/connecta-manager/internal/repositories"
	"go.uber.org/zap"
)

type ParticipationService struct {
	participationRepo *repositories.ParticipationRepo
	campaignRepo      *repositories.CampaignRepo
	auditRepo         *repositories.AuditRepo
	log               *zap.Logger
}

func NewParticipationService(
	participationRepo *repositories.ParticipationRepo,
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *ParticipationService {
	return &ParticipationService{
		participationRepo: participationRepo,
		campaignRepo:      campaignRepo,
		auditRepo:         auditRepo,
		log:               log,
	}
}

func (s *ParticipationService) Create(ctx context.Context, userID uuid.UUID, p *models.Participation) error {
	if p.CampaignID == uuid.Nil || p.InfluencerID == uuid.Nil {
		return apperr.Validation("campaign_id and influencer_id are required")
	}

	// The campaign must belong to the caller; a foreign campaign reads as
	// missing.
	if _, err := s.campaignRepo.GetOwned(ctx, p.CampaignID, userID); err != nil {
		return apperr.FromDB(err, "campaign not found", "")
	}

	// Duplicate check on (campaign_id, influencer_id); the unique index
	// backs this up against concurrent inserts.
	_, err := s.participationRepo.GetByNaturalKey(ctx, p.CampaignID, p.InfluencerID)
	if err == nil {
		return apperr.Conflict("duplicate participation")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return apperr.Internal("database error", err)
	}

	if p.SampleStatus == "" {
		p.SampleStatus = models.SampleStatusRequested
	}
	if !models.IsValidSampleStatus(p.SampleStatus) {
		return apperr.Validation("invalid sample_status")
	}

	p.CreatedBy = userID
	if err := s.participationRepo.Create(ctx, p); err != nil {
		return apperr.FromDB(err, "participation not found", "duplicate participation")
	}

	s.audit(ctx, userID, "participation_created", p.ID)
	return nil
}

func (s *ParticipationService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Participation, error) {
	p, err := s.participationRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "participation not found", "")
	}
	return p, nil
}

func (s *ParticipationService) List(ctx context.Context, userID uuid.UUID, f repositories.ParticipationFilter) ([]models.ParticipationDetail, int, error) {
	f.OwnerID = userID
	details, total, err := s.participationRepo.ListPage(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal("database error", err)
	}
	return details, total, nil
}

// ParticipationPatch carries the allow-listed mutable fields of a
// participation. The campaign/influencer pair is fixed at creation.
type ParticipationPatch struct {
	ManagerComment     *string
	InfluencerRequests *string
	Memo               *string
	SampleStatus       *string
	InfluencerFeedback *string
	ContentUploaded    *bool
	CostKRW            *float64
	ContentLinks       []string
}

func (s *ParticipationService) Update(ctx context.Context, id, userID uuid.UUID, patch ParticipationPatch) (*models.Participation, error) {
	existing, err := s.participationRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "participation not found", "")
	}

	if patch.ManagerComment != nil {
		existing.ManagerComment = patch.ManagerComment
	}
	if patch.InfluencerRequests != nil {
		existing.InfluencerRequests = patch.InfluencerRequests
	}
	if patch.Memo != nil {
		existing.Memo = patch.Memo
	}
	if patch.SampleStatus != nil {
		existing.SampleStatus = *patch.SampleStatus
	}
	if patch.InfluencerFeedback != nil {
		existing.InfluencerFeedback = patch.InfluencerFeedback
	}
	if patch.ContentUploaded != nil {
		existing.ContentUploaded = *patch.ContentUploaded
	}
	if patch.CostKRW != nil {
		existing.CostKRW = patch.CostKRW
	}
	if patch.ContentLinks != nil {
		existing.ContentLinks = patch.ContentLinks
	}

	if !models.IsValidSampleStatus(existing.SampleStatus) {
		return nil, apperr.Validation("invalid sample_status")
	}

	if err := s.participationRepo.Update(ctx, existing); err != nil {
		return nil, apperr.FromDB(err, "participation not found", "")
	}

	s.audit(ctx, userID, "participation_updated", id)
	return existing, nil
}

func (s *ParticipationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.participationRepo.GetOwned(ctx, id, userID); err != nil {
		return apperr.FromDB(err, "participation not found", "")
	}
	if err := s.participationRepo.Delete(ctx, id); err != nil {
		return apperr.Internal("database error", err)
	}

	s.audit(ctx, userID, "participation_deleted", id)
	return nil
}

func (s *ParticipationService) audit(ctx context.Context, userID uuid.UUID, action string, entityID uuid.UUID) {
	if err := s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		Action:      action,
		EntityType:  "participation",
		EntityID:    &entityID,
	}); err != nil {
		s.log.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}
}
