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

type InfluencerService struct {
	influencerRepo *repositories.InfluencerRepo
	auditRepo      *repositories.AuditRepo
	log            *zap.Logger
}

func NewInfluencerService(
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *InfluencerService {
	return &InfluencerService{
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		log:            log,
	}
}

func (s *InfluencerService) Create(ctx context.Context, userID uuid.UUID, inf *models.Influencer) error {
	if inf.Platform == "" || inf.SNSID == "" || inf.SNSURL == "" {
		return apperr.Validation("platform, sns_id and sns_url are required")
	}
	if !models.IsValidPlatform(inf.Platform) {
		return apperr.Validation("invalid platform")
	}
	if inf.ContactMethod == "" {
		inf.ContactMethod = models.ContactMethodDM
	}
	if !models.IsValidContactMethod(inf.ContactMethod) {
		return apperr.Validation("invalid contact_method")
	}

	// Duplicate check on the natural key; the unique index backs this up
	// against concurrent inserts.
	_, err := s.influencerRepo.GetByPlatformSNSID(ctx, inf.Platform, inf.SNSID)
	if err == nil {
		return apperr.Conflict("duplicate influencer")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return apperr.Internal("database error", err)
	}

	inf.CreatedBy = userID
	if err := s.influencerRepo.Create(ctx, inf); err != nil {
		return apperr.FromDB(err, "influencer not found", "duplicate influencer")
	}

	s.audit(ctx, userID, "influencer_created", inf.ID)
	return nil
}

func (s *InfluencerService) Get(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	inf, err := s.influencerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err, "influencer not found", "")
	}
	return inf, nil
}

func (s *InfluencerService) List(ctx context.Context, f repositories.InfluencerFilter) ([]models.Influencer, int, error) {
	influencers, total, err := s.influencerRepo.ListPage(ctx, f)
	if err != nil {
		return nil, 0, apperr.Internal("database error", err)
	}
	return influencers, total, nil
}

// InfluencerPatch carries the allow-listed mutable fields of an influencer.
type InfluencerPatch struct {
	Platform              *string
	ContentCategory       *string
	InfluencerName        *string
	SNSID                 *string
	SNSURL                *string
	ContactMethod         *string
	FollowersCount        *int64
	PhoneNumber           *string
	KakaoChannelID        *string
	Email                 *string
	ShippingAddress       *string
	InterestedProducts    *string
	OwnerComment          *string
	ManagerRating         *int
	ContentRating         *int
	CommentsCount         *int64
	ForeignFollowersRatio *float64
	ActivityScore         *float64
	PreferredMode         *string
	PriceKRW              *float64
	Tags                  *string
	Active                *bool
	PostCount             *int64
	ProfileText           *string
	ProfileImageURL       *string
}

func (s *InfluencerService) Update(ctx context.Context, id, userID uuid.UUID, patch InfluencerPatch) (*models.Influencer, error) {
	existing, err := s.influencerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err, "influencer not found", "")
	}
	// Ownership is re-checked by the conditional UPDATE below; a non-owner
	// still sees "not found".
	if existing.CreatedBy != userID {
		return nil, apperr.NotFound("influencer not found")
	}

	applyInfluencerPatch(existing, patch)

	if !models.IsValidPlatform(existing.Platform) {
		return nil, apperr.Validation("invalid platform")
	}
	if !models.IsValidContactMethod(existing.ContactMethod) {
		return nil, apperr.Validation("invalid contact_method")
	}

	if err := s.influencerRepo.Update(ctx, existing, userID); err != nil {
		return nil, apperr.FromDB(err, "influencer not found", "duplicate influencer")
	}

	s.audit(ctx, userID, "influencer_updated", id)
	return existing, nil
}

func (s *InfluencerService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	deleted, err := s.influencerRepo.Delete(ctx, id, userID)
	if err != nil {
		return apperr.Internal("database error", err)
	}
	if !deleted {
		return apperr.NotFound("influencer not found")
	}

	s.audit(ctx, userID, "influencer_deleted", id)
	return nil
}

func applyInfluencerPatch(inf *models.Influencer, p InfluencerPatch) {
	if p.Platform != nil {
		inf.Platform = *p.Platform
	}
	if p.ContentCategory != nil {
		inf.ContentCategory = *p.ContentCategory
	}
	if p.InfluencerName != nil {
		inf.InfluencerName = p.InfluencerName
	}
	if p.SNSID != nil {
		inf.SNSID = *p.SNSID
	}
	if p.SNSURL != nil {
		inf.SNSURL = *p.SNSURL
	}
	if p.ContactMethod != nil {
		inf.ContactMethod = *p.ContactMethod
	}
	if p.FollowersCount != nil {
		inf.FollowersCount = p.FollowersCount
	}
	if p.PhoneNumber != nil {
		inf.PhoneNumber = p.PhoneNumber
	}
	if p.KakaoChannelID != nil {
		inf.KakaoChannelID = p.KakaoChannelID
	}
	if p.Email != nil {
		inf.Email = p.Email
	}
	if p.ShippingAddress != nil {
		inf.ShippingAddress = p.ShippingAddress
	}
	if p.InterestedProducts != nil {
		inf.InterestedProducts = p.InterestedProducts
	}
	if p.OwnerComment != nil {
		inf.OwnerComment = p.OwnerComment
	}
	if p.ManagerRating != nil {
		inf.ManagerRating = p.ManagerRating
	}
	if p.ContentRating != nil {
		inf.ContentRating = p.ContentRating
	}
	if p.CommentsCount != nil {
		inf.CommentsCount = p.CommentsCount
	}
	if p.ForeignFollowersRatio != nil {
		inf.ForeignFollowersRatio = p.ForeignFollowersRatio
	}
	if p.ActivityScore != nil {
		inf.ActivityScore = p.ActivityScore
	}
	if p.PreferredMode != nil {
		inf.PreferredMode = p.PreferredMode
	}
	if p.PriceKRW != nil {
		inf.PriceKRW = p.PriceKRW
	}
	if p.Tags != nil {
		inf.Tags = p.Tags
	}
	if p.Active != nil {
		inf.Active = *p.Active
	}
	if p.PostCount != nil {
		inf.PostCount = p.PostCount
	}
	if p.ProfileText != nil {
		inf.ProfileText = p.ProfileText
	}
	if p.ProfileImageURL != nil {
		inf.ProfileImageURL = p.ProfileImageURL
	}
}

func (s *InfluencerService) audit(ctx context.Context, userID uuid.UUID, action string, entityID uuid.UUID) {
	if err := s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		Action:      action,
		EntityType:  "influencer",
		EntityID:    &entityID,
	}); err != nil {
		s.log.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}
}
