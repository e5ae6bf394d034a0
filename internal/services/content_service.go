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

type ContentService struct {
	contentRepo       *repositories.ContentRepo
	participationRepo *repositories.ParticipationRepo
	log               *zap.Logger
}

func NewContentService(
	contentRepo *repositories.ContentRepo,
	participationRepo *repositories.ParticipationRepo,
	log *zap.Logger,
) *ContentService {
	return &ContentService{
		contentRepo:       contentRepo,
		participationRepo: participationRepo,
		log:               log,
	}
}

func (s *ContentService) Create(ctx context.Context, userID uuid.UUID, c *models.Content) error {
	if c.ParticipationID == uuid.Nil || c.ContentURL == "" {
		return apperr.Validation("participation_id and content_url are required")
	}

	if _, err := s.participationRepo.GetOwned(ctx, c.ParticipationID, userID); err != nil {
		return apperr.FromDB(err, "participation not found", "")
	}

	c.CreatedBy = userID
	if err := s.contentRepo.Create(ctx, c); err != nil {
		return apperr.FromDB(err, "content not found", "duplicate content")
	}
	return nil
}

func (s *ContentService) ListByParticipation(ctx context.Context, participationID, userID uuid.UUID) ([]models.Content, error) {
	if _, err := s.participationRepo.GetOwned(ctx, participationID, userID); err != nil {
		return nil, apperr.FromDB(err, "participation not found", "")
	}
	contents, err := s.contentRepo.ListByParticipation(ctx, participationID)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}
	return contents, nil
}

// ContentPatch carries the allow-listed mutable fields of a content record.
type ContentPatch struct {
	ContentURL      *string
	PostedAt        *time.Time
	Caption         *string
	QualitativeNote *string
	Likes           *int64
	Comments        *int64
	Shares          *int64
	Views           *int64
	Clicks          *int64
	Conversions     *int64
}

func (s *ContentService) Update(ctx context.Context, id, userID uuid.UUID, patch ContentPatch) (*models.Content, error) {
	existing, err := s.contentRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "content not found", "")
	}

	if patch.ContentURL != nil {
		existing.ContentURL = *patch.ContentURL
	}
	if patch.PostedAt != nil {
		existing.PostedAt = patch.PostedAt
	}
	if patch.Caption != nil {
		existing.Caption = patch.Caption
	}
	if patch.QualitativeNote != nil {
		existing.QualitativeNote = patch.QualitativeNote
	}
	if patch.Likes != nil {
		existing.Likes = patch.Likes
	}
	if patch.Comments != nil {
		existing.Comments = patch.Comments
	}
	if patch.Shares != nil {
		existing.Shares = patch.Shares
	}
	if patch.Views != nil {
		existing.Views = patch.Views
	}
	if patch.Clicks != nil {
		existing.Clicks = patch.Clicks
	}
	if patch.Conversions != nil {
		existing.Conversions = patch.Conversions
	}

	if err := s.contentRepo.Update(ctx, existing); err != nil {
		return nil, apperr.FromDB(err, "content not found", "")
	}
	return existing, nil
}

func (s *ContentService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.contentRepo.GetOwned(ctx, id, userID); err != nil {
		return apperr.FromDB(err, "content not found", "")
	}
	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return apperr.Internal("database error", err)
	}
	return nil
}
