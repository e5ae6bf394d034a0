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

type MetricService struct {
	metricRepo        *repositories.MetricRepo
	participationRepo *repositories.ParticipationRepo
	influencerRepo    *repositories.InfluencerRepo
	log               *zap.Logger
}

func NewMetricService(
	metricRepo *repositories.MetricRepo,
	participationRepo *repositories.ParticipationRepo,
	influencerRepo *repositories.InfluencerRepo,
	log *zap.Logger,
) *MetricService {
	return &MetricService{
		metricRepo:        metricRepo,
		participationRepo: participationRepo,
		influencerRepo:    influencerRepo,
		log:               log,
	}
}

func (s *MetricService) Create(ctx context.Context, userID uuid.UUID, m *models.PerformanceMetric) error {
	if m.ParticipationID == uuid.Nil || m.MetricType == "" {
		return apperr.Validation("participation_id and metric_type are required")
	}
	if !models.IsValidMetricType(m.MetricType) {
		return apperr.Validation("invalid metric_type")
	}

	if _, err := s.participationRepo.GetOwned(ctx, m.ParticipationID, userID); err != nil {
		return apperr.FromDB(err, "participation not found", "")
	}

	if err := s.metricRepo.Create(ctx, m); err != nil {
		return apperr.Internal("database error", err)
	}
	return nil
}

func (s *MetricService) ListByParticipation(ctx context.Context, participationID, userID uuid.UUID) ([]models.PerformanceMetric, error) {
	if _, err := s.participationRepo.GetOwned(ctx, participationID, userID); err != nil {
		return nil, apperr.FromDB(err, "participation not found", "")
	}
	metrics, err := s.metricRepo.ListByParticipation(ctx, participationID)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}
	return metrics, nil
}

// ListByInfluencer returns every metric recorded for an influencer across
// campaigns. The influencer just has to exist; the rows themselves carry no
// owner column and ownership is enforced when they are written.
func (s *MetricService) ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.PerformanceMetric, error) {
	if _, err := s.influencerRepo.GetByID(ctx, influencerID); err != nil {
		return nil, apperr.FromDB(err, "influencer not found", "")
	}
	metrics, err := s.metricRepo.ListByInfluencer(ctx, influencerID)
	if err != nil {
		return nil, apperr.Internal("database error", err)
	}
	return metrics, nil
}

// MetricPatch carries the allow-listed mutable fields of a metric.
type MetricPatch struct {
	ContentLink           *string
	MetricType            *string
	MetricValue           *int64
	QualitativeEvaluation *string
	MeasurementDate       *time.Time
}

func (s *MetricService) Update(ctx context.Context, id, userID uuid.UUID, patch MetricPatch) (*models.PerformanceMetric, error) {
	existing, err := s.metricRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "metric not found", "")
	}

	if patch.ContentLink != nil {
		existing.ContentLink = patch.ContentLink
	}
	if patch.MetricType != nil {
		existing.MetricType = *patch.MetricType
	}
	if patch.MetricValue != nil {
		existing.MetricValue = *patch.MetricValue
	}
	if patch.QualitativeEvaluation != nil {
		existing.QualitativeEvaluation = patch.QualitativeEvaluation
	}
	if patch.MeasurementDate != nil {
		existing.MeasurementDate = patch.MeasurementDate
	}

	if !models.IsValidMetricType(existing.MetricType) {
		return nil, apperr.Validation("invalid metric_type")
	}

	if err := s.metricRepo.Update(ctx, existing); err != nil {
		return nil, apperr.FromDB(err, "metric not found", "")
	}
	return existing, nil
}

func (s *MetricService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.metricRepo.GetOwned(ctx, id, userID); err != nil {
		return apperr.FromDB(err, "metric not found", "")
	}
	if err := s.metricRepo.Delete(ctx, id); err != nil {
		return apperr.Internal("database error", err)
	}
	return nil
}
