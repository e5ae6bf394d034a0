package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kchsung/connecta-manager/internal/models"
)

const metricColumns = `id, participation_id, content_link, metric_type, metric_value,
	       qualitative_evaluation, measurement_date, created_at, updated_at`

type MetricRepo struct {
	pool *pgxpool.Pool
}

func NewMetricRepo(pool *pgxpool.Pool) *MetricRepo {
	return &MetricRepo{pool: pool}
}

func (r *MetricRepo) Create(ctx context.Context, m *models.PerformanceMetric) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO performance_metrics (participation_id, content_link, metric_type, metric_value,
		                                 qualitative_evaluation, measurement_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, m.ParticipationID, m.ContentLink, m.MetricType, m.MetricValue,
		m.QualitativeEvaluation, m.MeasurementDate,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// GetOwned fetches a metric by id, scoped through the owning campaign.
func (r *MetricRepo) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.PerformanceMetric, error) {
	var m models.PerformanceMetric
	err := r.pool.QueryRow(ctx, `
		SELECT pm.id, pm.participation_id, pm.content_link, pm.metric_type, pm.metric_value,
		       pm.qualitative_evaluation, pm.measurement_date, pm.created_at, pm.updated_at
		FROM performance_metrics pm
		JOIN campaign_participations p ON p.id = pm.participation_id
		JOIN campaigns c ON c.id = p.campaign_id
		WHERE pm.id = $1 AND c.created_by = $2
	`, id, ownerID).Scan(&m.ID, &m.ParticipationID, &m.ContentLink, &m.MetricType, &m.MetricValue,
		&m.QualitativeEvaluation, &m.MeasurementDate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MetricRepo) ListByParticipation(ctx context.Context, participationID uuid.UUID) ([]models.PerformanceMetric, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+metricColumns+`
		FROM performance_metrics WHERE participation_id = $1
		ORDER BY measurement_date DESC NULLS LAST, created_at DESC
	`, participationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMetrics(rows)
}

// ListByInfluencer collects all metrics recorded for an influencer across
// every campaign it participates in.
func (r *MetricRepo) ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.PerformanceMetric, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT pm.id, pm.participation_id, pm.content_link, pm.metric_type, pm.metric_value,
		       pm.qualitative_evaluation, pm.measurement_date, pm.created_at, pm.updated_at
		FROM performance_metrics pm
		JOIN campaign_participations p ON p.id = pm.participation_id
		WHERE p.influencer_id = $1
		ORDER BY pm.measurement_date DESC NULLS LAST, pm.created_at DESC
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMetrics(rows)
}

func (r *MetricRepo) Update(ctx context.Context, m *models.PerformanceMetric) error {
	return r.pool.QueryRow(ctx, `
		UPDATE performance_metrics SET content_link = $1, metric_type = $2, metric_value = $3,
		       qualitative_evaluation = $4, measurement_date = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`, m.ContentLink, m.MetricType, m.MetricValue, m.QualitativeEvaluation, m.MeasurementDate, m.ID,
	).Scan(&m.UpdatedAt)
}

func (r *MetricRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM performance_metrics WHERE id = $1`, id)
	return err
}

func scanMetrics(rows pgx.Rows) ([]models.PerformanceMetric, error) {
	var metrics []models.PerformanceMetric
	for rows.Next() {
		var m models.PerformanceMetric
		if err := rows.Scan(&m.ID, &m.ParticipationID, &m.ContentLink, &m.MetricType, &m.MetricValue,
			&m.QualitativeEvaluation, &m.MeasurementDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}
