package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kchsung/connecta-manager/internal/models"
)

const contentColumns = `id, participation_id, content_url, posted_at, caption, qualitative_note,
	       likes, comments, shares, views, clicks, conversions, created_by, created_at, updated_at`

type ContentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

func (r *ContentRepo) Create(ctx context.Context, c *models.Content) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaign_contents (participation_id, content_url, posted_at, caption, qualitative_note,
		                               likes, comments, shares, views, clicks, conversions, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, c.ParticipationID, c.ContentURL, c.PostedAt, c.Caption, c.QualitativeNote,
		c.Likes, c.Comments, c.Shares, c.Views, c.Clicks, c.Conversions, c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetOwned fetches a content row by id, scoped through the owning campaign.
func (r *ContentRepo) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Content, error) {
	var c models.Content
	err := r.pool.QueryRow(ctx, `
		SELECT cc.id, cc.participation_id, cc.content_url, cc.posted_at, cc.caption, cc.qualitative_note,
		       cc.likes, cc.comments, cc.shares, cc.views, cc.clicks, cc.conversions,
		       cc.created_by, cc.created_at, cc.updated_at
		FROM campaign_contents cc
		JOIN campaign_participations p ON p.id = cc.participation_id
		JOIN campaigns cam ON cam.id = p.campaign_id
		WHERE cc.id = $1 AND cam.created_by = $2
	`, id, ownerID).Scan(&c.ID, &c.ParticipationID, &c.ContentURL, &c.PostedAt, &c.Caption,
		&c.QualitativeNote, &c.Likes, &c.Comments, &c.Shares, &c.Views, &c.Clicks, &c.Conversions,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepo) ListByParticipation(ctx context.Context, participationID uuid.UUID) ([]models.Content, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+contentColumns+`
		FROM campaign_contents WHERE participation_id = $1
		ORDER BY created_at DESC
	`, participationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []models.Content
	for rows.Next() {
		var c models.Content
		if err := rows.Scan(&c.ID, &c.ParticipationID, &c.ContentURL, &c.PostedAt, &c.Caption,
			&c.QualitativeNote, &c.Likes, &c.Comments, &c.Shares, &c.Views, &c.Clicks, &c.Conversions,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, nil
}

func (r *ContentRepo) Update(ctx context.Context, c *models.Content) error {
	return r.pool.QueryRow(ctx, `
		UPDATE campaign_contents SET content_url = $1, posted_at = $2, caption = $3, qualitative_note = $4,
		       likes = $5, comments = $6, shares = $7, views = $8, clicks = $9, conversions = $10,
		       updated_at = now()
		WHERE id = $11
		RETURNING updated_at
	`, c.ContentURL, c.PostedAt, c.Caption, c.QualitativeNote,
		c.Likes, c.Comments, c.Shares, c.Views, c.Clicks, c.Conversions, c.ID,
	).Scan(&c.UpdatedAt)
}

func (r *ContentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaign_contents WHERE id = $1`, id)
	return err
}

// PerformanceRow is the projection consumed by the overview aggregation.
type PerformanceRow struct {
	Likes       *int64
	Comments    *int64
	Shares      *int64
	Views       *int64
	Clicks      *int64
	Conversions *int64
}

func (r *ContentRepo) ListPerformanceRows(ctx context.Context, ownerID uuid.UUID) ([]PerformanceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cc.likes, cc.comments, cc.shares, cc.views, cc.clicks, cc.conversions
		FROM campaign_contents cc
		JOIN campaign_participations p ON p.id = cc.participation_id
		JOIN campaigns cam ON cam.id = p.campaign_id
		WHERE cam.created_by = $1
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PerformanceRow
	for rows.Next() {
		var pr PerformanceRow
		if err := rows.Scan(&pr.Likes, &pr.Comments, &pr.Shares, &pr.Views, &pr.Clicks, &pr.Conversions); err != nil {
			return nil, err
		}
		result = append(result, pr)
	}
	return result, nil
}
