package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kchsung/connecta-manager/internal/models"
)

const participationColumns = `p.id, p.campaign_id, p.influencer_id, p.manager_comment, p.influencer_requests,
	       p.memo, p.sample_status, p.influencer_feedback, p.content_uploaded, p.cost_krw,
	       p.content_links, p.created_by, p.created_at, p.updated_at`

type ParticipationRepo struct {
	pool *pgxpool.Pool
}

func NewParticipationRepo(pool *pgxpool.Pool) *ParticipationRepo {
	return &ParticipationRepo{pool: pool}
}

func (r *ParticipationRepo) Create(ctx context.Context, p *models.Participation) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaign_participations (campaign_id, influencer_id, manager_comment, influencer_requests,
		                                     memo, sample_status, influencer_feedback, content_uploaded,
		                                     cost_krw, content_links, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.CampaignID, p.InfluencerID, p.ManagerComment, p.InfluencerRequests,
		p.Memo, p.SampleStatus, p.InfluencerFeedback, p.ContentUploaded,
		p.CostKRW, p.ContentLinks, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetOwned fetches a participation by id, scoped through the parent
// campaign's owner.
func (r *ParticipationRepo) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Participation, error) {
	var p models.Participation
	err := r.pool.QueryRow(ctx, `
		SELECT `+participationColumns+`
		FROM campaign_participations p
		JOIN campaigns c ON c.id = p.campaign_id
		WHERE p.id = $1 AND c.created_by = $2
	`, id, ownerID).Scan(&p.ID, &p.CampaignID, &p.InfluencerID, &p.ManagerComment, &p.InfluencerRequests,
		&p.Memo, &p.SampleStatus, &p.InfluencerFeedback, &p.ContentUploaded, &p.CostKRW,
		&p.ContentLinks, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByNaturalKey resolves a participation by (campaign_id, influencer_id).
func (r *ParticipationRepo) GetByNaturalKey(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error) {
	var p models.Participation
	err := r.pool.QueryRow(ctx, `
		SELECT `+participationColumns+`
		FROM campaign_participations p
		WHERE p.campaign_id = $1 AND p.influencer_id = $2
	`, campaignID, influencerID).Scan(&p.ID, &p.CampaignID, &p.InfluencerID, &p.ManagerComment,
		&p.InfluencerRequests, &p.Memo, &p.SampleStatus, &p.InfluencerFeedback, &p.ContentUploaded,
		&p.CostKRW, &p.ContentLinks, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type ParticipationFilter struct {
	OwnerID     uuid.UUID
	CampaignID  *uuid.UUID
	SearchSNSID *string
	Limit       int
	Offset      int
}

func (f ParticipationFilter) build() *whereBuilder {
	b := &whereBuilder{}
	b.Add("c.created_by = $%d", f.OwnerID)
	if f.CampaignID != nil {
		b.Add("p.campaign_id = $%d", *f.CampaignID)
	}
	if v := NormalizeFilter(f.SearchSNSID); v != nil {
		b.AddSearch(*v, "i.sns_id", "i.influencer_name")
	}
	return b
}

const participationJoin = `
		FROM campaign_participations p
		JOIN campaigns c ON c.id = p.campaign_id
		JOIN influencers i ON i.id = p.influencer_id`

// ListPage returns one page of participations enriched with campaign name
// and influencer summary, plus the total count from the same predicates.
func (r *ParticipationRepo) ListPage(ctx context.Context, f ParticipationFilter) ([]models.ParticipationDetail, int, error) {
	b := f.build()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+participationJoin+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	frag, args := b.Page("p.created_at DESC", f.Limit, f.Offset)
	rows, err := r.pool.Query(ctx, `
		SELECT `+participationColumns+`,
		       c.campaign_name, i.influencer_name, i.sns_id, i.platform, i.followers_count`+
		participationJoin+b.Where()+frag, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var details []models.ParticipationDetail
	for rows.Next() {
		var d models.ParticipationDetail
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.InfluencerID, &d.ManagerComment, &d.InfluencerRequests,
			&d.Memo, &d.SampleStatus, &d.InfluencerFeedback, &d.ContentUploaded, &d.CostKRW,
			&d.ContentLinks, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
			&d.CampaignName, &d.Influencer.InfluencerName, &d.Influencer.SNSID,
			&d.Influencer.Platform, &d.Influencer.FollowersCount); err != nil {
			return nil, 0, err
		}
		details = append(details, d)
	}
	return details, total, nil
}

func (r *ParticipationRepo) Update(ctx context.Context, p *models.Participation) error {
	return r.pool.QueryRow(ctx, `
		UPDATE campaign_participations SET manager_comment = $1, influencer_requests = $2, memo = $3,
		       sample_status = $4, influencer_feedback = $5, content_uploaded = $6, cost_krw = $7,
		       content_links = $8, updated_at = now()
		WHERE id = $9
		RETURNING updated_at
	`, p.ManagerComment, p.InfluencerRequests, p.Memo, p.SampleStatus, p.InfluencerFeedback,
		p.ContentUploaded, p.CostKRW, p.ContentLinks, p.ID,
	).Scan(&p.UpdatedAt)
}

func (r *ParticipationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaign_participations WHERE id = $1`, id)
	return err
}

// CostRow is the projection consumed by the overview aggregation.
type CostRow struct {
	SampleStatus string
	CostKRW      *float64
}

func (r *ParticipationRepo) ListCostRows(ctx context.Context, ownerID uuid.UUID) ([]CostRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.sample_status, p.cost_krw
		FROM campaign_participations p
		JOIN campaigns c ON c.id = p.campaign_id
		WHERE c.created_by = $1
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CostRow
	for rows.Next() {
		var cr CostRow
		if err := rows.Scan(&cr.SampleStatus, &cr.CostKRW); err != nil {
			return nil, err
		}
		result = append(result, cr)
	}
	return result, nil
}
