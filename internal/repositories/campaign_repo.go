package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kchsung/connecta-manager/internal/models"
)

const campaignColumns = `id, campaign_name, campaign_description, campaign_type, start_date, end_date,
	       status, campaign_instructions, tags, created_by, created_at, updated_at`

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (campaign_name, campaign_description, campaign_type, start_date, end_date,
		                       status, campaign_instructions, tags, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, c.CampaignName, c.CampaignDescription, c.CampaignType, c.StartDate, c.EndDate,
		c.Status, c.CampaignInstructions, c.Tags, c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetOwned fetches a campaign by id AND owner in one query; a non-owner
// sees the same "no rows" as a missing campaign.
func (r *CampaignRepo) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns WHERE id = $1 AND created_by = $2
	`, id, ownerID).Scan(&c.ID, &c.CampaignName, &c.CampaignDescription, &c.CampaignType,
		&c.StartDate, &c.EndDate, &c.Status, &c.CampaignInstructions, &c.Tags,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type CampaignFilter struct {
	OwnerID uuid.UUID
	Type    *string
	Status  *string
	Search  *string
	Limit   int
	Offset  int
}

func (f CampaignFilter) build() *whereBuilder {
	b := &whereBuilder{}
	b.Add("created_by = $%d", f.OwnerID)
	if v := NormalizeFilter(f.Type); v != nil {
		b.Add("campaign_type = $%d", *v)
	}
	if v := NormalizeFilter(f.Status); v != nil {
		b.Add("status = $%d", *v)
	}
	if v := NormalizeFilter(f.Search); v != nil {
		b.AddSearch(*v, "campaign_name", "tags", "campaign_description")
	}
	return b
}

// ListPage returns one page of campaigns plus the total count computed from
// the identical predicates.
func (r *CampaignRepo) ListPage(ctx context.Context, f CampaignFilter) ([]models.Campaign, int, error) {
	b := f.build()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM campaigns`+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	frag, args := b.Page("created_at DESC", f.Limit, f.Offset)
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns`+b.Where()+frag, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	campaigns, err := scanCampaigns(rows)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// Update writes the mutable fields of an owned campaign. created_by is
// never touched.
func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign, ownerID uuid.UUID) error {
	return r.pool.QueryRow(ctx, `
		UPDATE campaigns SET campaign_name = $1, campaign_description = $2, campaign_type = $3,
		       start_date = $4, end_date = $5, status = $6, campaign_instructions = $7, tags = $8,
		       updated_at = now()
		WHERE id = $9 AND created_by = $10
		RETURNING updated_at
	`, c.CampaignName, c.CampaignDescription, c.CampaignType, c.StartDate, c.EndDate,
		c.Status, c.CampaignInstructions, c.Tags, c.ID, ownerID,
	).Scan(&c.UpdatedAt)
}

func (r *CampaignRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListStatuses returns the status of every campaign owned by ownerID, for
// the overview aggregation.
func (r *CampaignRepo) ListStatuses(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT status FROM campaigns WHERE created_by = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func scanCampaigns(rows pgx.Rows) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.CampaignName, &c.CampaignDescription, &c.CampaignType,
			&c.StartDate, &c.EndDate, &c.Status, &c.CampaignInstructions, &c.Tags,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
