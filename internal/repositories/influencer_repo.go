package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kchsung/connecta-manager/internal/models"
)

const influencerColumns = `id, platform, content_category, influencer_name, sns_id, sns_url, contact_method,
	       followers_count, phone_number, kakao_channel_id, email, shipping_address,
	       interested_products, owner_comment, manager_rating, content_rating, comments_count,
	       foreign_followers_ratio, activity_score, preferred_mode, price_krw, tags, active,
	       post_count, profile_text, profile_image_url, created_by, created_at, updated_at`

type InfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepo(pool *pgxpool.Pool) *InfluencerRepo {
	return &InfluencerRepo{pool: pool}
}

func (r *InfluencerRepo) Create(ctx context.Context, inf *models.Influencer) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO influencers (platform, content_category, influencer_name, sns_id, sns_url, contact_method,
		                         followers_count, phone_number, kakao_channel_id, email, shipping_address,
		                         interested_products, owner_comment, manager_rating, content_rating, comments_count,
		                         foreign_followers_ratio, activity_score, preferred_mode, price_krw, tags, active,
		                         post_count, profile_text, profile_image_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id, created_at, updated_at
	`, inf.Platform, inf.ContentCategory, inf.InfluencerName, inf.SNSID, inf.SNSURL, inf.ContactMethod,
		inf.FollowersCount, inf.PhoneNumber, inf.KakaoChannelID, inf.Email, inf.ShippingAddress,
		inf.InterestedProducts, inf.OwnerComment, inf.ManagerRating, inf.ContentRating, inf.CommentsCount,
		inf.ForeignFollowersRatio, inf.ActivityScore, inf.PreferredMode, inf.PriceKRW, inf.Tags, inf.Active,
		inf.PostCount, inf.ProfileText, inf.ProfileImageURL, inf.CreatedBy,
	).Scan(&inf.ID, &inf.CreatedAt, &inf.UpdatedAt)
}

func (r *InfluencerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+influencerColumns+` FROM influencers WHERE id = $1`, id)
	return scanInfluencerRow(row)
}

// GetByPlatformSNSID resolves an influencer by its natural key.
func (r *InfluencerRepo) GetByPlatformSNSID(ctx context.Context, platform, snsID string) (*models.Influencer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+influencerColumns+` FROM influencers WHERE platform = $1 AND sns_id = $2
	`, platform, snsID)
	return scanInfluencerRow(row)
}

type InfluencerFilter struct {
	Platform *string
	Category *string
	Search   *string
	Limit    int
	Offset   int
}

func (f InfluencerFilter) build() *whereBuilder {
	b := &whereBuilder{}
	if v := NormalizeFilter(f.Platform); v != nil {
		b.Add("platform = $%d", *v)
	}
	if v := NormalizeFilter(f.Category); v != nil {
		b.Add("content_category = $%d", *v)
	}
	if v := NormalizeFilter(f.Search); v != nil {
		b.AddSearch(*v, "influencer_name", "sns_id", "tags")
	}
	return b
}

func (r *InfluencerRepo) ListPage(ctx context.Context, f InfluencerFilter) ([]models.Influencer, int, error) {
	b := f.build()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM influencers`+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	frag, args := b.Page("created_at DESC", f.Limit, f.Offset)
	rows, err := r.pool.Query(ctx, `SELECT `+influencerColumns+` FROM influencers`+b.Where()+frag, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var influencers []models.Influencer
	for rows.Next() {
		inf, err := scanInfluencer(rows)
		if err != nil {
			return nil, 0, err
		}
		influencers = append(influencers, *inf)
	}
	return influencers, total, nil
}

func (r *InfluencerRepo) Update(ctx context.Context, inf *models.Influencer, ownerID uuid.UUID) error {
	return r.pool.QueryRow(ctx, `
		UPDATE influencers SET platform = $1, content_category = $2, influencer_name = $3, sns_id = $4,
		       sns_url = $5, contact_method = $6, followers_count = $7, phone_number = $8,
		       kakao_channel_id = $9, email = $10, shipping_address = $11, interested_products = $12,
		       owner_comment = $13, manager_rating = $14, content_rating = $15, comments_count = $16,
		       foreign_followers_ratio = $17, activity_score = $18, preferred_mode = $19, price_krw = $20,
		       tags = $21, active = $22, post_count = $23, profile_text = $24, profile_image_url = $25,
		       updated_at = now()
		WHERE id = $26 AND created_by = $27
		RETURNING updated_at
	`, inf.Platform, inf.ContentCategory, inf.InfluencerName, inf.SNSID, inf.SNSURL, inf.ContactMethod,
		inf.FollowersCount, inf.PhoneNumber, inf.KakaoChannelID, inf.Email, inf.ShippingAddress,
		inf.InterestedProducts, inf.OwnerComment, inf.ManagerRating, inf.ContentRating, inf.CommentsCount,
		inf.ForeignFollowersRatio, inf.ActivityScore, inf.PreferredMode, inf.PriceKRW, inf.Tags, inf.Active,
		inf.PostCount, inf.ProfileText, inf.ProfileImageURL, inf.ID, ownerID,
	).Scan(&inf.UpdatedAt)
}

func (r *InfluencerRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM influencers WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListFollowerCounts returns the follower count of every influencer owned
// by ownerID (nil when never crawled).
func (r *InfluencerRepo) ListFollowerCounts(ctx context.Context, ownerID uuid.UUID) ([]*int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT followers_count FROM influencers WHERE created_by = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*int64
	for rows.Next() {
		var c *int64
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, nil
}

func scanInfluencer(rows pgx.Rows) (*models.Influencer, error) {
	var inf models.Influencer
	err := rows.Scan(&inf.ID, &inf.Platform, &inf.ContentCategory, &inf.InfluencerName, &inf.SNSID,
		&inf.SNSURL, &inf.ContactMethod, &inf.FollowersCount, &inf.PhoneNumber, &inf.KakaoChannelID,
		&inf.Email, &inf.ShippingAddress, &inf.InterestedProducts, &inf.OwnerComment, &inf.ManagerRating,
		&inf.ContentRating, &inf.CommentsCount, &inf.ForeignFollowersRatio, &inf.ActivityScore,
		&inf.PreferredMode, &inf.PriceKRW, &inf.Tags, &inf.Active, &inf.PostCount, &inf.ProfileText,
		&inf.ProfileImageURL, &inf.CreatedBy, &inf.CreatedAt, &inf.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inf, nil
}

func scanInfluencerRow(row pgx.Row) (*models.Influencer, error) {
	var inf models.Influencer
	err := row.Scan(&inf.ID, &inf.Platform, &inf.ContentCategory, &inf.InfluencerName, &inf.SNSID,
		&inf.SNSURL, &inf.ContactMethod, &inf.FollowersCount, &inf.PhoneNumber, &inf.KakaoChannelID,
		&inf.Email, &inf.ShippingAddress, &inf.InterestedProducts, &inf.OwnerComment, &inf.ManagerRating,
		&inf.ContentRating, &inf.CommentsCount, &inf.ForeignFollowersRatio, &inf.ActivityScore,
		&inf.PreferredMode, &inf.PriceKRW, &inf.Tags, &inf.Active, &inf.PostCount, &inf.ProfileText,
		&inf.ProfileImageURL, &inf.CreatedBy, &inf.CreatedAt, &inf.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inf, nil
}
