package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kchsung/connecta-manager/internal/models"
)

type AnalysisRepo struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepo(pool *pgxpool.Pool) *AnalysisRepo {
	return &AnalysisRepo{pool: pool}
}

// Upsert writes an influencer analysis keyed by (influencer_id, alias,
// analyzed_on). A second save for the same key on the same day updates in
// place; the unique index makes the write race-free.
func (r *AnalysisRepo) Upsert(ctx context.Context, a *models.InfluencerAnalysis) error {
	followNetwork, err := json.Marshal(a.FollowNetwork)
	if err != nil {
		return err
	}
	commentAuth, err := json.Marshal(a.CommentAuthenticity)
	if err != nil {
		return err
	}
	contentAnalysis, err := json.Marshal(a.ContentAnalysis)
	if err != nil {
		return err
	}
	evaluation, err := json.Marshal(a.Evaluation)
	if err != nil {
		return err
	}
	insights, err := json.Marshal(a.Insights)
	if err != nil {
		return err
	}
	notes, err := json.Marshal(a.Notes)
	if err != nil {
		return err
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO influencer_analyses (influencer_id, platform, name, alias, followers, followings,
		                                 posts_count, category, tags, follow_network, comment_authenticity,
		                                 content_analysis, evaluation, insights, summary, recommendation,
		                                 notes, overall_score, source, analyzed_at, analyzed_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (influencer_id, alias, analyzed_on) DO UPDATE SET
			platform = EXCLUDED.platform,
			name = EXCLUDED.name,
			followers = EXCLUDED.followers,
			followings = EXCLUDED.followings,
			posts_count = EXCLUDED.posts_count,
			category = EXCLUDED.category,
			tags = EXCLUDED.tags,
			follow_network = EXCLUDED.follow_network,
			comment_authenticity = EXCLUDED.comment_authenticity,
			content_analysis = EXCLUDED.content_analysis,
			evaluation = EXCLUDED.evaluation,
			insights = EXCLUDED.insights,
			summary = EXCLUDED.summary,
			recommendation = EXCLUDED.recommendation,
			notes = EXCLUDED.notes,
			overall_score = EXCLUDED.overall_score,
			source = EXCLUDED.source,
			analyzed_at = EXCLUDED.analyzed_at
		RETURNING id, analyzed_at
	`, a.InfluencerID, a.Platform, a.Name, a.Alias, a.Followers, a.Followings,
		a.PostsCount, a.Category, a.Tags, followNetwork, commentAuth,
		contentAnalysis, evaluation, insights, a.Summary, a.Recommendation,
		notes, a.OverallScore, a.Source, a.AnalyzedAt, a.AnalyzedOn,
	).Scan(&a.ID, &a.AnalyzedAt)
}

type AnalysisFilter struct {
	Search         *string
	Category       *string
	Recommendation *string
	Limit          int
	Offset         int
}

func (f AnalysisFilter) build() *whereBuilder {
	b := &whereBuilder{}
	if v := NormalizeFilter(f.Search); v != nil {
		// name matches partially; tags must contain the exact term
		i := len(b.args) + 1
		b.clauses = append(b.clauses, fmt.Sprintf("(name ILIKE $%d OR $%d = ANY(tags))", i, i+1))
		b.args = append(b.args, "%"+*v+"%", *v)
	}
	if v := NormalizeFilter(f.Category); v != nil {
		b.Add("category = $%d", *v)
	}
	if v := NormalizeFilter(f.Recommendation); v != nil {
		b.Add("recommendation = $%d", *v)
	}
	return b
}

func (r *AnalysisRepo) ListPage(ctx context.Context, f AnalysisFilter) ([]models.InfluencerAnalysis, int, error) {
	b := f.build()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM influencer_analyses`+b.Where(), b.Args()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	frag, args := b.Page("analyzed_at DESC", f.Limit, f.Offset)
	rows, err := r.pool.Query(ctx, `
		SELECT id, influencer_id, platform, name, alias, followers, followings, posts_count,
		       category, tags, follow_network, comment_authenticity, content_analysis,
		       evaluation, insights, summary, recommendation, notes, overall_score, source,
		       analyzed_at, analyzed_on
		FROM influencer_analyses`+b.Where()+frag, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	analyses, err := scanAnalyses(rows)
	if err != nil {
		return nil, 0, err
	}
	return analyses, total, nil
}

// HasRecent reports whether the influencer was analyzed on this platform
// at or after since.
func (r *AnalysisRepo) HasRecent(ctx context.Context, influencerID uuid.UUID, platform string, since time.Time) (bool, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM influencer_analyses
		WHERE influencer_id = $1 AND platform = $2 AND analyzed_at >= $3
	`, influencerID, platform, since).Scan(&count)
	return count > 0, err
}

// StatRow is the projection consumed by the analysis statistics reduction.
type StatRow struct {
	Category       *string
	Recommendation *string
	OverallScore   *float64
	AnalyzedAt     time.Time
}

func (r *AnalysisRepo) ListStatRows(ctx context.Context) ([]StatRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, recommendation, overall_score, analyzed_at FROM influencer_analyses
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []StatRow
	for rows.Next() {
		var sr StatRow
		if err := rows.Scan(&sr.Category, &sr.Recommendation, &sr.OverallScore, &sr.AnalyzedAt); err != nil {
			return nil, err
		}
		result = append(result, sr)
	}
	return result, nil
}

// GetCampaignAnalysis returns the analysis for a campaign, pgx.ErrNoRows
// when none has been saved yet.
func (r *AnalysisRepo) GetCampaignAnalysis(ctx context.Context, campaignID uuid.UUID) (*models.CampaignAnalysis, error) {
	var ca models.CampaignAnalysis
	var resultBytes []byte
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, analysis_result, analyzed_at
		FROM campaign_analyses WHERE campaign_id = $1
	`, campaignID).Scan(&ca.ID, &ca.CampaignID, &resultBytes, &ca.AnalyzedAt)
	if err != nil {
		return nil, err
	}
	if err := decodeDoc(resultBytes, &ca.AnalysisResult); err != nil {
		return nil, err
	}
	return &ca, nil
}

// UpsertCampaignAnalysis writes the one analysis row a campaign may have.
func (r *AnalysisRepo) UpsertCampaignAnalysis(ctx context.Context, ca *models.CampaignAnalysis) error {
	resultBytes, err := json.Marshal(ca.AnalysisResult)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaign_analyses (campaign_id, analysis_result, analyzed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (campaign_id) DO UPDATE SET
			analysis_result = EXCLUDED.analysis_result,
			analyzed_at = EXCLUDED.analyzed_at
		RETURNING id, analyzed_at
	`, ca.CampaignID, resultBytes, ca.AnalyzedAt).Scan(&ca.ID, &ca.AnalyzedAt)
}

// decodeDoc unmarshals a jsonb column into dst. A NULL column arrives as
// an empty slice and leaves dst nil.
func decodeDoc(raw []byte, dst *any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func scanAnalyses(rows pgx.Rows) ([]models.InfluencerAnalysis, error) {
	var analyses []models.InfluencerAnalysis
	for rows.Next() {
		var a models.InfluencerAnalysis
		var followNetwork, commentAuth, contentAnalysis, evaluation, insights, notes []byte
		if err := rows.Scan(&a.ID, &a.InfluencerID, &a.Platform, &a.Name, &a.Alias, &a.Followers,
			&a.Followings, &a.PostsCount, &a.Category, &a.Tags, &followNetwork, &commentAuth,
			&contentAnalysis, &evaluation, &insights, &a.Summary, &a.Recommendation, &notes,
			&a.OverallScore, &a.Source, &a.AnalyzedAt, &a.AnalyzedOn); err != nil {
			return nil, err
		}
		docs := []struct {
			raw []byte
			dst *any
		}{
			{followNetwork, &a.FollowNetwork},
			{commentAuth, &a.CommentAuthenticity},
			{contentAnalysis, &a.ContentAnalysis},
			{evaluation, &a.Evaluation},
			{insights, &a.Insights},
			{notes, &a.Notes},
		}
		for _, d := range docs {
			if err := decodeDoc(d.raw, d.dst); err != nil {
				return nil, err
			}
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}
