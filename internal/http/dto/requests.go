package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateCampaignRequest struct {
	CampaignName         string     `json:"campaign_name"`
	CampaignDescription  *string    `json:"campaign_description"`
	CampaignType         string     `json:"campaign_type"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Status               string     `json:"status"`
	CampaignInstructions *string    `json:"campaign_instructions"`
	Tags                 *string    `json:"tags"`
}

// UpdateCampaignRequest fields are pointers so an absent field is
// distinguishable from an explicit zero; absent fields are left as-is.
type UpdateCampaignRequest struct {
	CampaignName         *string    `json:"campaign_name"`
	CampaignDescription  *string    `json:"campaign_description"`
	CampaignType         *string    `json:"campaign_type"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Status               *string    `json:"status"`
	CampaignInstructions *string    `json:"campaign_instructions"`
	Tags                 *string    `json:"tags"`
}

type CreateInfluencerRequest struct {
	Platform              string   `json:"platform"`
	ContentCategory       string   `json:"content_category"`
	InfluencerName        *string  `json:"influencer_name"`
	SNSID                 string   `json:"sns_id"`
	SNSURL                string   `json:"sns_url"`
	ContactMethod         string   `json:"contact_method"`
	FollowersCount        *int64   `json:"followers_count"`
	PhoneNumber           *string  `json:"phone_number"`
	KakaoChannelID        *string  `json:"kakao_channel_id"`
	Email                 *string  `json:"email"`
	ShippingAddress       *string  `json:"shipping_address"`
	InterestedProducts    *string  `json:"interested_products"`
	OwnerComment          *string  `json:"owner_comment"`
	ManagerRating         *int     `json:"manager_rating"`
	ContentRating         *int     `json:"content_rating"`
	CommentsCount         *int64   `json:"comments_count"`
	ForeignFollowersRatio *float64 `json:"foreign_followers_ratio"`
	ActivityScore         *float64 `json:"activity_score"`
	PreferredMode         *string  `json:"preferred_mode"`
	PriceKRW              *float64 `json:"price_krw"`
	Tags                  *string  `json:"tags"`
	Active                *bool    `json:"active"`
	PostCount             *int64   `json:"post_count"`
	ProfileText           *string  `json:"profile_text"`
	ProfileImageURL       *string  `json:"profile_image_url"`
}

type UpdateInfluencerRequest struct {
	Platform              *string  `json:"platform"`
	ContentCategory       *string  `json:"content_category"`
	InfluencerName        *string  `json:"influencer_name"`
	SNSID                 *string  `json:"sns_id"`
	SNSURL                *string  `json:"sns_url"`
	ContactMethod         *string  `json:"contact_method"`
	FollowersCount        *int64   `json:"followers_count"`
	PhoneNumber           *string  `json:"phone_number"`
	KakaoChannelID        *string  `json:"kakao_channel_id"`
	Email                 *string  `json:"email"`
	ShippingAddress       *string  `json:"shipping_address"`
	InterestedProducts    *string  `json:"interested_products"`
	OwnerComment          *string  `json:"owner_comment"`
	ManagerRating         *int     `json:"manager_rating"`
	ContentRating         *int     `json:"content_rating"`
	CommentsCount         *int64   `json:"comments_count"`
	ForeignFollowersRatio *float64 `json:"foreign_followers_ratio"`
	ActivityScore         *float64 `json:"activity_score"`
	PreferredMode         *string  `json:"preferred_mode"`
	PriceKRW              *float64 `json:"price_krw"`
	Tags                  *string  `json:"tags"`
	Active                *bool    `json:"active"`
	PostCount             *int64   `json:"post_count"`
	ProfileText           *string  `json:"profile_text"`
	ProfileImageURL       *string  `json:"profile_image_url"`
}

type CreateParticipationRequest struct {
	CampaignID         uuid.UUID `json:"campaign_id"`
	InfluencerID       uuid.UUID `json:"influencer_id"`
	ManagerComment     *string   `json:"manager_comment"`
	InfluencerRequests *string   `json:"influencer_requests"`
	Memo               *string   `json:"memo"`
	SampleStatus       string    `json:"sample_status"`
	InfluencerFeedback *string   `json:"influencer_feedback"`
	ContentUploaded    bool      `json:"content_uploaded"`
	CostKRW            *float64  `json:"cost_krw"`
	ContentLinks       []string  `json:"content_links"`
}

type UpdateParticipationRequest struct {
	ManagerComment     *string  `json:"manager_comment"`
	InfluencerRequests *string  `json:"influencer_requests"`
	Memo               *string  `json:"memo"`
	SampleStatus       *string  `json:"sample_status"`
	InfluencerFeedback *string  `json:"influencer_feedback"`
	ContentUploaded    *bool    `json:"content_uploaded"`
	CostKRW            *float64 `json:"cost_krw"`
	ContentLinks       []string `json:"content_links"`
}

type CreateContentRequest struct {
	ParticipationID uuid.UUID  `json:"participation_id"`
	ContentURL      string     `json:"content_url"`
	PostedAt        *time.Time `json:"posted_at"`
	Caption         *string    `json:"caption"`
	QualitativeNote *string    `json:"qualitative_note"`
	Likes           *int64     `json:"likes"`
	Comments        *int64     `json:"comments"`
	Shares          *int64     `json:"shares"`
	Views           *int64     `json:"views"`
	Clicks          *int64     `json:"clicks"`
	Conversions     *int64     `json:"conversions"`
}

type UpdateContentRequest struct {
	ContentURL      *string    `json:"content_url"`
	PostedAt        *time.Time `json:"posted_at"`
	Caption         *string    `json:"caption"`
	QualitativeNote *string    `json:"qualitative_note"`
	Likes           *int64     `json:"likes"`
	Comments        *int64     `json:"comments"`
	Shares          *int64     `json:"shares"`
	Views           *int64     `json:"views"`
	Clicks          *int64     `json:"clicks"`
	Conversions     *int64     `json:"conversions"`
}

type CreateMetricRequest struct {
	ParticipationID       uuid.UUID  `json:"participation_id"`
	ContentLink           *string    `json:"content_link"`
	MetricType            string     `json:"metric_type"`
	MetricValue           int64      `json:"metric_value"`
	QualitativeEvaluation *string    `json:"qualitative_evaluation"`
	MeasurementDate       *time.Time `json:"measurement_date"`
}

type UpdateMetricRequest struct {
	ContentLink           *string    `json:"content_link"`
	MetricType            *string    `json:"metric_type"`
	MetricValue           *int64     `json:"metric_value"`
	QualitativeEvaluation *string    `json:"qualitative_evaluation"`
	MeasurementDate       *time.Time `json:"measurement_date"`
}

// AnalysisActionRequest is the action-dispatch body of POST /analysis.
// Data is decoded per action.
type AnalysisActionRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type CheckRecentAnalysisData struct {
	InfluencerID uuid.UUID `json:"influencer_id"`
	Platform     string    `json:"platform"`
}

// SaveAnalysisData mirrors the shape produced by the analysis pipeline:
// profile numbers from crawling, judgments from the model run.
type SaveAnalysisData struct {
	CrawlingData struct {
		InfluencerID uuid.UUID `json:"influencer_id"`
		Platform     string    `json:"platform"`
		Name         string    `json:"name"`
		Alias        string    `json:"alias"`
		Followers    int64     `json:"followers"`
		Followings   int64     `json:"followings"`
		PostsCount   int64     `json:"posts_count"`
	} `json:"crawling_data"`
	AnalysisResult struct {
		Category            *string  `json:"category"`
		Tags                []string `json:"tags"`
		FollowNetwork       any      `json:"follow_network_analysis"`
		CommentAuthenticity any      `json:"comment_authenticity_analysis"`
		ContentAnalysis     any      `json:"content_analysis"`
		Evaluation          any      `json:"evaluation"`
		Insights            any      `json:"insights"`
		Summary             *string  `json:"summary"`
		Recommendation      string   `json:"recommendation"`
		Notes               any      `json:"notes"`
		OverallScore        *float64 `json:"overall_score"`
	} `json:"analysis_result"`
}

type GetAnalysisDataFilters struct {
	SearchTerm           *string `json:"search_term"`
	CategoryFilter       *string `json:"category_filter"`
	RecommendationFilter *string `json:"recommendation_filter"`
	Limit                *int    `json:"limit"`
	Offset               *int    `json:"offset"`
}

type CampaignAnalysisData struct {
	CampaignID     uuid.UUID `json:"campaign_id"`
	AnalysisResult any       `json:"analysis_result"`
}
