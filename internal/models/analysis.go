package models

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation grades for an influencer analysis.
const (
	RecommendationHigh    = "recommended"
	RecommendationNeutral = "neutral"
	RecommendationLow     = "not_recommended"
)

var AllRecommendations = []string{RecommendationHigh, RecommendationNeutral, RecommendationLow}

func IsValidRecommendation(r string) bool {
	for _, ar := range AllRecommendations {
		if ar == r {
			return true
		}
	}
	return false
}

// InfluencerAnalysis is one AI analysis run for an influencer alias on a
// given day. (influencer_id, alias, analyzed_on) is the natural key; a
// second save on the same day updates in place.
type InfluencerAnalysis struct {
	ID                  uuid.UUID `json:"id"`
	InfluencerID        uuid.UUID `json:"influencer_id"`
	Platform            string    `json:"platform"`
	Name                string    `json:"name"`
	Alias               string    `json:"alias"`
	Followers           int64     `json:"followers"`
	Followings          int64     `json:"followings"`
	PostsCount          int64     `json:"posts_count"`
	Category            *string   `json:"category,omitempty"`
	Tags                []string  `json:"tags,omitempty"`
	FollowNetwork       any       `json:"follow_network_analysis,omitempty"`
	CommentAuthenticity any       `json:"comment_authenticity_analysis,omitempty"`
	ContentAnalysis     any       `json:"content_analysis,omitempty"`
	Evaluation          any       `json:"evaluation,omitempty"`
	Insights            any       `json:"insights,omitempty"`
	Summary             *string   `json:"summary,omitempty"`
	Recommendation      string    `json:"recommendation"`
	Notes               any       `json:"notes,omitempty"`
	OverallScore        *float64  `json:"overall_score,omitempty"`
	Source              string    `json:"source"`
	AnalyzedAt          time.Time `json:"analyzed_at"`
	AnalyzedOn          time.Time `json:"analyzed_on"`
}

// CampaignAnalysis holds the opaque analysis payload for a campaign;
// one row per campaign.
type CampaignAnalysis struct {
	ID             uuid.UUID `json:"id"`
	CampaignID     uuid.UUID `json:"campaign_id"`
	AnalysisResult any       `json:"analysis_result"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}
