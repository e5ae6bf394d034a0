package models

import (
	"time"

	"github.com/google/uuid"
)

// Sample dispatch statuses for a campaign participation.
const (
	SampleStatusRequested = "requested"
	SampleStatusShipped   = "shipped"
	SampleStatusReceived  = "received"
	SampleStatusCompleted = "completed"
	SampleStatusCancelled = "cancelled"
)

var AllSampleStatuses = []string{
	SampleStatusRequested, SampleStatusShipped, SampleStatusReceived,
	SampleStatusCompleted, SampleStatusCancelled,
}

func IsValidSampleStatus(s string) bool {
	for _, ss := range AllSampleStatuses {
		if ss == s {
			return true
		}
	}
	return false
}

type Participation struct {
	ID                 uuid.UUID `json:"id"`
	CampaignID         uuid.UUID `json:"campaign_id"`
	InfluencerID       uuid.UUID `json:"influencer_id"`
	ManagerComment     *string   `json:"manager_comment,omitempty"`
	InfluencerRequests *string   `json:"influencer_requests,omitempty"`
	Memo               *string   `json:"memo,omitempty"`
	SampleStatus       string    `json:"sample_status"`
	InfluencerFeedback *string   `json:"influencer_feedback,omitempty"`
	ContentUploaded    bool      `json:"content_uploaded"`
	CostKRW            *float64  `json:"cost_krw,omitempty"`
	ContentLinks       []string  `json:"content_links,omitempty"`
	CreatedBy          uuid.UUID `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ParticipationDetail is a participation enriched with its campaign name and
// a summary of the influencer, for list views.
type ParticipationDetail struct {
	Participation
	CampaignName string  `json:"campaign_name"`
	Influencer   struct {
		InfluencerName *string `json:"influencer_name,omitempty"`
		SNSID          string  `json:"sns_id"`
		Platform       string  `json:"platform"`
		FollowersCount *int64  `json:"followers_count,omitempty"`
	} `json:"influencer"`
}
