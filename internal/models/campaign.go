package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign types
const (
	CampaignTypeSeeding   = "seeding"
	CampaignTypePromotion = "promotion"
	CampaignTypeSales     = "sales"
)

var AllCampaignTypes = []string{CampaignTypeSeeding, CampaignTypePromotion, CampaignTypeSales}

func IsValidCampaignType(t string) bool {
	for _, ct := range AllCampaignTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Campaign lifecycle statuses
const (
	CampaignStatusPlanned   = "planned"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

var AllCampaignStatuses = []string{
	CampaignStatusPlanned, CampaignStatusActive, CampaignStatusPaused,
	CampaignStatusCompleted, CampaignStatusCancelled,
}

func IsValidCampaignStatus(s string) bool {
	for _, cs := range AllCampaignStatuses {
		if cs == s {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID                   uuid.UUID  `json:"id"`
	CampaignName         string     `json:"campaign_name"`
	CampaignDescription  *string    `json:"campaign_description,omitempty"`
	CampaignType         string     `json:"campaign_type"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	Status               string     `json:"status"`
	CampaignInstructions *string    `json:"campaign_instructions,omitempty"`
	Tags                 *string    `json:"tags,omitempty"`
	CreatedBy            uuid.UUID  `json:"created_by"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
