package models

import (
	"time"

	"github.com/google/uuid"
)

type Content struct {
	ID              uuid.UUID  `json:"id"`
	ParticipationID uuid.UUID  `json:"participation_id"`
	ContentURL      string     `json:"content_url"`
	PostedAt        *time.Time `json:"posted_at,omitempty"`
	Caption         *string    `json:"caption,omitempty"`
	QualitativeNote *string    `json:"qualitative_note,omitempty"`
	Likes           *int64     `json:"likes,omitempty"`
	Comments        *int64     `json:"comments,omitempty"`
	Shares          *int64     `json:"shares,omitempty"`
	Views           *int64     `json:"views,omitempty"`
	Clicks          *int64     `json:"clicks,omitempty"`
	Conversions     *int64     `json:"conversions,omitempty"`
	CreatedBy       uuid.UUID  `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
