package models

import (
	"time"

	"github.com/google/uuid"
)

// Performance metric types
const (
	MetricTypeLikes       = "likes"
	MetricTypeComments    = "comments"
	MetricTypeShares      = "shares"
	MetricTypeViews       = "views"
	MetricTypeClicks      = "clicks"
	MetricTypeConversions = "conversions"
)

var AllMetricTypes = []string{
	MetricTypeLikes, MetricTypeComments, MetricTypeShares,
	MetricTypeViews, MetricTypeClicks, MetricTypeConversions,
}

func IsValidMetricType(t string) bool {
	for _, mt := range AllMetricTypes {
		if mt == t {
			return true
		}
	}
	return false
}

type PerformanceMetric struct {
	ID                    uuid.UUID  `json:"id"`
	ParticipationID       uuid.UUID  `json:"participation_id"`
	ContentLink           *string    `json:"content_link,omitempty"`
	MetricType            string     `json:"metric_type"`
	MetricValue           int64      `json:"metric_value"`
	QualitativeEvaluation *string    `json:"qualitative_evaluation,omitempty"`
	MeasurementDate       *time.Time `json:"measurement_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
