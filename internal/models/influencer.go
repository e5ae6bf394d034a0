package models

import (
	"time"

	"github.com/google/uuid"
)

// SNS platforms
const (
	PlatformInstagram = "instagram"
	PlatformYoutube   = "youtube"
	PlatformTiktok    = "tiktok"
	PlatformTwitter   = "twitter"
)

var AllPlatforms = []string{PlatformInstagram, PlatformYoutube, PlatformTiktok, PlatformTwitter}

func IsValidPlatform(p string) bool {
	for _, ap := range AllPlatforms {
		if ap == p {
			return true
		}
	}
	return false
}

// Contact methods
const (
	ContactMethodDM    = "dm"
	ContactMethodEmail = "email"
	ContactMethodPhone = "phone"
	ContactMethodKakao = "kakao"
	ContactMethodForm  = "form"
	ContactMethodOther = "other"
)

var AllContactMethods = []string{
	ContactMethodDM, ContactMethodEmail, ContactMethodPhone,
	ContactMethodKakao, ContactMethodForm, ContactMethodOther,
}

func IsValidContactMethod(m string) bool {
	for _, cm := range AllContactMethods {
		if cm == m {
			return true
		}
	}
	return false
}

type Influencer struct {
	ID                    uuid.UUID `json:"id"`
	Platform              string    `json:"platform"`
	ContentCategory       string    `json:"content_category"`
	InfluencerName        *string   `json:"influencer_name,omitempty"`
	SNSID                 string    `json:"sns_id"`
	SNSURL                string    `json:"sns_url"`
	ContactMethod         string    `json:"contact_method"`
	FollowersCount        *int64    `json:"followers_count,omitempty"`
	PhoneNumber           *string   `json:"phone_number,omitempty"`
	KakaoChannelID        *string   `json:"kakao_channel_id,omitempty"`
	Email                 *string   `json:"email,omitempty"`
	ShippingAddress       *string   `json:"shipping_address,omitempty"`
	InterestedProducts    *string   `json:"interested_products,omitempty"`
	OwnerComment          *string   `json:"owner_comment,omitempty"`
	ManagerRating         *int      `json:"manager_rating,omitempty"`  // 1-5
	ContentRating         *int      `json:"content_rating,omitempty"`  // 1-5
	CommentsCount         *int64    `json:"comments_count,omitempty"`
	ForeignFollowersRatio *float64  `json:"foreign_followers_ratio,omitempty"` // 0-100
	ActivityScore         *float64  `json:"activity_score,omitempty"`
	PreferredMode         *string   `json:"preferred_mode,omitempty"` // seeding/promotion/sales
	PriceKRW              *float64  `json:"price_krw,omitempty"`
	Tags                  *string   `json:"tags,omitempty"`
	Active                bool      `json:"active"`
	PostCount             *int64    `json:"post_count,omitempty"`
	ProfileText           *string   `json:"profile_text,omitempty"`
	ProfileImageURL       *string   `json:"profile_image_url,omitempty"`
	CreatedBy             uuid.UUID `json:"created_by"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
