package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Profile represents a listed profile available for discovery
type Profile struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"userId"`
	AgencyID      uuid.NullUUID `json:"agencyId,omitempty"`
	ProfileName   string      `json:"profileName"`
	Description   null.String `json:"description,omitempty"`
	City          null.String `json:"city,omitempty"`
	Country       null.String `json:"country,omitempty"`
	Tariff        float64     `json:"tariff"`
	Currency      string      `json:"currency"`
	Categories    []string    `json:"categories,omitempty"`
	IsVerified    bool        `json:"isVerified"`
	VerifiedAt    null.Time   `json:"verifiedAt,omitempty"`
	IsAvailable   bool        `json:"isAvailable"`
	ActivityScore int64       `json:"activityScore"`
	Photos        []ProfilePhoto `json:"photos,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	DeletedAt     null.Time   `json:"-"`
}

// ProfilePhoto represents a photo attached to a profile. At most one
// photo per profile is marked principal.
type ProfilePhoto struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profileId"`
	URL         string    `json:"url"`
	IsPrincipal bool      `json:"isPrincipal"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProfileSummary is the discovery-listing projection of a profile
type ProfileSummary struct {
	ID            uuid.UUID   `json:"id"`
	ProfileName   string      `json:"profileName"`
	City          null.String `json:"city,omitempty"`
	Tariff        float64     `json:"tariff"`
	Currency      string      `json:"currency"`
	IsVerified    bool        `json:"isVerified"`
	ActivityScore int64       `json:"activityScore"`
	PrincipalPhotoURL null.String `json:"principalPhotoUrl,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// CreateProfileInput represents input for profile registration
type CreateProfileInput struct {
	ProfileName string   `json:"profileName" binding:"required,min=2,max=100"`
	Description string   `json:"description,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Tariff      float64  `json:"tariff" binding:"required,gt=0"`
	Currency    string   `json:"currency" binding:"required,len=3"`
	Categories  []string `json:"categories,omitempty"`
}

// ProfileStats aggregates engagement data for one profile
type ProfileStats struct {
	ProfileID      uuid.UUID        `json:"profileId"`
	ProfileName    string           `json:"profileName"`
	TotalVisits    int64            `json:"totalVisits"`
	TotalContacts  int64            `json:"totalContacts"`
	ActivityScore  int64            `json:"activityScore"`
	ContactsByType map[string]int64 `json:"contactsByType"`
	VisitsByDay    []VisitsOnDay    `json:"visitsByDay"`
}

// VisitsOnDay is one bucket of the per-day visit series
type VisitsOnDay struct {
	Day    time.Time `json:"day"`
	Visits int64     `json:"visits"`
}
