package entities

import (
	"time"

	"github.com/google/uuid"
)

// ContactType represents the channel used to contact a profile
type ContactType string

const (
	ContactTypePhone    ContactType = "phone"
	ContactTypeWhatsapp ContactType = "whatsapp"
	ContactTypeEmail    ContactType = "email"
)

// Valid reports whether the contact type is one of the known channels
func (t ContactType) Valid() bool {
	switch t {
	case ContactTypePhone, ContactTypeWhatsapp, ContactTypeEmail:
		return true
	}
	return false
}

// Activity score weights over the rolling 30-day window
const (
	VisitWeight       = 1
	ContactWeight     = 5
	ScoreWindowDays   = 30
)

// ProfileVisit is one immutable visit event
type ProfileVisit struct {
	ID        uuid.UUID     `json:"id"`
	ProfileID uuid.UUID     `json:"profileId"`
	VisitorID uuid.NullUUID `json:"visitorId,omitempty"`
	IP        string        `json:"ip"`
	UserAgent string        `json:"userAgent"`
	VisitedAt time.Time     `json:"visitedAt"`
}

// ProfileContact is one immutable contact event
type ProfileContact struct {
	ID           uuid.UUID     `json:"id"`
	ProfileID    uuid.UUID     `json:"profileId"`
	VisitorID    uuid.NullUUID `json:"visitorId,omitempty"`
	ContactType  ContactType   `json:"contactType"`
	IP           string        `json:"ip"`
	IsRegistered bool          `json:"isRegistered"`
	ContactedAt  time.Time     `json:"contactedAt"`
}

// RecordContactInput represents input for recording a contact event
type RecordContactInput struct {
	ContactType string `json:"contactType" binding:"required"`
}
