package models

import (
	"time"

	"github.com/google/uuid"
)

// Visit and contact events are immutable rows; they never get updated.

type ProfileVisit struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProfileID uuid.UUID  `gorm:"type:uuid;not null;index"`
	VisitorID *uuid.UUID `gorm:"type:uuid"`
	IP        string     `gorm:"type:varchar(45)"`
	UserAgent string     `gorm:"type:text"`
	VisitedAt time.Time  `gorm:"not null;index"`
	CreatedAt time.Time
}

type ProfileContact struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProfileID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	VisitorID    *uuid.UUID `gorm:"type:uuid"`
	ContactType  string     `gorm:"type:varchar(20);not null"`
	IP           string     `gorm:"type:varchar(45)"`
	IsRegistered bool       `gorm:"not null;default:false"`
	ContactedAt  time.Time  `gorm:"not null;index"`
	CreatedAt    time.Time
}
