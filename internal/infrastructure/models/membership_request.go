package models

import (
	"time"

	"github.com/google/uuid"
)

type MembershipRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AgencyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	State       string    `gorm:"type:varchar(50);not null;index"`
	SubmittedAt time.Time `gorm:"not null;index"`
	RespondedAt *time.Time
	Motive      string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
