package models

import (
	"time"

	"github.com/google/uuid"
)

type VerificationRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AgencyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VerifiedAt    time.Time `gorm:"not null"`
	ChargedAmount float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Status        string    `gorm:"type:varchar(50);not null"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time
}

type VerificationPayment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	VerificationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProfileID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AgencyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount         float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Status         string    `gorm:"type:varchar(50);not null;index"`
	PaidAt         *time.Time
	ExternalRef    string `gorm:"type:varchar(255);index"`
	CreatedAt      time.Time
}
