package models

import (
	"time"

	"github.com/google/uuid"
)

// PointsMovement rows are append-only; no UpdatedAt or DeletedAt on purpose.
type PointsMovement struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AgencyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity      int       `gorm:"not null"`
	Type          string    `gorm:"type:varchar(20);not null"`
	Concept       string    `gorm:"type:text;not null"`
	BalanceBefore int       `gorm:"not null"`
	BalanceAfter  int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"index"`
}
