package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeaturedPlacement struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProfileID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartsAt   time.Time  `gorm:"not null;index"`
	EndsAt     time.Time  `gorm:"not null;index"`
	Kind       string     `gorm:"type:varchar(50);not null"`
	AmountPaid float64    `gorm:"type:decimal(12,2);not null;default:0"`
	CouponID   *uuid.UUID `gorm:"type:uuid"`
	IsActive   bool       `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
