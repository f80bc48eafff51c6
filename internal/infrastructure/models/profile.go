package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	AgencyID      *uuid.UUID `gorm:"type:uuid;index"`
	ProfileName   string     `gorm:"type:varchar(100);not null"`
	Description   string     `gorm:"type:text"`
	City          string     `gorm:"type:varchar(100);index"`
	Country       string     `gorm:"type:varchar(100)"`
	Tariff        float64    `gorm:"type:decimal(12,2);not null"`
	Currency      string     `gorm:"type:varchar(3);not null"`
	Categories    string     `gorm:"type:text"` // comma-separated category slugs
	IsVerified    bool       `gorm:"not null;default:false;index"`
	VerifiedAt    *time.Time
	IsAvailable   bool  `gorm:"not null;default:true;index"`
	ActivityScore int64 `gorm:"not null;default:0;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type ProfilePhoto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index"`
	URL         string    `gorm:"type:text;not null"`
	IsPrincipal bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
