package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Agency struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text"`
	LogoURL           string    `gorm:"type:text"`
	Website           string    `gorm:"type:varchar(255)"`
	Address           string    `gorm:"type:text"`
	City              string    `gorm:"type:varchar(100)"`
	Country           string    `gorm:"type:varchar(100)"`
	IsVerified        bool      `gorm:"not null;default:false;index"`
	VerifiedAt        *time.Time
	CommissionPercent *float64 `gorm:"type:decimal(5,2)"`
	PointsAccumulated int      `gorm:"not null;default:0"`
	PointsSpent       int      `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

type AgencyRegistrationRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;index"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	LogoURL      string    `gorm:"type:text"`
	Website      string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:text"`
	City         string    `gorm:"type:varchar(100)"`
	Country      string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	Motive       string    `gorm:"type:text"`
	SubmittedAt  time.Time `gorm:"not null"`
	RespondedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
