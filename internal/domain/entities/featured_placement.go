package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// FeaturedPlacement is a paid, time-windowed promotional slot elevating a
// profile in the featured discovery dimension. The placement is live while
// active and now is inside [StartsAt, EndsAt).
type FeaturedPlacement struct {
	ID         uuid.UUID   `json:"id"`
	ProfileID  uuid.UUID   `json:"profileId"`
	StartsAt   time.Time   `json:"startsAt"`
	EndsAt     time.Time   `json:"endsAt"`
	Kind       string      `json:"kind"`
	AmountPaid float64     `json:"amountPaid"`
	CouponID   uuid.NullUUID `json:"couponId,omitempty"`
	IsActive   bool        `json:"isActive"`
	CreatedAt  time.Time   `json:"createdAt"`
	DeletedAt  null.Time   `json:"-"`
}

// CreatePlacementInput represents input for creating a featured placement
type CreatePlacementInput struct {
	ProfileID  uuid.UUID `json:"profileId" binding:"required"`
	StartsAt   time.Time `json:"startsAt" binding:"required"`
	EndsAt     time.Time `json:"endsAt" binding:"required"`
	Kind       string    `json:"kind" binding:"required"`
	AmountPaid float64   `json:"amountPaid" binding:"gte=0"`
}
