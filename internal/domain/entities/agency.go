package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BaseCommissionPercent is assigned when an agency is first verified
const BaseCommissionPercent = 5.00

// Agency represents an organization that manages and verifies profiles
type Agency struct {
	ID                uuid.UUID    `json:"id"`
	UserID            uuid.UUID    `json:"userId"`
	Name              string       `json:"name"`
	Description       null.String  `json:"description,omitempty"`
	LogoURL           null.String  `json:"logoUrl,omitempty"`
	Website           null.String  `json:"website,omitempty"`
	Address           null.String  `json:"address,omitempty"`
	City              null.String  `json:"city,omitempty"`
	Country           null.String  `json:"country,omitempty"`
	IsVerified        bool         `json:"isVerified"`
	VerifiedAt        null.Time    `json:"verifiedAt,omitempty"`
	CommissionPercent null.Float64 `json:"commissionPercent,omitempty"`
	PointsAccumulated int          `json:"pointsAccumulated"`
	PointsSpent       int          `json:"pointsSpent"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	DeletedAt         null.Time    `json:"-"`
}

// AvailablePoints returns the spendable balance
func (a *Agency) AvailablePoints() int {
	return a.PointsAccumulated - a.PointsSpent
}

// AgencyDashboard aggregates the management counters for an agency
type AgencyDashboard struct {
	TotalProfiles       int64            `json:"totalProfiles"`
	VerifiedProfiles    int64            `json:"verifiedProfiles"`
	PendingVerification int64            `json:"pendingVerification"`
	PendingRequests     int64            `json:"pendingRequests"`
	ActivePlacements    int64            `json:"activePlacements"`
	PointsAccumulated   int              `json:"pointsAccumulated"`
	TopProfiles         []ProfileSummary `json:"topProfiles"`
}

// AgencyCommissionReport summarizes verification commissions in a window
type AgencyCommissionReport struct {
	AgencyID          uuid.UUID `json:"agencyId"`
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	Verifications     int64     `json:"verifications"`
	CommissionPercent float64   `json:"commissionPercent"`
	TotalCharged      float64   `json:"totalCharged"`
	CommissionTotal   float64   `json:"commissionTotal"`
}
