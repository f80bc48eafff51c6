package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents verification record status
type VerificationStatus string

const (
	VerificationStatusApproved VerificationStatus = "approved"
)

// PaymentStatus represents verification payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// VerificationRecord certifies that an agency verified a profile
type VerificationRecord struct {
	ID            uuid.UUID          `json:"id"`
	AgencyID      uuid.UUID          `json:"agencyId"`
	ProfileID     uuid.UUID          `json:"profileId"`
	VerifiedAt    time.Time          `json:"verifiedAt"`
	ChargedAmount float64            `json:"chargedAmount"`
	Status        VerificationStatus `json:"status"`
	Notes         null.String        `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`

	// ProfileName is a display enrichment, never persisted
	ProfileName string `json:"profileName,omitempty"`
}

// VerificationPayment is the payment linked 1:1 to a verification record
type VerificationPayment struct {
	ID             uuid.UUID     `json:"id"`
	VerificationID uuid.UUID     `json:"verificationId"`
	ProfileID      uuid.UUID     `json:"profileId"`
	AgencyID       uuid.UUID     `json:"agencyId"`
	Amount         float64       `json:"amount"`
	Status         PaymentStatus `json:"status"`
	PaidAt         null.Time     `json:"paidAt,omitempty"`
	ExternalRef    null.String   `json:"externalRef,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// VerifyProfileInput represents input for a single verification
type VerifyProfileInput struct {
	ChargeAmount float64 `json:"chargeAmount" binding:"gte=0"`
	Notes        string  `json:"notes,omitempty"`
}

// VerifyBatchInput represents input for batch verification
type VerifyBatchInput struct {
	ProfileIDs []uuid.UUID `json:"profileIds" binding:"required"`
	UnitCharge float64     `json:"unitCharge" binding:"gte=0"`
	Notes      string      `json:"notes,omitempty"`
}

// CommissionTier is one step of the verification-volume escalation
type CommissionTier struct {
	MinVerified       int
	CommissionPercent float64
	DiscountPercent   float64
}

// CommissionTiers is ordered highest volume first. An agency's commission
// only moves to a tier's percentage when it is strictly greater than the
// current one.
var CommissionTiers = []CommissionTier{
	{MinVerified: 50, CommissionPercent: 12.00, DiscountPercent: 25.00},
	{MinVerified: 25, CommissionPercent: 10.00, DiscountPercent: 20.00},
	{MinVerified: 10, CommissionPercent: 8.00, DiscountPercent: 15.00},
}

// TierForVerifiedCount returns the tier matching a verified-profile count,
// or nil when no tier applies.
func TierForVerifiedCount(count int) *CommissionTier {
	for i := range CommissionTiers {
		if count >= CommissionTiers[i].MinVerified {
			return &CommissionTiers[i]
		}
	}
	return nil
}

// BatchDiscountFactor returns the unit-price discount for a batch size
func BatchDiscountFactor(batchSize int) float64 {
	switch {
	case batchSize >= 10:
		return 0.25
	case batchSize >= 5:
		return 0.15
	case batchSize >= 3:
		return 0.10
	default:
		return 0
	}
}
