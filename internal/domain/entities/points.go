package entities

import (
	"time"

	"github.com/google/uuid"
)

// PointsMovementType represents the direction of a ledger movement
type PointsMovementType string

const (
	PointsMovementEarn  PointsMovementType = "earn"
	PointsMovementSpend PointsMovementType = "spend"
)

// VerificationPointsReward is credited per paid profile verification
const VerificationPointsReward = 50

// PointsMovement is one append-only entry of an agency's points ledger.
// Movements are never mutated or deleted; the current balance must be
// reconstructable by replaying them.
type PointsMovement struct {
	ID            uuid.UUID          `json:"id"`
	AgencyID      uuid.UUID          `json:"agencyId"`
	Quantity      int                `json:"quantity"`
	Type          PointsMovementType `json:"type"`
	Concept       string             `json:"concept"`
	BalanceBefore int                `json:"balanceBefore"`
	BalanceAfter  int                `json:"balanceAfter"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// PointsBalance is the balance view of an agency's ledger
type PointsBalance struct {
	AgencyID      uuid.UUID        `json:"agencyId"`
	Accumulated   int              `json:"accumulated"`
	Spent         int              `json:"spent"`
	Available     int              `json:"available"`
	LastMovements []PointsMovement `json:"lastMovements"`
}

// PointsOperationInput represents input for credit/debit
type PointsOperationInput struct {
	Amount  int    `json:"amount" binding:"required,gt=0"`
	Concept string `json:"concept" binding:"required"`
}
