package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"agency-platform.backend/internal/domain/entities"
)

func TestPointsMovementRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createPointsMovementTable(t, db)
	repo := NewPointsMovementRepository(db)
	ctx := context.Background()
	agencyID := uuid.New()

	movements := []entities.PointsMovement{
		{AgencyID: agencyID, Quantity: 50, Type: entities.PointsMovementEarn, Concept: "profile verification", BalanceBefore: 0, BalanceAfter: 50},
		{AgencyID: agencyID, Quantity: 20, Type: entities.PointsMovementSpend, Concept: "featured placement", BalanceBefore: 50, BalanceAfter: 30},
		{AgencyID: agencyID, Quantity: 50, Type: entities.PointsMovementEarn, Concept: "profile verification", BalanceBefore: 30, BalanceAfter: 80},
	}
	for i := range movements {
		require.NoError(t, repo.Create(ctx, &movements[i]))
	}
	// another agency's ledger must stay separate
	require.NoError(t, repo.Create(ctx, &entities.PointsMovement{
		AgencyID: uuid.New(), Quantity: 10, Type: entities.PointsMovementEarn, Concept: "other", BalanceAfter: 10,
	}))

	items, err := repo.ListByAgencyID(ctx, agencyID, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// replaying the ledger reproduces the final balance
	balance := 0
	for i := len(items) - 1; i >= 0; i-- {
		switch items[i].Type {
		case entities.PointsMovementEarn:
			balance += items[i].Quantity
		case entities.PointsMovementSpend:
			balance -= items[i].Quantity
		}
	}
	require.Equal(t, 80, balance)

	limited, err := repo.ListByAgencyID(ctx, agencyID, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestPointsMovementRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewPointsMovementRepository(db)
	ctx := context.Background()

	require.Error(t, repo.Create(ctx, &entities.PointsMovement{AgencyID: uuid.New(), Quantity: 1, Type: entities.PointsMovementEarn, Concept: "x"}))
	_, err := repo.ListByAgencyID(ctx, uuid.New(), 10)
	require.Error(t, err)
}
