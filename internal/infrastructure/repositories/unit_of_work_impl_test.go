package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"agency-platform.backend/internal/domain/entities"
)

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createPointsMovementTable(t, db)
	u := &UnitOfWorkImpl{db: db}

	// commit path
	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec(
			`INSERT INTO points_movements(id, agency_id, quantity, type, concept, balance_before, balance_after) VALUES (?,?,?,?,?,?,?)`,
			uuid.New().String(), uuid.New().String(), 50, "earn", "verification", 0, 50,
		).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("points_movements").Count(&count).Error)
	require.Equal(t, int64(1), count)

	// rollback path
	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := GetDB(ctx, db).Exec(
			`INSERT INTO points_movements(id, agency_id, quantity, type, concept, balance_before, balance_after) VALUES (?,?,?,?,?,?,?)`,
			uuid.New().String(), uuid.New().String(), 20, "spend", "placement", 50, 30,
		).Error; err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.Error(t, err)

	require.NoError(t, db.Table("points_movements").Count(&count).Error)
	require.Equal(t, int64(1), count, "second insert must be rolled back")
}

func TestUnitOfWork_RepositoriesJoinTransaction(t *testing.T) {
	db := newTestDB(t)
	createAgencyTables(t, db)
	createPointsMovementTable(t, db)
	u := NewUnitOfWork(db)
	agencies := NewAgencyRepository(db)
	movements := NewPointsMovementRepository(db)
	ctx := context.Background()

	var agencyID uuid.UUID
	err := u.Do(ctx, func(txCtx context.Context) error {
		agency := &entities.Agency{UserID: uuid.New(), Name: "Tx Agency"}
		if err := agencies.Create(txCtx, agency); err != nil {
			return err
		}
		agencyID = agency.ID
		movement := &entities.PointsMovement{
			AgencyID: agency.ID, Quantity: 50,
			Type: entities.PointsMovementEarn, Concept: "verification",
			BalanceBefore: 0, BalanceAfter: 50,
		}
		if err := movements.Create(txCtx, movement); err != nil {
			return err
		}
		return errors.New("abort both")
	})
	require.Error(t, err)

	_, err = agencies.GetByID(ctx, agencyID)
	require.Error(t, err, "agency insert must be rolled back with the movement")

	var count int64
	require.NoError(t, db.Table("points_movements").Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = u.Do(context.Background(), func(ctx context.Context) error {
		_ = ctx
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}

func TestGetDB_FallbackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)
	require.Equal(t, db, GetDB(context.Background(), db))

	tx := db.Begin()
	txCtx := context.WithValue(context.Background(), txKey, tx)
	require.Equal(t, tx, GetDB(txCtx, db))
	tx.Rollback()
}
