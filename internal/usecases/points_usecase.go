package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/domain/repositories"
)

const balanceMovementLimit = 10

// PointsUsecase maintains the per-agency points ledger. Movements are
// append-only; the agency row carries the accumulated/spent counters.
type PointsUsecase struct {
	agencyRepo   repositories.AgencyRepository
	movementRepo repositories.PointsMovementRepository
	uow          repositories.UnitOfWork

	// serializes check-then-act per agency within this process
	locks sync.Map
}

// NewPointsUsecase creates a new points usecase
func NewPointsUsecase(
	agencyRepo repositories.AgencyRepository,
	movementRepo repositories.PointsMovementRepository,
	uow repositories.UnitOfWork,
) *PointsUsecase {
	return &PointsUsecase{
		agencyRepo:   agencyRepo,
		movementRepo: movementRepo,
		uow:          uow,
	}
}

// Credit adds points to the agency's balance and appends an earn movement
func (u *PointsUsecase) Credit(ctx context.Context, agencyID uuid.UUID, amount int, concept string) (*entities.PointsBalance, error) {
	if err := validateOperation(amount, concept); err != nil {
		return nil, err
	}

	lock := u.agencyLock(agencyID)
	lock.Lock()
	defer lock.Unlock()

	var balance *entities.PointsBalance
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		agency, err := u.agencyRepo.GetByID(txCtx, agencyID)
		if err != nil {
			return err
		}
		before := agency.AvailablePoints()

		movement := &entities.PointsMovement{
			AgencyID:      agencyID,
			Quantity:      amount,
			Type:          entities.PointsMovementEarn,
			Concept:       concept,
			BalanceBefore: before,
			BalanceAfter:  before + amount,
		}
		if err := u.movementRepo.Create(txCtx, movement); err != nil {
			return err
		}

		accumulated := agency.PointsAccumulated + amount
		if err := u.agencyRepo.UpdatePointsCounters(txCtx, agencyID, accumulated, agency.PointsSpent); err != nil {
			return err
		}

		balance = &entities.PointsBalance{
			AgencyID:    agencyID,
			Accumulated: accumulated,
			Spent:       agency.PointsSpent,
			Available:   before + amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// Debit subtracts points. A debit beyond the available balance returns
// ErrInsufficientPoints and writes nothing.
func (u *PointsUsecase) Debit(ctx context.Context, agencyID uuid.UUID, amount int, concept string) (*entities.PointsBalance, error) {
	if err := validateOperation(amount, concept); err != nil {
		return nil, err
	}

	lock := u.agencyLock(agencyID)
	lock.Lock()
	defer lock.Unlock()

	var balance *entities.PointsBalance
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		agency, err := u.agencyRepo.GetByID(txCtx, agencyID)
		if err != nil {
			return err
		}
		before := agency.AvailablePoints()
		if amount > before {
			return domainerrors.InsufficientPoints("debit exceeds available points")
		}

		movement := &entities.PointsMovement{
			AgencyID:      agencyID,
			Quantity:      amount,
			Type:          entities.PointsMovementSpend,
			Concept:       concept,
			BalanceBefore: before,
			BalanceAfter:  before - amount,
		}
		if err := u.movementRepo.Create(txCtx, movement); err != nil {
			return err
		}

		spent := agency.PointsSpent + amount
		if err := u.agencyRepo.UpdatePointsCounters(txCtx, agencyID, agency.PointsAccumulated, spent); err != nil {
			return err
		}

		balance = &entities.PointsBalance{
			AgencyID:    agencyID,
			Accumulated: agency.PointsAccumulated,
			Spent:       spent,
			Available:   before - amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// GetBalance returns the counters and the most recent movements
func (u *PointsUsecase) GetBalance(ctx context.Context, agencyID uuid.UUID) (*entities.PointsBalance, error) {
	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	movements, err := u.movementRepo.ListByAgencyID(ctx, agencyID, balanceMovementLimit)
	if err != nil {
		return nil, err
	}

	return &entities.PointsBalance{
		AgencyID:      agencyID,
		Accumulated:   agency.PointsAccumulated,
		Spent:         agency.PointsSpent,
		Available:     agency.AvailablePoints(),
		LastMovements: movements,
	}, nil
}

func (u *PointsUsecase) agencyLock(agencyID uuid.UUID) *sync.Mutex {
	lock, _ := u.locks.LoadOrStore(agencyID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func validateOperation(amount int, concept string) error {
	if amount <= 0 {
		return domainerrors.BadRequest("amount must be positive")
	}
	if concept == "" {
		return domainerrors.BadRequest("concept is required")
	}
	return nil
}
