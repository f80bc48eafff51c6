package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"agency-platform.backend/internal/domain/entities"
	"agency-platform.backend/internal/infrastructure/models"
)

// PointsMovementRepositoryImpl implements the append-only points ledger
type PointsMovementRepositoryImpl struct {
	db *gorm.DB
}

func NewPointsMovementRepository(db *gorm.DB) *PointsMovementRepositoryImpl {
	return &PointsMovementRepositoryImpl{db: db}
}

func (r *PointsMovementRepositoryImpl) Create(ctx context.Context, movement *entities.PointsMovement) error {
	if movement.ID == uuid.Nil {
		movement.ID = uuid.New()
	}
	movement.CreatedAt = time.Now()

	m := &models.PointsMovement{
		ID:            movement.ID,
		AgencyID:      movement.AgencyID,
		Quantity:      movement.Quantity,
		Type:          string(movement.Type),
		Concept:       movement.Concept,
		BalanceBefore: movement.BalanceBefore,
		BalanceAfter:  movement.BalanceAfter,
		CreatedAt:     movement.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *PointsMovementRepositoryImpl) ListByAgencyID(ctx context.Context, agencyID uuid.UUID, limit int) ([]entities.PointsMovement, error) {
	var ms []models.PointsMovement
	q := GetDB(ctx, r.db).WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	movements := make([]entities.PointsMovement, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		movements = append(movements, entities.PointsMovement{
			ID:            m.ID,
			AgencyID:      m.AgencyID,
			Quantity:      m.Quantity,
			Type:          entities.PointsMovementType(m.Type),
			Concept:       m.Concept,
			BalanceBefore: m.BalanceBefore,
			BalanceAfter:  m.BalanceAfter,
			CreatedAt:     m.CreatedAt,
		})
	}
	return movements, nil
}
