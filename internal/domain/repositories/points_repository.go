package repositories

import (
	"context"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
)

// PointsMovementRepository defines the append-only points ledger.
// Movements are only ever created and read, never updated or deleted.
type PointsMovementRepository interface {
	Create(ctx context.Context, movement *entities.PointsMovement) error
	ListByAgencyID(ctx context.Context, agencyID uuid.UUID, limit int) ([]entities.PointsMovement, error)
}
