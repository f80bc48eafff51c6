package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
)

// AgencyRepository defines agency data operations
type AgencyRepository interface {
	Create(ctx context.Context, agency *entities.Agency) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Agency, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Agency, error)
	Update(ctx context.Context, agency *entities.Agency) error
	// SetVerified flips the verified flag; a nil timestamp clears it
	SetVerified(ctx context.Context, id uuid.UUID, verified bool, at *time.Time) error
	UpdateCommission(ctx context.Context, id uuid.UUID, percent float64) error
	// UpdatePointsCounters persists the accumulated/spent pair
	UpdatePointsCounters(ctx context.Context, id uuid.UUID, accumulated, spent int) error
	List(ctx context.Context) ([]*entities.Agency, error)
	ListUnverified(ctx context.Context) ([]*entities.Agency, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
