package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
)

// FeaturedPlacementRepository defines featured placement data operations
type FeaturedPlacementRepository interface {
	Create(ctx context.Context, placement *entities.FeaturedPlacement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FeaturedPlacement, error)
	// ActiveProfileIDsPaged returns distinct profile ids with a live placement
	// at the given instant, ordered by placement start descending
	ActiveProfileIDsPaged(ctx context.Context, now time.Time, limit, offset int) ([]uuid.UUID, error)
	CountActiveProfiles(ctx context.Context, now time.Time) (int64, error)
	CountActiveByAgencyID(ctx context.Context, agencyID uuid.UUID, now time.Time) (int64, error)
	ListByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.FeaturedPlacement, error)
}
