package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
)

// VisitRepository defines profile visit event operations. Events are
// immutable once written.
type VisitRepository interface {
	Create(ctx context.Context, visit *entities.ProfileVisit) error
	CountByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
	CountSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int64, error)
	VisitsPerDay(ctx context.Context, profileID uuid.UUID, days int) ([]entities.VisitsOnDay, error)
}

// ContactRepository defines profile contact event operations
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.ProfileContact) error
	CountByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
	CountSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int64, error)
	CountByType(ctx context.Context, profileID uuid.UUID) (map[string]int64, error)
}
