package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
)

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	UpdateScore(ctx context.Context, id uuid.UUID, score int64) error
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
	// SetVerified flips the verified flag; a nil timestamp clears it
	SetVerified(ctx context.Context, id uuid.UUID, verified bool, at *time.Time) error
	// AssignAgency moves the profile to an agency; a zero NullUUID detaches it
	AssignAgency(ctx context.Context, id uuid.UUID, agencyID uuid.NullUUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	ListByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.Profile, error)
	ListVerifiedByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.Profile, error)
	CountByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error)
	CountVerifiedByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error)
	TopByAgencyID(ctx context.Context, agencyID uuid.UUID, limit int) ([]entities.ProfileSummary, error)

	// Discovery listings, always filtered to available profiles
	CountAvailable(ctx context.Context) (int64, error)
	ListAllPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error)
	ListRecentPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error)
	ListPopularPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.ProfileSummary, error)
}
