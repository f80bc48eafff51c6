package repositories

import (
	"context"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
)

// MembershipRequestRepository defines membership request data operations
type MembershipRequestRepository interface {
	Create(ctx context.Context, request *entities.MembershipRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MembershipRequest, error)
	Update(ctx context.Context, request *entities.MembershipRequest) error
	ExistsPending(ctx context.Context, profileID, agencyID uuid.UUID) (bool, error)
	ListPendingByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.MembershipRequest, error)
	CountPendingByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error)
	ListHistoryByAgencyID(ctx context.Context, agencyID uuid.UUID, filter entities.MembershipHistoryFilter, limit, offset int) ([]*entities.MembershipRequest, int64, error)
}

// AgencyRegistrationRepository defines agency sign-up request data operations
type AgencyRegistrationRepository interface {
	Create(ctx context.Context, request *entities.AgencyRegistrationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AgencyRegistrationRequest, error)
	GetByEmail(ctx context.Context, email string) (*entities.AgencyRegistrationRequest, error)
	Update(ctx context.Context, request *entities.AgencyRegistrationRequest) error
	ListPending(ctx context.Context) ([]*entities.AgencyRegistrationRequest, error)
}
