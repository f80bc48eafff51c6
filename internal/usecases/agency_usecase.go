package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/domain/repositories"
)

const dashboardTopProfiles = 5

// AgencyUsecase handles agency roster management and reporting
type AgencyUsecase struct {
	agencyRepo   repositories.AgencyRepository
	profileRepo  repositories.ProfileRepository
	verifRepo    repositories.VerificationRepository
	requestRepo  repositories.MembershipRequestRepository
	featuredRepo repositories.FeaturedPlacementRepository
	uow          repositories.UnitOfWork
	policy       PermissionPolicy
}

// NewAgencyUsecase creates a new agency usecase
func NewAgencyUsecase(
	agencyRepo repositories.AgencyRepository,
	profileRepo repositories.ProfileRepository,
	verifRepo repositories.VerificationRepository,
	requestRepo repositories.MembershipRequestRepository,
	featuredRepo repositories.FeaturedPlacementRepository,
	uow repositories.UnitOfWork,
) *AgencyUsecase {
	return &AgencyUsecase{
		agencyRepo:   agencyRepo,
		profileRepo:  profileRepo,
		verifRepo:    verifRepo,
		requestRepo:  requestRepo,
		featuredRepo: featuredRepo,
		uow:          uow,
	}
}

// GetAgency returns an agency by id
func (u *AgencyUsecase) GetAgency(ctx context.Context, agencyID uuid.UUID) (*entities.Agency, error) {
	return u.agencyRepo.GetByID(ctx, agencyID)
}

// GetProfiles returns the agency's full roster
func (u *AgencyUsecase) GetProfiles(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.Profile, error) {
	agency, err := u.authorizeAgency(ctx, actor, agencyID)
	if err != nil {
		return nil, err
	}
	return u.profileRepo.ListByAgencyID(ctx, agency.ID)
}

// GetVerifiedProfiles returns the roster members the agency has verified
func (u *AgencyUsecase) GetVerifiedProfiles(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.Profile, error) {
	agency, err := u.authorizeAgency(ctx, actor, agencyID)
	if err != nil {
		return nil, err
	}
	return u.profileRepo.ListVerifiedByAgencyID(ctx, agency.ID)
}

// GetPendingVerificationProfiles returns roster members not yet verified
func (u *AgencyUsecase) GetPendingVerificationProfiles(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.Profile, error) {
	agency, err := u.authorizeAgency(ctx, actor, agencyID)
	if err != nil {
		return nil, err
	}
	profiles, err := u.profileRepo.ListByAgencyID(ctx, agency.ID)
	if err != nil {
		return nil, err
	}
	pending := make([]*entities.Profile, 0, len(profiles))
	for _, p := range profiles {
		if !p.IsVerified {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

// RemoveProfile detaches a profile from the roster. Leaving the agency
// drops the verification the agency vouched for, in one transaction.
func (u *AgencyUsecase) RemoveProfile(ctx context.Context, actor entities.Actor, agencyID, profileID uuid.UUID) error {
	agency, err := u.authorizeAgency(ctx, actor, agencyID)
	if err != nil {
		return err
	}
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if !profile.AgencyID.Valid || profile.AgencyID.UUID != agency.ID {
		return domainerrors.ErrProfileNotInAgency
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.profileRepo.AssignAgency(txCtx, profileID, uuid.NullUUID{}); err != nil {
			return err
		}
		if profile.IsVerified {
			if err := u.profileRepo.SetVerified(txCtx, profileID, false, nil); err != nil {
				return err
			}
		}
		return u.verifRepo.DeleteByProfileID(txCtx, profileID)
	})
}

// GetDashboard aggregates the agency's management counters
func (u *AgencyUsecase) GetDashboard(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) (*entities.AgencyDashboard, error) {
	agency, err := u.authorizeAgency(ctx, actor, agencyID)
	if err != nil {
		return nil, err
	}

	total, err := u.profileRepo.CountByAgencyID(ctx, agency.ID)
	if err != nil {
		return nil, err
	}
	verified, err := u.profileRepo.CountVerifiedByAgencyID(ctx, agency.ID)
	if err != nil {
		return nil, err
	}
	pendingRequests, err := u.requestRepo.CountPendingByAgencyID(ctx, agency.ID)
	if err != nil {
		return nil, err
	}
	placements, err := u.featuredRepo.CountActiveByAgencyID(ctx, agency.ID, time.Now())
	if err != nil {
		return nil, err
	}
	top, err := u.profileRepo.TopByAgencyID(ctx, agency.ID, dashboardTopProfiles)
	if err != nil {
		return nil, err
	}

	return &entities.AgencyDashboard{
		TotalProfiles:       total,
		VerifiedProfiles:    verified,
		PendingVerification: total - verified,
		PendingRequests:     pendingRequests,
		ActivePlacements:    placements,
		PointsAccumulated:   agency.AvailablePoints(),
		TopProfiles:         top,
	}, nil
}

// CreatePlacement opens a featured placement window for a roster profile
func (u *AgencyUsecase) CreatePlacement(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, input entities.CreatePlacementInput) (*entities.FeaturedPlacement, error) {
	agency, err := u.authorizeAgency(ctx, actor, agencyID)
	if err != nil {
		return nil, err
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.BadRequest("placement window must end after it starts")
	}
	profile, err := u.profileRepo.GetByID(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	if !profile.AgencyID.Valid || profile.AgencyID.UUID != agency.ID {
		return nil, domainerrors.ErrProfileNotInAgency
	}

	placement := &entities.FeaturedPlacement{
		ProfileID:  input.ProfileID,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		Kind:       input.Kind,
		AmountPaid: input.AmountPaid,
		IsActive:   true,
	}
	if err := u.featuredRepo.Create(ctx, placement); err != nil {
		return nil, err
	}
	return placement, nil
}

// GetPlacements lists the agency's placements, live or not
func (u *AgencyUsecase) GetPlacements(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.FeaturedPlacement, error) {
	agency, err := u.authorizeAgency(ctx, actor, agencyID)
	if err != nil {
		return nil, err
	}
	return u.featuredRepo.ListByAgencyID(ctx, agency.ID)
}

// ListAgencies returns all agencies, admin only
func (u *AgencyUsecase) ListAgencies(ctx context.Context, actor entities.Actor) ([]*entities.Agency, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	return u.agencyRepo.List(ctx)
}

// ListUnverifiedAgencies returns agencies awaiting platform verification
func (u *AgencyUsecase) ListUnverifiedAgencies(ctx context.Context, actor entities.Actor) ([]*entities.Agency, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	return u.agencyRepo.ListUnverified(ctx)
}

func (u *AgencyUsecase) authorizeAgency(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) (*entities.Agency, error) {
	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return nil, domainerrors.ErrForbidden
	}
	return agency, nil
}
