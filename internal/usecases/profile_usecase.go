package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/domain/repositories"
)

// ProfileUsecase handles profile creation and public reads
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
	agencyRepo  repositories.AgencyRepository
	policy      PermissionPolicy
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(profileRepo repositories.ProfileRepository, agencyRepo repositories.AgencyRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo, agencyRepo: agencyRepo}
}

// CreateProfile registers a new profile owned by the acting user
func (u *ProfileUsecase) CreateProfile(ctx context.Context, actor entities.Actor, input entities.CreateProfileInput) (*entities.Profile, error) {
	if _, err := u.profileRepo.GetByUserID(ctx, actor.UserID); err == nil {
		return nil, domainerrors.Conflict("user already has a profile")
	} else if err != domainerrors.ErrNotFound {
		return nil, err
	}

	profile := &entities.Profile{
		UserID:      actor.UserID,
		ProfileName: input.ProfileName,
		Description: null.NewString(input.Description, input.Description != ""),
		City:        null.NewString(input.City, input.City != ""),
		Country:     null.NewString(input.Country, input.Country != ""),
		Tariff:      input.Tariff,
		Currency:    input.Currency,
		Categories:  input.Categories,
		IsAvailable: true,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns a profile by id, public view
func (u *ProfileUsecase) GetProfile(ctx context.Context, profileID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByID(ctx, profileID)
}

// GetOwnProfile returns the acting user's profile
func (u *ProfileUsecase) GetOwnProfile(ctx context.Context, actor entities.Actor) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, actor.UserID)
}

// SetAvailability toggles the discovery availability flag. Allowed for
// the owner, the managing agency and admins.
func (u *ProfileUsecase) SetAvailability(ctx context.Context, actor entities.Actor, profileID uuid.UUID, available bool) error {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	agency, err := u.managingAgency(ctx, profile)
	if err != nil {
		return err
	}
	if !u.policy.CanManageProfile(actor, profile, agency) {
		return domainerrors.ErrForbidden
	}
	return u.profileRepo.UpdateAvailability(ctx, profileID, available)
}

func (u *ProfileUsecase) managingAgency(ctx context.Context, profile *entities.Profile) (*entities.Agency, error) {
	if !profile.AgencyID.Valid {
		return nil, nil
	}
	agency, err := u.agencyRepo.GetByID(ctx, profile.AgencyID.UUID)
	if err == domainerrors.ErrNotFound {
		return nil, nil
	}
	return agency, err
}
