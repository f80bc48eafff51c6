package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"github.com/volatiletech/null/v8"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/domain/repositories"
	"agency-platform.backend/pkg/crypto"
	"agency-platform.backend/pkg/logger"
)

// AgencyRegistrationUsecase handles the agency sign-up lifecycle.
// Registration is admin-gated: a submitted request carries everything
// needed to provision the user and agency records on approval.
type AgencyRegistrationUsecase struct {
	registrationRepo repositories.AgencyRegistrationRepository
	userRepo         repositories.UserRepository
	agencyRepo       repositories.AgencyRepository
	uow              repositories.UnitOfWork
	notifier         repositories.NotificationGateway
	adminEmail       string
}

// NewAgencyRegistrationUsecase creates a new agency registration usecase
func NewAgencyRegistrationUsecase(
	registrationRepo repositories.AgencyRegistrationRepository,
	userRepo repositories.UserRepository,
	agencyRepo repositories.AgencyRepository,
	uow repositories.UnitOfWork,
	notifier repositories.NotificationGateway,
	adminEmail string,
) *AgencyRegistrationUsecase {
	return &AgencyRegistrationUsecase{
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		agencyRepo:       agencyRepo,
		uow:              uow,
		notifier:         notifier,
		adminEmail:       adminEmail,
	}
}

// Submit records a sign-up request. The password is hashed at intake so
// the plaintext never outlives this call.
func (u *AgencyRegistrationUsecase) Submit(ctx context.Context, input entities.AgencyRegistrationInput) (*entities.AgencyRegistrationRequest, error) {
	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Conflict("an account already exists for this email")
	} else if err != domainerrors.ErrNotFound {
		return nil, err
	}
	if existing, err := u.registrationRepo.GetByEmail(ctx, input.Email); err == nil && existing.State == entities.RegistrationStatePending {
		return nil, domainerrors.Conflict("a pending registration already exists for this email")
	} else if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	request := &entities.AgencyRegistrationRequest{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Description:  null.NewString(input.Description, input.Description != ""),
		LogoURL:      null.NewString(input.LogoURL, input.LogoURL != ""),
		Website:      null.NewString(input.Website, input.Website != ""),
		Address:      null.NewString(input.Address, input.Address != ""),
		City:         null.NewString(input.City, input.City != ""),
		Country:      null.NewString(input.Country, input.Country != ""),
		State:        entities.RegistrationStatePending,
		SubmittedAt:  time.Now(),
	}
	if err := u.registrationRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	if u.adminEmail != "" {
		if err := u.notifier.SendEmail(ctx, u.adminEmail, "New agency registration",
			fmt.Sprintf("Agency %s (%s) requested to join the platform.", request.Name, request.Email)); err != nil {
			logger.Error(ctx, "registration admin email failed", zap.Error(err))
		}
	}
	return request, nil
}

// Approve provisions the user account and an unverified agency from a
// pending request, all in one transaction
func (u *AgencyRegistrationUsecase) Approve(ctx context.Context, actor entities.Actor, requestID uuid.UUID) (*entities.Agency, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	request, err := u.registrationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.State != entities.RegistrationStatePending {
		return nil, domainerrors.InvalidTransition("registration is already resolved")
	}

	user := &entities.User{
		Email:        request.Email,
		PasswordHash: request.PasswordHash,
		Role:         entities.UserRoleAgency,
		IsActive:     true,
	}
	agency := &entities.Agency{
		Name:        request.Name,
		Description: request.Description,
		LogoURL:     request.LogoURL,
		Website:     request.Website,
		Address:     request.Address,
		City:        request.City,
		Country:     request.Country,
		IsVerified:  false,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		agency.UserID = user.ID
		if err := u.agencyRepo.Create(txCtx, agency); err != nil {
			return err
		}
		request.State = entities.RegistrationStateApproved
		request.RespondedAt = null.TimeFrom(time.Now())
		return u.registrationRepo.Update(txCtx, request)
	})
	if err != nil {
		return nil, err
	}

	if err := u.notifier.SendEmail(ctx, request.Email, "Registration approved",
		fmt.Sprintf("Welcome %s, your agency account is ready.", request.Name)); err != nil {
		logger.Error(ctx, "registration approval email failed", zap.Error(err))
	}
	return agency, nil
}

// Reject closes a pending request with a motive
func (u *AgencyRegistrationUsecase) Reject(ctx context.Context, actor entities.Actor, requestID uuid.UUID, motive string) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}
	if motive == "" {
		return domainerrors.BadRequest("a rejection motive is required")
	}
	request, err := u.registrationRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.State != entities.RegistrationStatePending {
		return domainerrors.InvalidTransition("registration is already resolved")
	}

	request.State = entities.RegistrationStateRejected
	request.RespondedAt = null.TimeFrom(time.Now())
	request.Motive.SetValid(motive)
	if err := u.registrationRepo.Update(ctx, request); err != nil {
		return err
	}

	if err := u.notifier.SendEmail(ctx, request.Email, "Registration rejected", motive); err != nil {
		logger.Error(ctx, "registration rejection email failed", zap.Error(err))
	}
	return nil
}

// GetPendingRegistrations lists open sign-up requests, oldest first
func (u *AgencyRegistrationUsecase) GetPendingRegistrations(ctx context.Context, actor entities.Actor) ([]*entities.AgencyRegistrationRequest, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	return u.registrationRepo.ListPending(ctx)
}
