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
	"agency-platform.backend/pkg/logger"
	"agency-platform.backend/pkg/utils"
)

// MembershipUsecase drives the profile-to-agency membership request
// lifecycle: pending -> approved | rejected | cancelled
type MembershipUsecase struct {
	requestRepo repositories.MembershipRequestRepository
	profileRepo repositories.ProfileRepository
	agencyRepo  repositories.AgencyRepository
	userRepo    repositories.UserRepository
	verifRepo   repositories.VerificationRepository
	uow         repositories.UnitOfWork
	notifier    repositories.NotificationGateway
	policy      PermissionPolicy
}

// NewMembershipUsecase creates a new membership usecase
func NewMembershipUsecase(
	requestRepo repositories.MembershipRequestRepository,
	profileRepo repositories.ProfileRepository,
	agencyRepo repositories.AgencyRepository,
	userRepo repositories.UserRepository,
	verifRepo repositories.VerificationRepository,
	uow repositories.UnitOfWork,
	notifier repositories.NotificationGateway,
) *MembershipUsecase {
	return &MembershipUsecase{
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		agencyRepo:  agencyRepo,
		userRepo:    userRepo,
		verifRepo:   verifRepo,
		uow:         uow,
		notifier:    notifier,
	}
}

// Submit creates a pending membership request. A second pending request
// for the same profile/agency pair is a conflict.
func (u *MembershipUsecase) Submit(ctx context.Context, actor entities.Actor, profileID, agencyID uuid.UUID) (*entities.MembershipRequest, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && profile.UserID != actor.UserID {
		return nil, domainerrors.ErrForbidden
	}
	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	exists, err := u.requestRepo.ExistsPending(ctx, profileID, agencyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.Conflict("a pending request already exists for this agency")
	}

	request := &entities.MembershipRequest{
		ProfileID:   profileID,
		AgencyID:    agencyID,
		State:       entities.MembershipStatePending,
		SubmittedAt: time.Now(),
	}
	if err := u.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	u.notifyAgency(ctx, agency, fmt.Sprintf("Profile %s requested to join your roster.", profile.ProfileName))
	return request, nil
}

// Approve transitions a pending request to approved and assigns the
// profile to the agency in the same transaction
func (u *MembershipUsecase) Approve(ctx context.Context, actor entities.Actor, requestID uuid.UUID) error {
	request, agency, err := u.loadForDecision(ctx, actor, requestID)
	if err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		request.State = entities.MembershipStateApproved
		request.RespondedAt = null.TimeFrom(time.Now())
		if err := u.requestRepo.Update(txCtx, request); err != nil {
			return err
		}

		// Moving a verified profile onto a new roster drops the verification
		// the previous agency vouched for, same as leaving one.
		profile, err := u.profileRepo.GetByID(txCtx, request.ProfileID)
		if err != nil {
			return err
		}
		if profile.IsVerified {
			if err := u.profileRepo.SetVerified(txCtx, request.ProfileID, false, nil); err != nil {
				return err
			}
			if err := u.verifRepo.DeleteByProfileID(txCtx, request.ProfileID); err != nil {
				return err
			}
		}

		return u.profileRepo.AssignAgency(txCtx, request.ProfileID, uuid.NullUUID{UUID: request.AgencyID, Valid: true})
	})
	if err != nil {
		return err
	}

	u.notifyDecision(ctx, request, agency, "approved")
	return nil
}

// Reject transitions a pending request to the terminal rejected state
func (u *MembershipUsecase) Reject(ctx context.Context, actor entities.Actor, requestID uuid.UUID) error {
	request, agency, err := u.loadForDecision(ctx, actor, requestID)
	if err != nil {
		return err
	}

	request.State = entities.MembershipStateRejected
	request.RespondedAt = null.TimeFrom(time.Now())
	if err := u.requestRepo.Update(ctx, request); err != nil {
		return err
	}

	u.notifyDecision(ctx, request, agency, "rejected")
	return nil
}

// Cancel withdraws a pending request with a motive. Allowed for the
// profile owner, the target agency owner and admins.
func (u *MembershipUsecase) Cancel(ctx context.Context, actor entities.Actor, requestID uuid.UUID, motive string) error {
	request, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	profile, err := u.profileRepo.GetByID(ctx, request.ProfileID)
	if err != nil {
		return err
	}
	agency, err := u.agencyRepo.GetByID(ctx, request.AgencyID)
	if err != nil {
		return err
	}
	if !u.policy.CanCancelRequest(actor, profile, agency) {
		return domainerrors.ErrForbidden
	}
	if request.State.IsTerminal() {
		return domainerrors.InvalidTransition("request is already resolved")
	}

	request.State = entities.MembershipStateCancelled
	request.RespondedAt = null.TimeFrom(time.Now())
	if motive != "" {
		request.Motive.SetValid(motive)
	}
	return u.requestRepo.Update(ctx, request)
}

// GetPending lists an agency's open requests, oldest first
func (u *MembershipUsecase) GetPending(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.MembershipRequest, error) {
	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return nil, domainerrors.ErrForbidden
	}
	return u.requestRepo.ListPendingByAgencyID(ctx, agencyID)
}

// GetHistory returns the agency's paginated request history with optional
// date and state filters
func (u *MembershipUsecase) GetHistory(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, filter entities.MembershipHistoryFilter, page, size int) ([]*entities.MembershipRequest, utils.PaginationMeta, error) {
	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return nil, utils.PaginationMeta{}, domainerrors.ErrForbidden
	}

	params := utils.ClampPagination(page, size)
	items, total, err := u.requestRepo.ListHistoryByAgencyID(ctx, agencyID, filter, params.Size, params.Offset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return items, utils.CalculateMeta(total, params.Page, params.Size), nil
}

// loadForDecision fetches the request and checks that the actor may
// decide it and that it is still pending
func (u *MembershipUsecase) loadForDecision(ctx context.Context, actor entities.Actor, requestID uuid.UUID) (*entities.MembershipRequest, *entities.Agency, error) {
	request, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	agency, err := u.agencyRepo.GetByID(ctx, request.AgencyID)
	if err != nil {
		return nil, nil, err
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return nil, nil, domainerrors.ErrForbidden
	}
	if request.State.IsTerminal() {
		return nil, nil, domainerrors.InvalidTransition("request is already resolved")
	}
	return request, agency, nil
}

func (u *MembershipUsecase) notifyAgency(ctx context.Context, agency *entities.Agency, message string) {
	user, err := u.userRepo.GetByID(ctx, agency.UserID)
	if err != nil {
		logger.Warn(ctx, "membership notification skipped, agency user missing", zap.Error(err))
		return
	}
	if err := u.notifier.SendEmail(ctx, user.Email, "New membership request", message); err != nil {
		logger.Error(ctx, "membership email failed", zap.Error(err))
	}
	if err := u.notifier.PushToUser(ctx, agency.UserID, message); err != nil {
		logger.Error(ctx, "membership push failed", zap.Error(err))
	}
}

// notifyDecision informs both parties after a request is decided
func (u *MembershipUsecase) notifyDecision(ctx context.Context, request *entities.MembershipRequest, agency *entities.Agency, outcome string) {
	message := fmt.Sprintf("Your membership request to %s was %s.", agency.Name, outcome)

	profile, err := u.profileRepo.GetByID(ctx, request.ProfileID)
	if err == nil {
		if owner, err := u.userRepo.GetByID(ctx, profile.UserID); err == nil {
			if err := u.notifier.SendEmail(ctx, owner.Email, "Membership request "+outcome, message); err != nil {
				logger.Error(ctx, "membership decision email failed", zap.Error(err))
			}
			if err := u.notifier.PushToUser(ctx, owner.ID, message); err != nil {
				logger.Error(ctx, "membership decision push failed", zap.Error(err))
			}
		}
	}
	if err := u.notifier.PushToUser(ctx, agency.UserID,
		fmt.Sprintf("Membership request %s.", outcome)); err != nil {
		logger.Error(ctx, "membership decision push failed", zap.Error(err))
	}
}
