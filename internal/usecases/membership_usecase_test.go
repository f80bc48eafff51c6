package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/usecases"
)

type membershipFixture struct {
	requestRepo *MockMembershipRequestRepository
	profileRepo *MockProfileRepository
	agencyRepo  *MockAgencyRepository
	userRepo    *MockUserRepository
	verifRepo   *MockVerificationRepository
	uow         *MockUnitOfWork
	notifier    *MockNotificationGateway
	usecase     *usecases.MembershipUsecase
}

func newMembershipFixture() *membershipFixture {
	f := &membershipFixture{
		requestRepo: new(MockMembershipRequestRepository),
		profileRepo: new(MockProfileRepository),
		agencyRepo:  new(MockAgencyRepository),
		userRepo:    new(MockUserRepository),
		verifRepo:   new(MockVerificationRepository),
		uow:         new(MockUnitOfWork),
		notifier:    new(MockNotificationGateway),
	}
	f.usecase = usecases.NewMembershipUsecase(
		f.requestRepo, f.profileRepo, f.agencyRepo, f.userRepo, f.verifRepo, f.uow, f.notifier,
	)
	return f
}

func pendingRequest(profileID, agencyID uuid.UUID) *entities.MembershipRequest {
	return &entities.MembershipRequest{
		ID:          uuid.New(),
		ProfileID:   profileID,
		AgencyID:    agencyID,
		State:       entities.MembershipStatePending,
		SubmittedAt: time.Now(),
	}
}

func TestMembershipSubmit(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	ownerID := uuid.New()
	actor := entities.Actor{UserID: ownerID, Role: entities.UserRoleProfileOwner}
	profile := &entities.Profile{ID: uuid.New(), UserID: ownerID, ProfileName: "Luna"}
	agency := &entities.Agency{ID: uuid.New(), UserID: uuid.New(), Name: "Stellar"}

	f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)
	f.requestRepo.On("ExistsPending", mock.Anything, profile.ID, agency.ID).Return(false, nil)
	f.requestRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.MembershipRequest) bool {
		return r.State == entities.MembershipStatePending &&
			r.ProfileID == profile.ID && r.AgencyID == agency.ID
	})).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, agency.UserID).Return(&entities.User{ID: agency.UserID, Email: "agency@x.y"}, nil)
	f.notifier.On("SendEmail", mock.Anything, "agency@x.y", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PushToUser", mock.Anything, agency.UserID, mock.Anything).Return(nil)

	request, err := f.usecase.Submit(ctx, actor, profile.ID, agency.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.MembershipStatePending, request.State)
	f.notifier.AssertCalled(t, "SendEmail", mock.Anything, "agency@x.y", mock.Anything, mock.Anything)
}

func TestMembershipSubmit_DuplicatePending(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	ownerID := uuid.New()
	actor := entities.Actor{UserID: ownerID, Role: entities.UserRoleProfileOwner}
	profile := &entities.Profile{ID: uuid.New(), UserID: ownerID}
	agency := &entities.Agency{ID: uuid.New(), UserID: uuid.New()}

	f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)
	f.requestRepo.On("ExistsPending", mock.Anything, profile.ID, agency.ID).Return(true, nil)

	_, err := f.usecase.Submit(ctx, actor, profile.ID, agency.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	f.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMembershipSubmit_NotOwner(t *testing.T) {
	f := newMembershipFixture()
	actor := entities.Actor{UserID: uuid.New(), Role: entities.UserRoleProfileOwner}
	profile := &entities.Profile{ID: uuid.New(), UserID: uuid.New()}

	f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)

	_, err := f.usecase.Submit(context.Background(), actor, profile.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMembershipApprove(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	agencyOwner := uuid.New()
	actor := entities.Actor{UserID: agencyOwner, Role: entities.UserRoleAgency}
	agency := &entities.Agency{ID: uuid.New(), UserID: agencyOwner, Name: "Stellar"}
	profileOwner := uuid.New()
	profile := &entities.Profile{ID: uuid.New(), UserID: profileOwner}
	request := pendingRequest(profile.ID, agency.ID)

	f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
	f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.requestRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *entities.MembershipRequest) bool {
		return r.State == entities.MembershipStateApproved && r.RespondedAt.Valid
	})).Return(nil)
	f.profileRepo.On("AssignAgency", mock.Anything, profile.ID, uuid.NullUUID{UUID: agency.ID, Valid: true}).Return(nil)

	f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	f.userRepo.On("GetByID", mock.Anything, profileOwner).Return(&entities.User{ID: profileOwner, Email: "owner@x.y"}, nil)
	f.notifier.On("SendEmail", mock.Anything, "owner@x.y", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PushToUser", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := f.usecase.Approve(ctx, actor, request.ID)
	require.NoError(t, err)
	f.profileRepo.AssertCalled(t, "AssignAgency", mock.Anything, profile.ID, uuid.NullUUID{UUID: agency.ID, Valid: true})
}

func TestMembershipApprove_ReassignmentClearsVerification(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	agencyOwner := uuid.New()
	actor := entities.Actor{UserID: agencyOwner, Role: entities.UserRoleAgency}
	newAgency := &entities.Agency{ID: uuid.New(), UserID: agencyOwner, Name: "Stellar"}
	oldAgency := uuid.New()
	profileOwner := uuid.New()
	profile := &entities.Profile{
		ID:         uuid.New(),
		UserID:     profileOwner,
		AgencyID:   uuid.NullUUID{UUID: oldAgency, Valid: true},
		IsVerified: true,
	}
	request := pendingRequest(profile.ID, newAgency.ID)

	f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
	f.agencyRepo.On("GetByID", mock.Anything, newAgency.ID).Return(newAgency, nil)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.requestRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	f.profileRepo.On("SetVerified", mock.Anything, profile.ID, false, (*time.Time)(nil)).Return(nil)
	f.verifRepo.On("DeleteByProfileID", mock.Anything, profile.ID).Return(nil)
	f.profileRepo.On("AssignAgency", mock.Anything, profile.ID, uuid.NullUUID{UUID: newAgency.ID, Valid: true}).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, profileOwner).Return(&entities.User{ID: profileOwner, Email: "owner@x.y"}, nil)
	f.notifier.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PushToUser", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := f.usecase.Approve(ctx, actor, request.ID)
	require.NoError(t, err)

	// the old agency's vouch does not follow the profile onto the new roster
	f.profileRepo.AssertCalled(t, "SetVerified", mock.Anything, profile.ID, false, (*time.Time)(nil))
	f.verifRepo.AssertCalled(t, "DeleteByProfileID", mock.Anything, profile.ID)
	f.profileRepo.AssertCalled(t, "AssignAgency", mock.Anything, profile.ID, uuid.NullUUID{UUID: newAgency.ID, Valid: true})
}

func TestMembershipApprove_TerminalState(t *testing.T) {
	f := newMembershipFixture()

	agencyOwner := uuid.New()
	actor := entities.Actor{UserID: agencyOwner, Role: entities.UserRoleAgency}
	agency := &entities.Agency{ID: uuid.New(), UserID: agencyOwner}
	request := pendingRequest(uuid.New(), agency.ID)
	request.State = entities.MembershipStateRejected

	f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
	f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)

	err := f.usecase.Approve(context.Background(), actor, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestMembershipApprove_ForeignAgency(t *testing.T) {
	f := newMembershipFixture()

	actor := entities.Actor{UserID: uuid.New(), Role: entities.UserRoleAgency}
	agency := &entities.Agency{ID: uuid.New(), UserID: uuid.New()}
	request := pendingRequest(uuid.New(), agency.ID)

	f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
	f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)

	err := f.usecase.Approve(context.Background(), actor, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMembershipReject(t *testing.T) {
	f := newMembershipFixture()

	agencyOwner := uuid.New()
	actor := entities.Actor{UserID: agencyOwner, Role: entities.UserRoleAgency}
	agency := &entities.Agency{ID: uuid.New(), UserID: agencyOwner}
	profile := &entities.Profile{ID: uuid.New(), UserID: uuid.New()}
	request := pendingRequest(profile.ID, agency.ID)

	f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
	f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)
	f.requestRepo.On("Update", mock.MatchedBy(func(ctx context.Context) bool { return true }), mock.MatchedBy(func(r *entities.MembershipRequest) bool {
		return r.State == entities.MembershipStateRejected
	})).Return(nil)
	f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	f.userRepo.On("GetByID", mock.Anything, profile.UserID).Return(&entities.User{ID: profile.UserID, Email: "o@x.y"}, nil)
	f.notifier.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PushToUser", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := f.usecase.Reject(context.Background(), actor, request.ID)
	require.NoError(t, err)
	// rejection never touches the profile's agency assignment
	f.profileRepo.AssertNotCalled(t, "AssignAgency", mock.Anything, mock.Anything, mock.Anything)
}

func TestMembershipCancel(t *testing.T) {
	t.Run("profile owner cancels with motive", func(t *testing.T) {
		f := newMembershipFixture()
		ownerID := uuid.New()
		actor := entities.Actor{UserID: ownerID, Role: entities.UserRoleProfileOwner}
		profile := &entities.Profile{ID: uuid.New(), UserID: ownerID}
		agency := &entities.Agency{ID: uuid.New(), UserID: uuid.New()}
		request := pendingRequest(profile.ID, agency.ID)

		f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
		f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)
		f.requestRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *entities.MembershipRequest) bool {
			return r.State == entities.MembershipStateCancelled && r.Motive.String == "changed my mind"
		})).Return(nil)

		err := f.usecase.Cancel(context.Background(), actor, request.ID, "changed my mind")
		assert.NoError(t, err)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		f := newMembershipFixture()
		actor := entities.Actor{UserID: uuid.New(), Role: entities.UserRoleProfileOwner}
		profile := &entities.Profile{ID: uuid.New(), UserID: uuid.New()}
		agency := &entities.Agency{ID: uuid.New(), UserID: uuid.New()}
		request := pendingRequest(profile.ID, agency.ID)

		f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
		f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)

		err := f.usecase.Cancel(context.Background(), actor, request.ID, "")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("terminal request", func(t *testing.T) {
		f := newMembershipFixture()
		ownerID := uuid.New()
		actor := entities.Actor{UserID: ownerID, Role: entities.UserRoleProfileOwner}
		profile := &entities.Profile{ID: uuid.New(), UserID: ownerID}
		agency := &entities.Agency{ID: uuid.New(), UserID: uuid.New()}
		request := pendingRequest(profile.ID, agency.ID)
		request.State = entities.MembershipStateApproved

		f.requestRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
		f.profileRepo.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)

		err := f.usecase.Cancel(context.Background(), actor, request.ID, "too late")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
	})
}

func TestMembershipGetHistory(t *testing.T) {
	f := newMembershipFixture()

	agencyOwner := uuid.New()
	actor := entities.Actor{UserID: agencyOwner, Role: entities.UserRoleAgency}
	agency := &entities.Agency{ID: uuid.New(), UserID: agencyOwner}

	state := entities.MembershipStateApproved
	filter := entities.MembershipHistoryFilter{State: &state}
	items := []*entities.MembershipRequest{pendingRequest(uuid.New(), agency.ID)}

	f.agencyRepo.On("GetByID", mock.Anything, agency.ID).Return(agency, nil)
	f.requestRepo.On("ListHistoryByAgencyID", mock.Anything, agency.ID, filter, 10, 10).Return(items, int64(11), nil)

	result, meta, err := f.usecase.GetHistory(context.Background(), actor, agency.ID, filter, 2, 10)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(11), meta.TotalItems)
	assert.Equal(t, 2, meta.TotalPages)
}
