package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"agency-platform.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateScore(ctx context.Context, id uuid.UUID, score int64) error {
	args := m.Called(ctx, id, score)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockProfileRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool, at *time.Time) error {
	args := m.Called(ctx, id, verified, at)
	return args.Error(0)
}

func (m *MockProfileRepository) AssignAgency(ctx context.Context, id uuid.UUID, agencyID uuid.NullUUID) error {
	args := m.Called(ctx, id, agencyID)
	return args.Error(0)
}

func (m *MockProfileRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) ListByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.Profile, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListVerifiedByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.Profile, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) CountByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) CountVerifiedByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) TopByAgencyID(ctx context.Context, agencyID uuid.UUID, limit int) ([]entities.ProfileSummary, error) {
	args := m.Called(ctx, agencyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProfileSummary), args.Error(1)
}

func (m *MockProfileRepository) CountAvailable(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) ListAllPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProfileSummary), args.Error(1)
}

func (m *MockProfileRepository) ListRecentPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProfileSummary), args.Error(1)
}

func (m *MockProfileRepository) ListPopularPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProfileSummary), args.Error(1)
}

func (m *MockProfileRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.ProfileSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProfileSummary), args.Error(1)
}

// Mock AgencyRepository
type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) Create(ctx context.Context, agency *entities.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *MockAgencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Agency), args.Error(1)
}

func (m *MockAgencyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Agency, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Agency), args.Error(1)
}

func (m *MockAgencyRepository) Update(ctx context.Context, agency *entities.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *MockAgencyRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool, at *time.Time) error {
	args := m.Called(ctx, id, verified, at)
	return args.Error(0)
}

func (m *MockAgencyRepository) UpdateCommission(ctx context.Context, id uuid.UUID, percent float64) error {
	args := m.Called(ctx, id, percent)
	return args.Error(0)
}

func (m *MockAgencyRepository) UpdatePointsCounters(ctx context.Context, id uuid.UUID, accumulated, spent int) error {
	args := m.Called(ctx, id, accumulated, spent)
	return args.Error(0)
}

func (m *MockAgencyRepository) List(ctx context.Context) ([]*entities.Agency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Agency), args.Error(1)
}

func (m *MockAgencyRepository) ListUnverified(ctx context.Context) ([]*entities.Agency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Agency), args.Error(1)
}

func (m *MockAgencyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, record *entities.VerificationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.VerificationRecord, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockVerificationRepository) DeleteByAgencyID(ctx context.Context, agencyID uuid.UUID) error {
	args := m.Called(ctx, agencyID)
	return args.Error(0)
}

func (m *MockVerificationRepository) ListByAgencyIDBetween(ctx context.Context, agencyID uuid.UUID, from, to time.Time) ([]*entities.VerificationRecord, error) {
	args := m.Called(ctx, agencyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRecord), args.Error(1)
}

// Mock VerificationPaymentRepository
type MockVerificationPaymentRepository struct {
	mock.Mock
}

func (m *MockVerificationPaymentRepository) Create(ctx context.Context, payment *entities.VerificationPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockVerificationPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationPayment), args.Error(1)
}

func (m *MockVerificationPaymentRepository) GetByExternalRef(ctx context.Context, ref string) (*entities.VerificationPayment, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationPayment), args.Error(1)
}

func (m *MockVerificationPaymentRepository) HasCompletedForProfile(ctx context.Context, profileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationPaymentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	args := m.Called(ctx, id, paidAt)
	return args.Error(0)
}

// Mock PointsMovementRepository
type MockPointsMovementRepository struct {
	mock.Mock
}

func (m *MockPointsMovementRepository) Create(ctx context.Context, movement *entities.PointsMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockPointsMovementRepository) ListByAgencyID(ctx context.Context, agencyID uuid.UUID, limit int) ([]entities.PointsMovement, error) {
	args := m.Called(ctx, agencyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PointsMovement), args.Error(1)
}

// Mock MembershipRequestRepository
type MockMembershipRequestRepository struct {
	mock.Mock
}

func (m *MockMembershipRequestRepository) Create(ctx context.Context, request *entities.MembershipRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMembershipRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MembershipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MembershipRequest), args.Error(1)
}

func (m *MockMembershipRequestRepository) Update(ctx context.Context, request *entities.MembershipRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMembershipRequestRepository) ExistsPending(ctx context.Context, profileID, agencyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, profileID, agencyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipRequestRepository) ListPendingByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.MembershipRequest, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MembershipRequest), args.Error(1)
}

func (m *MockMembershipRequestRepository) CountPendingByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipRequestRepository) ListHistoryByAgencyID(ctx context.Context, agencyID uuid.UUID, filter entities.MembershipHistoryFilter, limit, offset int) ([]*entities.MembershipRequest, int64, error) {
	args := m.Called(ctx, agencyID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MembershipRequest), args.Get(1).(int64), args.Error(2)
}

// Mock AgencyRegistrationRepository
type MockAgencyRegistrationRepository struct {
	mock.Mock
}

func (m *MockAgencyRegistrationRepository) Create(ctx context.Context, request *entities.AgencyRegistrationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAgencyRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AgencyRegistrationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AgencyRegistrationRequest), args.Error(1)
}

func (m *MockAgencyRegistrationRepository) GetByEmail(ctx context.Context, email string) (*entities.AgencyRegistrationRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AgencyRegistrationRequest), args.Error(1)
}

func (m *MockAgencyRegistrationRepository) Update(ctx context.Context, request *entities.AgencyRegistrationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAgencyRegistrationRepository) ListPending(ctx context.Context) ([]*entities.AgencyRegistrationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AgencyRegistrationRequest), args.Error(1)
}

// Mock FeaturedPlacementRepository
type MockFeaturedPlacementRepository struct {
	mock.Mock
}

func (m *MockFeaturedPlacementRepository) Create(ctx context.Context, placement *entities.FeaturedPlacement) error {
	args := m.Called(ctx, placement)
	return args.Error(0)
}

func (m *MockFeaturedPlacementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FeaturedPlacement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FeaturedPlacement), args.Error(1)
}

func (m *MockFeaturedPlacementRepository) ActiveProfileIDsPaged(ctx context.Context, now time.Time, limit, offset int) ([]uuid.UUID, error) {
	args := m.Called(ctx, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFeaturedPlacementRepository) CountActiveProfiles(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeaturedPlacementRepository) CountActiveByAgencyID(ctx context.Context, agencyID uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, agencyID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeaturedPlacementRepository) ListByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.FeaturedPlacement, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FeaturedPlacement), args.Error(1)
}

// Mock VisitRepository
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Create(ctx context.Context, visit *entities.ProfileVisit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) CountByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitRepository) CountSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int64, error) {
	args := m.Called(ctx, profileID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitRepository) VisitsPerDay(ctx context.Context, profileID uuid.UUID, days int) ([]entities.VisitsOnDay, error) {
	args := m.Called(ctx, profileID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.VisitsOnDay), args.Error(1)
}

// Mock ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *entities.ProfileContact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) CountByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) CountSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int64, error) {
	args := m.Called(ctx, profileID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) CountByType(ctx context.Context, profileID uuid.UUID) (map[string]int64, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// Mock NotificationGateway
type MockNotificationGateway struct {
	mock.Mock
}

func (m *MockNotificationGateway) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func (m *MockNotificationGateway) PushToUser(ctx context.Context, userID uuid.UUID, message string) error {
	args := m.Called(ctx, userID, message)
	return args.Error(0)
}
