package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/domain/repositories"
	"agency-platform.backend/pkg/logger"
)

// ActivityUsecase records engagement events and maintains activity scores
type ActivityUsecase struct {
	profileRepo repositories.ProfileRepository
	agencyRepo  repositories.AgencyRepository
	visitRepo   repositories.VisitRepository
	contactRepo repositories.ContactRepository
	policy      PermissionPolicy
}

// NewActivityUsecase creates a new activity usecase
func NewActivityUsecase(
	profileRepo repositories.ProfileRepository,
	agencyRepo repositories.AgencyRepository,
	visitRepo repositories.VisitRepository,
	contactRepo repositories.ContactRepository,
) *ActivityUsecase {
	return &ActivityUsecase{
		profileRepo: profileRepo,
		agencyRepo:  agencyRepo,
		visitRepo:   visitRepo,
		contactRepo: contactRepo,
	}
}

// RecordVisit appends a visit event and refreshes the profile's score.
// The event write is authoritative: a score persist failure is logged,
// never returned.
func (u *ActivityUsecase) RecordVisit(ctx context.Context, profileID uuid.UUID, visitorID uuid.NullUUID, ip, userAgent string) error {
	if _, err := u.profileRepo.GetByID(ctx, profileID); err != nil {
		return err
	}

	visit := &entities.ProfileVisit{
		ProfileID: profileID,
		VisitorID: visitorID,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := u.visitRepo.Create(ctx, visit); err != nil {
		return err
	}

	u.refreshScore(ctx, profileID)
	return nil
}

// RecordContact appends a contact event and refreshes the profile's score
func (u *ActivityUsecase) RecordContact(ctx context.Context, profileID uuid.UUID, contactType entities.ContactType, visitorID uuid.NullUUID, ip string) error {
	if !contactType.Valid() {
		return domainerrors.BadRequest("unknown contact type")
	}
	if _, err := u.profileRepo.GetByID(ctx, profileID); err != nil {
		return err
	}

	contact := &entities.ProfileContact{
		ProfileID:    profileID,
		VisitorID:    visitorID,
		ContactType:  contactType,
		IP:           ip,
		IsRegistered: visitorID.Valid,
	}
	if err := u.contactRepo.Create(ctx, contact); err != nil {
		return err
	}

	u.refreshScore(ctx, profileID)
	return nil
}

// GetStats aggregates engagement data for a profile. Allowed for the
// profile owner, the managing agency and admins.
func (u *ActivityUsecase) GetStats(ctx context.Context, actor entities.Actor, profileID uuid.UUID) (*entities.ProfileStats, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	agency, err := u.managingAgency(ctx, profile)
	if err != nil {
		return nil, err
	}
	if !u.policy.CanManageProfile(actor, profile, agency) {
		return nil, domainerrors.ErrForbidden
	}

	totalVisits, err := u.visitRepo.CountByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	totalContacts, err := u.contactRepo.CountByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	byType, err := u.contactRepo.CountByType(ctx, profileID)
	if err != nil {
		return nil, err
	}
	perDay, err := u.visitRepo.VisitsPerDay(ctx, profileID, entities.ScoreWindowDays)
	if err != nil {
		return nil, err
	}

	return &entities.ProfileStats{
		ProfileID:      profile.ID,
		ProfileName:    profile.ProfileName,
		TotalVisits:    totalVisits,
		TotalContacts:  totalContacts,
		ActivityScore:  profile.ActivityScore,
		ContactsByType: byType,
		VisitsByDay:    perDay,
	}, nil
}

// refreshScore recomputes the windowed score from raw counts and persists
// it. Failures are logged only.
func (u *ActivityUsecase) refreshScore(ctx context.Context, profileID uuid.UUID) {
	score, err := u.computeScore(ctx, profileID)
	if err != nil {
		logger.Error(ctx, "failed to compute activity score",
			zap.String("profile_id", profileID.String()), zap.Error(err))
		return
	}
	if err := u.profileRepo.UpdateScore(ctx, profileID, score); err != nil {
		logger.Error(ctx, "failed to persist activity score",
			zap.String("profile_id", profileID.String()), zap.Error(err))
	}
}

func (u *ActivityUsecase) computeScore(ctx context.Context, profileID uuid.UUID) (int64, error) {
	windowStart := scoreWindowStart()
	visits, err := u.visitRepo.CountSince(ctx, profileID, windowStart)
	if err != nil {
		return 0, err
	}
	contacts, err := u.contactRepo.CountSince(ctx, profileID, windowStart)
	if err != nil {
		return 0, err
	}
	return entities.VisitWeight*visits + entities.ContactWeight*contacts, nil
}

func scoreWindowStart() time.Time {
	return time.Now().AddDate(0, 0, -entities.ScoreWindowDays)
}

func (u *ActivityUsecase) managingAgency(ctx context.Context, profile *entities.Profile) (*entities.Agency, error) {
	if !profile.AgencyID.Valid {
		return nil, nil
	}
	agency, err := u.agencyRepo.GetByID(ctx, profile.AgencyID.UUID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return agency, nil
}
