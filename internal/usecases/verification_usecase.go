package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/domain/repositories"
	"agency-platform.backend/pkg/crypto"
	"agency-platform.backend/pkg/logger"
)

// newPaymentRef issues the reference handed to the payment gateway when a
// charge is initiated. The provider echoes it back in the completion
// webhook, and CompletePayment resolves the payment by it.
var newPaymentRef = func() (string, error) {
	token, err := crypto.GenerateRandomToken(12)
	if err != nil {
		return "", err
	}
	return "vp_" + token, nil
}

// VerificationUsecase handles profile verification, the commission tier
// escalation and agency verification with its cascade
type VerificationUsecase struct {
	profileRepo repositories.ProfileRepository
	agencyRepo  repositories.AgencyRepository
	verifRepo   repositories.VerificationRepository
	paymentRepo repositories.VerificationPaymentRepository
	userRepo    repositories.UserRepository
	points      *PointsUsecase
	uow         repositories.UnitOfWork
	notifier    repositories.NotificationGateway
	policy      PermissionPolicy
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	profileRepo repositories.ProfileRepository,
	agencyRepo repositories.AgencyRepository,
	verifRepo repositories.VerificationRepository,
	paymentRepo repositories.VerificationPaymentRepository,
	userRepo repositories.UserRepository,
	points *PointsUsecase,
	uow repositories.UnitOfWork,
	notifier repositories.NotificationGateway,
) *VerificationUsecase {
	return &VerificationUsecase{
		profileRepo: profileRepo,
		agencyRepo:  agencyRepo,
		verifRepo:   verifRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		points:      points,
		uow:         uow,
		notifier:    notifier,
	}
}

// VerifyProfile verifies one profile for an agency. A profile with any
// historical completed payment is re-verified free of charge. The record,
// payment and profile flag commit in one transaction; points credit and
// tier recomputation follow the commit.
func (u *VerificationUsecase) VerifyProfile(ctx context.Context, actor entities.Actor, agencyID, profileID uuid.UUID, chargeAmount float64, notes string) (*entities.VerificationRecord, error) {
	if chargeAmount < 0 {
		return nil, domainerrors.BadRequest("charge amount cannot be negative")
	}

	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return nil, domainerrors.ErrForbidden
	}
	if !agency.IsVerified {
		return nil, domainerrors.ErrAgencyNotVerified
	}

	record, err := u.verify(ctx, agency, profileID, chargeAmount, notes)
	if err != nil {
		return nil, err
	}

	u.afterVerification(ctx, agency, record)
	return record, nil
}

// verify runs the per-profile checks and the transactional write
func (u *VerificationUsecase) verify(ctx context.Context, agency *entities.Agency, profileID uuid.UUID, chargeAmount float64, notes string) (*entities.VerificationRecord, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !profile.AgencyID.Valid || profile.AgencyID.UUID != agency.ID {
		return nil, domainerrors.ErrProfileNotInAgency
	}
	if profile.IsVerified {
		return nil, domainerrors.ErrAlreadyVerified
	}

	// any completed payment for this profile, by any agency, makes
	// re-verification free
	paidBefore, err := u.paymentRepo.HasCompletedForProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if paidBefore {
		chargeAmount = 0
	}

	now := time.Now()
	record := &entities.VerificationRecord{
		AgencyID:      agency.ID,
		ProfileID:     profileID,
		VerifiedAt:    now,
		ChargedAmount: chargeAmount,
		Status:        entities.VerificationStatusApproved,
	}
	if notes != "" {
		record.Notes.SetValid(notes)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.verifRepo.Create(txCtx, record); err != nil {
			return err
		}

		payment := &entities.VerificationPayment{
			VerificationID: record.ID,
			ProfileID:      profileID,
			AgencyID:       agency.ID,
			Amount:         chargeAmount,
			Status:         entities.PaymentStatusPending,
		}
		if chargeAmount == 0 {
			payment.Status = entities.PaymentStatusCompleted
			payment.PaidAt.SetValid(now)
		} else {
			ref, err := newPaymentRef()
			if err != nil {
				return err
			}
			payment.ExternalRef.SetValid(ref)
		}
		if err := u.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}

		return u.profileRepo.SetVerified(txCtx, profileID, true, &now)
	})
	if err != nil {
		return nil, err
	}

	record.ProfileName = profile.ProfileName
	return record, nil
}

// afterVerification runs the post-commit effects: points credit, tier
// recomputation, notification. All fire-and-log.
func (u *VerificationUsecase) afterVerification(ctx context.Context, agency *entities.Agency, record *entities.VerificationRecord) {
	if record.ChargedAmount > 0 {
		concept := fmt.Sprintf("Profile verification: %s", record.ProfileName)
		if _, err := u.points.Credit(ctx, agency.ID, entities.VerificationPointsReward, concept); err != nil {
			logger.Error(ctx, "failed to credit verification points",
				zap.String("agency_id", agency.ID.String()), zap.Error(err))
		}
	}

	u.recomputeCommissionTier(ctx, agency)

	if user, err := u.userRepo.GetByID(ctx, agency.UserID); err == nil {
		subject := "Profile verified"
		body := fmt.Sprintf("Profile %s has been verified.", record.ProfileName)
		if err := u.notifier.SendEmail(ctx, user.Email, subject, body); err != nil {
			logger.Error(ctx, "verification notification failed", zap.Error(err))
		}
	}
}

// recomputeCommissionTier moves the agency's commission up when the
// verified-profile count reaches a higher tier. The commission never
// moves down.
func (u *VerificationUsecase) recomputeCommissionTier(ctx context.Context, agency *entities.Agency) {
	count, err := u.profileRepo.CountVerifiedByAgencyID(ctx, agency.ID)
	if err != nil {
		logger.Error(ctx, "failed to count verified profiles",
			zap.String("agency_id", agency.ID.String()), zap.Error(err))
		return
	}

	tier := entities.TierForVerifiedCount(int(count))
	if tier == nil {
		return
	}
	current := agency.CommissionPercent.Float64
	if agency.CommissionPercent.Valid && tier.CommissionPercent <= current {
		return
	}

	if err := u.agencyRepo.UpdateCommission(ctx, agency.ID, tier.CommissionPercent); err != nil {
		logger.Error(ctx, "failed to update commission tier",
			zap.String("agency_id", agency.ID.String()), zap.Error(err))
		return
	}
	agency.CommissionPercent.SetValid(tier.CommissionPercent)

	if user, err := u.userRepo.GetByID(ctx, agency.UserID); err == nil {
		subject := "Commission tier upgraded"
		body := fmt.Sprintf("Your commission is now %.2f%% with a %.2f%% verification discount.",
			tier.CommissionPercent, tier.DiscountPercent)
		if err := u.notifier.SendEmail(ctx, user.Email, subject, body); err != nil {
			logger.Error(ctx, "tier notification failed", zap.Error(err))
		}
	}
}

// VerifyBatch verifies a set of profiles with a volume discount on the
// unit charge. Per-item failures are logged and skipped; the batch
// continues.
func (u *VerificationUsecase) VerifyBatch(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, profileIDs []uuid.UUID, unitCharge float64, notes string) ([]*entities.VerificationRecord, error) {
	if len(profileIDs) == 0 {
		return nil, domainerrors.BadRequest("profile list is empty")
	}
	if unitCharge < 0 {
		return nil, domainerrors.BadRequest("unit charge cannot be negative")
	}

	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return nil, domainerrors.ErrForbidden
	}
	if !agency.IsVerified {
		return nil, domainerrors.ErrAgencyNotVerified
	}

	discount := entities.BatchDiscountFactor(len(profileIDs))
	charge := unitCharge * (1 - discount)
	batchNotes := notes
	if discount > 0 {
		batchNotes = fmt.Sprintf("%s (batch discount %.0f%%)", notes, discount*100)
	}

	records := make([]*entities.VerificationRecord, 0, len(profileIDs))
	for _, profileID := range profileIDs {
		record, err := u.verify(ctx, agency, profileID, charge, batchNotes)
		if err != nil {
			logger.Warn(ctx, "batch verification item skipped",
				zap.String("profile_id", profileID.String()), zap.Error(err))
			continue
		}
		u.afterVerification(ctx, agency, record)
		records = append(records, record)
	}
	return records, nil
}

// RevokeVerification reverts a profile to unverified and removes its
// verification records in one transaction
func (u *VerificationUsecase) RevokeVerification(ctx context.Context, actor entities.Actor, profileID uuid.UUID) error {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}

	var agency *entities.Agency
	if profile.AgencyID.Valid {
		agency, err = u.agencyRepo.GetByID(ctx, profile.AgencyID.UUID)
		if err != nil && err != domainerrors.ErrNotFound {
			return err
		}
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return domainerrors.ErrForbidden
	}
	if !profile.IsVerified {
		return domainerrors.InvalidTransition("profile is not verified")
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.profileRepo.SetVerified(txCtx, profileID, false, nil); err != nil {
			return err
		}
		return u.verifRepo.DeleteByProfileID(txCtx, profileID)
	})
}

// SetAgencyVerified sets the agency verification flag (admin only).
// Verifying seeds the base commission; de-verifying cascades over every
// verified profile in one transaction.
func (u *VerificationUsecase) SetAgencyVerified(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, verified bool) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}
	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return err
	}
	if agency.IsVerified == verified {
		return nil
	}

	if verified {
		now := time.Now()
		if err := u.agencyRepo.SetVerified(ctx, agencyID, true, &now); err != nil {
			return err
		}
		if !agency.CommissionPercent.Valid {
			if err := u.agencyRepo.UpdateCommission(ctx, agencyID, entities.BaseCommissionPercent); err != nil {
				return err
			}
		}
	} else {
		err = u.uow.Do(ctx, func(txCtx context.Context) error {
			if err := u.agencyRepo.SetVerified(txCtx, agencyID, false, nil); err != nil {
				return err
			}
			profiles, err := u.profileRepo.ListVerifiedByAgencyID(txCtx, agencyID)
			if err != nil {
				return err
			}
			for _, p := range profiles {
				if err := u.profileRepo.SetVerified(txCtx, p.ID, false, nil); err != nil {
					return err
				}
			}
			return u.verifRepo.DeleteByAgencyID(txCtx, agencyID)
		})
		if err != nil {
			return err
		}
	}

	if user, err := u.userRepo.GetByID(ctx, agency.UserID); err == nil {
		subject := "Agency verification updated"
		body := "Your agency has been verified."
		if !verified {
			body = "Your agency verification has been revoked."
		}
		if err := u.notifier.SendEmail(ctx, user.Email, subject, body); err != nil {
			logger.Error(ctx, "agency verification notification failed", zap.Error(err))
		}
	}
	return nil
}

// CompletePayment handles the payment-gateway webhook, marking the
// payment completed. Completed payments are acknowledged idempotently.
func (u *VerificationUsecase) CompletePayment(ctx context.Context, paymentReference string) error {
	if paymentReference == "" {
		return domainerrors.BadRequest("payment reference is required")
	}
	payment, err := u.paymentRepo.GetByExternalRef(ctx, paymentReference)
	if err != nil {
		return err
	}
	if payment.Status == entities.PaymentStatusCompleted {
		return nil
	}
	return u.paymentRepo.MarkCompleted(ctx, payment.ID, time.Now())
}

// GetCommissions summarizes an agency's verification commissions in a
// time window
func (u *VerificationUsecase) GetCommissions(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, from, to time.Time) (*entities.AgencyCommissionReport, error) {
	agency, err := u.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if !u.policy.CanManageAgency(actor, agency) {
		return nil, domainerrors.ErrForbidden
	}

	records, err := u.verifRepo.ListByAgencyIDBetween(ctx, agencyID, from, to)
	if err != nil {
		return nil, err
	}

	var totalCharged float64
	for _, r := range records {
		totalCharged += r.ChargedAmount
	}
	percent := agency.CommissionPercent.Float64

	return &entities.AgencyCommissionReport{
		AgencyID:          agencyID,
		From:              from,
		To:                to,
		Verifications:     int64(len(records)),
		CommissionPercent: percent,
		TotalCharged:      totalCharged,
		CommissionTotal:   totalCharged * percent / 100,
	}, nil
}
