package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/infrastructure/models"
)

// VerificationRepositoryImpl implements VerificationRepository
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepositoryImpl {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) Create(ctx context.Context, record *entities.VerificationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()

	m := &models.VerificationRecord{
		ID:            record.ID,
		AgencyID:      record.AgencyID,
		ProfileID:     record.ProfileID,
		VerifiedAt:    record.VerifiedAt,
		ChargedAmount: record.ChargedAmount,
		Status:        string(record.Status),
		Notes:         record.Notes.String,
		CreatedAt:     record.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *VerificationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRecord, error) {
	var m models.VerificationRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *VerificationRepositoryImpl) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.VerificationRecord, error) {
	var m models.VerificationRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("profile_id = ?", profileID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *VerificationRepositoryImpl) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&models.VerificationRecord{}).Error
}

func (r *VerificationRepositoryImpl) DeleteByAgencyID(ctx context.Context, agencyID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Delete(&models.VerificationRecord{}).Error
}

func (r *VerificationRepositoryImpl) ListByAgencyIDBetween(ctx context.Context, agencyID uuid.UUID, from, to time.Time) ([]*entities.VerificationRecord, error) {
	var ms []models.VerificationRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("agency_id = ? AND verified_at >= ? AND verified_at < ?", agencyID, from, to).
		Order("verified_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	records := make([]*entities.VerificationRecord, 0, len(ms))
	for i := range ms {
		records = append(records, r.toEntity(&ms[i]))
	}
	return records, nil
}

func (r *VerificationRepositoryImpl) toEntity(m *models.VerificationRecord) *entities.VerificationRecord {
	record := &entities.VerificationRecord{
		ID:            m.ID,
		AgencyID:      m.AgencyID,
		ProfileID:     m.ProfileID,
		VerifiedAt:    m.VerifiedAt,
		ChargedAmount: m.ChargedAmount,
		Status:        entities.VerificationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
	if m.Notes != "" {
		record.Notes.SetValid(m.Notes)
	}
	return record
}

// VerificationPaymentRepositoryImpl implements VerificationPaymentRepository
type VerificationPaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationPaymentRepository(db *gorm.DB) *VerificationPaymentRepositoryImpl {
	return &VerificationPaymentRepositoryImpl{db: db}
}

func (r *VerificationPaymentRepositoryImpl) Create(ctx context.Context, payment *entities.VerificationPayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = time.Now()

	m := &models.VerificationPayment{
		ID:             payment.ID,
		VerificationID: payment.VerificationID,
		ProfileID:      payment.ProfileID,
		AgencyID:       payment.AgencyID,
		Amount:         payment.Amount,
		Status:         string(payment.Status),
		ExternalRef:    payment.ExternalRef.String,
		CreatedAt:      payment.CreatedAt,
	}
	if payment.PaidAt.Valid {
		at := payment.PaidAt.Time
		m.PaidAt = &at
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *VerificationPaymentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationPayment, error) {
	var m models.VerificationPayment
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *VerificationPaymentRepositoryImpl) GetByExternalRef(ctx context.Context, ref string) (*entities.VerificationPayment, error) {
	var m models.VerificationPayment
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("external_ref = ?", ref).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *VerificationPaymentRepositoryImpl) HasCompletedForProfile(ctx context.Context, profileID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VerificationPayment{}).
		Where("profile_id = ? AND status = ?", profileID, string(entities.PaymentStatusCompleted)).
		Count(&count).Error
	return count > 0, err
}

func (r *VerificationPaymentRepositoryImpl) MarkCompleted(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VerificationPayment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  string(entities.PaymentStatusCompleted),
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *VerificationPaymentRepositoryImpl) toEntity(m *models.VerificationPayment) *entities.VerificationPayment {
	payment := &entities.VerificationPayment{
		ID:             m.ID,
		VerificationID: m.VerificationID,
		ProfileID:      m.ProfileID,
		AgencyID:       m.AgencyID,
		Amount:         m.Amount,
		Status:         entities.PaymentStatus(m.Status),
		CreatedAt:      m.CreatedAt,
	}
	if m.PaidAt != nil {
		payment.PaidAt = null.TimeFrom(*m.PaidAt)
	}
	if m.ExternalRef != "" {
		payment.ExternalRef.SetValid(m.ExternalRef)
	}
	return payment
}
