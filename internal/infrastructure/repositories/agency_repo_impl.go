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

// AgencyRepositoryImpl implements AgencyRepository
type AgencyRepositoryImpl struct {
	db *gorm.DB
}

func NewAgencyRepository(db *gorm.DB) *AgencyRepositoryImpl {
	return &AgencyRepositoryImpl{db: db}
}

func (r *AgencyRepositoryImpl) Create(ctx context.Context, agency *entities.Agency) error {
	if agency.ID == uuid.Nil {
		agency.ID = uuid.New()
	}
	now := time.Now()
	agency.CreatedAt = now
	agency.UpdatedAt = now

	return GetDB(ctx, r.db).WithContext(ctx).Create(r.toModel(agency)).Error
}

func (r *AgencyRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Agency, error) {
	var m models.Agency
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AgencyRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Agency, error) {
	var m models.Agency
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AgencyRepositoryImpl) Update(ctx context.Context, agency *entities.Agency) error {
	agency.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Agency{}).
		Where("id = ?", agency.ID).
		Updates(r.toModel(agency))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AgencyRepositoryImpl) SetVerified(ctx context.Context, id uuid.UUID, verified bool, at *time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Agency{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified": verified,
			"verified_at": at,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AgencyRepositoryImpl) UpdateCommission(ctx context.Context, id uuid.UUID, percent float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Agency{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"commission_percent": percent,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AgencyRepositoryImpl) UpdatePointsCounters(ctx context.Context, id uuid.UUID, accumulated, spent int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Agency{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"points_accumulated": accumulated,
			"points_spent":       spent,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AgencyRepositoryImpl) List(ctx context.Context) ([]*entities.Agency, error) {
	var ms []models.Agency
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *AgencyRepositoryImpl) ListUnverified(ctx context.Context) ([]*entities.Agency, error) {
	var ms []models.Agency
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_verified = ?", false).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *AgencyRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Agency{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AgencyRepositoryImpl) toModel(a *entities.Agency) *models.Agency {
	m := &models.Agency{
		ID:                a.ID,
		UserID:            a.UserID,
		Name:              a.Name,
		Description:       a.Description.String,
		LogoURL:           a.LogoURL.String,
		Website:           a.Website.String,
		Address:           a.Address.String,
		City:              a.City.String,
		Country:           a.Country.String,
		IsVerified:        a.IsVerified,
		PointsAccumulated: a.PointsAccumulated,
		PointsSpent:       a.PointsSpent,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.VerifiedAt.Valid {
		at := a.VerifiedAt.Time
		m.VerifiedAt = &at
	}
	if a.CommissionPercent.Valid {
		pct := a.CommissionPercent.Float64
		m.CommissionPercent = &pct
	}
	return m
}

func (r *AgencyRepositoryImpl) toEntity(m *models.Agency) *entities.Agency {
	a := &entities.Agency{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		IsVerified:        m.IsVerified,
		PointsAccumulated: m.PointsAccumulated,
		PointsSpent:       m.PointsSpent,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Description != "" {
		a.Description.SetValid(m.Description)
	}
	if m.LogoURL != "" {
		a.LogoURL.SetValid(m.LogoURL)
	}
	if m.Website != "" {
		a.Website.SetValid(m.Website)
	}
	if m.Address != "" {
		a.Address.SetValid(m.Address)
	}
	if m.City != "" {
		a.City.SetValid(m.City)
	}
	if m.Country != "" {
		a.Country.SetValid(m.Country)
	}
	if m.VerifiedAt != nil {
		a.VerifiedAt = null.TimeFrom(*m.VerifiedAt)
	}
	if m.CommissionPercent != nil {
		a.CommissionPercent = null.Float64From(*m.CommissionPercent)
	}
	return a
}

func (r *AgencyRepositoryImpl) toEntities(ms []models.Agency) []*entities.Agency {
	agencies := make([]*entities.Agency, 0, len(ms))
	for i := range ms {
		agencies = append(agencies, r.toEntity(&ms[i]))
	}
	return agencies
}
