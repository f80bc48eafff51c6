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

// FeaturedPlacementRepositoryImpl implements FeaturedPlacementRepository
type FeaturedPlacementRepositoryImpl struct {
	db *gorm.DB
}

func NewFeaturedPlacementRepository(db *gorm.DB) *FeaturedPlacementRepositoryImpl {
	return &FeaturedPlacementRepositoryImpl{db: db}
}

func (r *FeaturedPlacementRepositoryImpl) Create(ctx context.Context, placement *entities.FeaturedPlacement) error {
	if placement.ID == uuid.Nil {
		placement.ID = uuid.New()
	}
	placement.CreatedAt = time.Now()

	m := &models.FeaturedPlacement{
		ID:         placement.ID,
		ProfileID:  placement.ProfileID,
		StartsAt:   placement.StartsAt,
		EndsAt:     placement.EndsAt,
		Kind:       placement.Kind,
		AmountPaid: placement.AmountPaid,
		IsActive:   placement.IsActive,
		CreatedAt:  placement.CreatedAt,
		UpdatedAt:  placement.CreatedAt,
	}
	if placement.CouponID.Valid {
		m.CouponID = &placement.CouponID.UUID
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *FeaturedPlacementRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.FeaturedPlacement, error) {
	var m models.FeaturedPlacement
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ActiveProfileIDsPaged keeps the most recent start per profile, so a
// profile with overlapping placements appears once. Grouping and paging
// stay in the store.
func (r *FeaturedPlacementRepositoryImpl) ActiveProfileIDsPaged(ctx context.Context, now time.Time, limit, offset int) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, limit)
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FeaturedPlacement{}).
		Where("is_active = ? AND starts_at <= ? AND ends_at > ?", true, now, now).
		Group("profile_id").
		Order("MAX(starts_at) DESC").
		Limit(limit).
		Offset(offset).
		Pluck("profile_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FeaturedPlacementRepositoryImpl) CountActiveProfiles(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FeaturedPlacement{}).
		Where("is_active = ? AND starts_at <= ? AND ends_at > ?", true, now, now).
		Distinct("profile_id").
		Count(&count).Error
	return count, err
}

func (r *FeaturedPlacementRepositoryImpl) CountActiveByAgencyID(ctx context.Context, agencyID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FeaturedPlacement{}).
		Joins("JOIN profiles ON profiles.id = featured_placements.profile_id").
		Where("profiles.agency_id = ? AND featured_placements.is_active = ? AND featured_placements.starts_at <= ? AND featured_placements.ends_at > ?",
			agencyID, true, now, now).
		Count(&count).Error
	return count, err
}

func (r *FeaturedPlacementRepositoryImpl) ListByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.FeaturedPlacement, error) {
	var ms []models.FeaturedPlacement
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Joins("JOIN profiles ON profiles.id = featured_placements.profile_id").
		Where("profiles.agency_id = ?", agencyID).
		Order("featured_placements.starts_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	placements := make([]*entities.FeaturedPlacement, 0, len(ms))
	for i := range ms {
		placements = append(placements, r.toEntity(&ms[i]))
	}
	return placements, nil
}

func (r *FeaturedPlacementRepositoryImpl) toEntity(m *models.FeaturedPlacement) *entities.FeaturedPlacement {
	placement := &entities.FeaturedPlacement{
		ID:         m.ID,
		ProfileID:  m.ProfileID,
		StartsAt:   m.StartsAt,
		EndsAt:     m.EndsAt,
		Kind:       m.Kind,
		AmountPaid: m.AmountPaid,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
	if m.CouponID != nil {
		placement.CouponID = uuid.NullUUID{UUID: *m.CouponID, Valid: true}
	}
	if m.DeletedAt.Valid {
		placement.DeletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return placement
}
