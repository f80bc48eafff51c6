package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/infrastructure/models"
)

// ProfileRepositoryImpl implements ProfileRepository
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepositoryImpl {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entities.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	m := r.toModel(profile)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *ProfileRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProfileRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entities.Profile) error {
	profile.UpdatedAt = time.Now()
	m := r.toModel(profile)
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateScore(ctx context.Context, id uuid.UUID, score int64) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"activity_score": score,
			"updated_at":     time.Now(),
		}).Error
}

func (r *ProfileRepositoryImpl) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_available": available,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SetVerified(ctx context.Context, id uuid.UUID, verified bool, at *time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
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

func (r *ProfileRepositoryImpl) AssignAgency(ctx context.Context, id uuid.UUID, agencyID uuid.NullUUID) error {
	var value *uuid.UUID
	if agencyID.Valid {
		value = &agencyID.UUID
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"agency_id":  value,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ListByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.Profile, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ProfileRepositoryImpl) ListVerifiedByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.Profile, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("agency_id = ? AND is_verified = ?", agencyID, true).
		Order("verified_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ProfileRepositoryImpl) CountByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("agency_id = ?", agencyID).
		Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) CountVerifiedByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("agency_id = ? AND is_verified = ?", agencyID, true).
		Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) TopByAgencyID(ctx context.Context, agencyID uuid.UUID, limit int) ([]entities.ProfileSummary, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("activity_score DESC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, ms)
}

func (r *ProfileRepositoryImpl) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("is_available = ?", true).
		Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) ListAllPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_available = ?", true).
		Order("activity_score DESC").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, ms)
}

func (r *ProfileRepositoryImpl) ListRecentPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_available = ?", true).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, ms)
}

func (r *ProfileRepositoryImpl) ListPopularPaged(ctx context.Context, limit, offset int) ([]entities.ProfileSummary, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_available = ?", true).
		Order("activity_score DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, ms)
}

func (r *ProfileRepositoryImpl) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.ProfileSummary, error) {
	if len(ids) == 0 {
		return []entities.ProfileSummary{}, nil
	}
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id IN ? AND is_available = ?", ids, true).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, ms)
}

func (r *ProfileRepositoryImpl) toModel(p *entities.Profile) *models.Profile {
	m := &models.Profile{
		ID:            p.ID,
		UserID:        p.UserID,
		ProfileName:   p.ProfileName,
		Description:   p.Description.String,
		City:          p.City.String,
		Country:       p.Country.String,
		Tariff:        p.Tariff,
		Currency:      p.Currency,
		Categories:    strings.Join(p.Categories, ","),
		IsVerified:    p.IsVerified,
		IsAvailable:   p.IsAvailable,
		ActivityScore: p.ActivityScore,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.AgencyID.Valid {
		m.AgencyID = &p.AgencyID.UUID
	}
	if p.VerifiedAt.Valid {
		at := p.VerifiedAt.Time
		m.VerifiedAt = &at
	}
	return m
}

func (r *ProfileRepositoryImpl) toEntity(m *models.Profile) *entities.Profile {
	p := &entities.Profile{
		ID:            m.ID,
		UserID:        m.UserID,
		ProfileName:   m.ProfileName,
		Tariff:        m.Tariff,
		Currency:      m.Currency,
		IsVerified:    m.IsVerified,
		IsAvailable:   m.IsAvailable,
		ActivityScore: m.ActivityScore,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.AgencyID != nil {
		p.AgencyID = uuid.NullUUID{UUID: *m.AgencyID, Valid: true}
	}
	if m.Description != "" {
		p.Description.SetValid(m.Description)
	}
	if m.City != "" {
		p.City.SetValid(m.City)
	}
	if m.Country != "" {
		p.Country.SetValid(m.Country)
	}
	if m.VerifiedAt != nil {
		p.VerifiedAt = null.TimeFrom(*m.VerifiedAt)
	}
	if m.Categories != "" {
		p.Categories = strings.Split(m.Categories, ",")
	}
	return p
}

func (r *ProfileRepositoryImpl) toEntities(ms []models.Profile) []*entities.Profile {
	profiles := make([]*entities.Profile, 0, len(ms))
	for i := range ms {
		profiles = append(profiles, r.toEntity(&ms[i]))
	}
	return profiles
}

// toSummaries builds listing projections, resolving each profile's
// principal photo in one query.
func (r *ProfileRepositoryImpl) toSummaries(ctx context.Context, ms []models.Profile) ([]entities.ProfileSummary, error) {
	summaries := make([]entities.ProfileSummary, 0, len(ms))
	if len(ms) == 0 {
		return summaries, nil
	}

	ids := make([]uuid.UUID, 0, len(ms))
	for i := range ms {
		ids = append(ids, ms[i].ID)
	}

	var photos []models.ProfilePhoto
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("profile_id IN ? AND is_principal = ?", ids, true).
		Find(&photos).Error; err != nil {
		return nil, err
	}
	photoByProfile := make(map[uuid.UUID]string, len(photos))
	for i := range photos {
		photoByProfile[photos[i].ProfileID] = photos[i].URL
	}

	for i := range ms {
		m := &ms[i]
		s := entities.ProfileSummary{
			ID:            m.ID,
			ProfileName:   m.ProfileName,
			Tariff:        m.Tariff,
			Currency:      m.Currency,
			IsVerified:    m.IsVerified,
			ActivityScore: m.ActivityScore,
			CreatedAt:     m.CreatedAt,
		}
		if m.City != "" {
			s.City.SetValid(m.City)
		}
		if url, ok := photoByProfile[m.ID]; ok {
			s.PrincipalPhotoURL.SetValid(url)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
