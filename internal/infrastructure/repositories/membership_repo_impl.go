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

// MembershipRequestRepositoryImpl implements MembershipRequestRepository
type MembershipRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewMembershipRequestRepository(db *gorm.DB) *MembershipRequestRepositoryImpl {
	return &MembershipRequestRepositoryImpl{db: db}
}

func (r *MembershipRequestRepositoryImpl) Create(ctx context.Context, request *entities.MembershipRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	m := r.toModel(request)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *MembershipRequestRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.MembershipRequest, error) {
	var m models.MembershipRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MembershipRequestRepositoryImpl) Update(ctx context.Context, request *entities.MembershipRequest) error {
	m := r.toModel(request)
	m.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MembershipRequest{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"state":        m.State,
			"responded_at": m.RespondedAt,
			"motive":       m.Motive,
			"updated_at":   m.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MembershipRequestRepositoryImpl) ExistsPending(ctx context.Context, profileID, agencyID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MembershipRequest{}).
		Where("profile_id = ? AND agency_id = ? AND state = ?",
			profileID, agencyID, string(entities.MembershipStatePending)).
		Count(&count).Error
	return count > 0, err
}

func (r *MembershipRequestRepositoryImpl) ListPendingByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*entities.MembershipRequest, error) {
	var ms []models.MembershipRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("agency_id = ? AND state = ?", agencyID, string(entities.MembershipStatePending)).
		Order("submitted_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *MembershipRequestRepositoryImpl) CountPendingByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MembershipRequest{}).
		Where("agency_id = ? AND state = ?", agencyID, string(entities.MembershipStatePending)).
		Count(&count).Error
	return count, err
}

func (r *MembershipRequestRepositoryImpl) ListHistoryByAgencyID(ctx context.Context, agencyID uuid.UUID, filter entities.MembershipHistoryFilter, limit, offset int) ([]*entities.MembershipRequest, int64, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MembershipRequest{}).
		Where("agency_id = ?", agencyID)
	if filter.State != nil {
		q = q.Where("state = ?", string(*filter.State))
	}
	if filter.DateFrom != nil {
		q = q.Where("submitted_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("submitted_at < ?", *filter.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.MembershipRequest
	if err := q.Order("submitted_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return r.toEntities(ms), total, nil
}

func (r *MembershipRequestRepositoryImpl) toModel(e *entities.MembershipRequest) *models.MembershipRequest {
	m := &models.MembershipRequest{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		AgencyID:    e.AgencyID,
		State:       string(e.State),
		SubmittedAt: e.SubmittedAt,
		Motive:      e.Motive.String,
	}
	if e.RespondedAt.Valid {
		at := e.RespondedAt.Time
		m.RespondedAt = &at
	}
	return m
}

func (r *MembershipRequestRepositoryImpl) toEntity(m *models.MembershipRequest) *entities.MembershipRequest {
	e := &entities.MembershipRequest{
		ID:          m.ID,
		ProfileID:   m.ProfileID,
		AgencyID:    m.AgencyID,
		State:       entities.MembershipRequestState(m.State),
		SubmittedAt: m.SubmittedAt,
	}
	if m.RespondedAt != nil {
		e.RespondedAt = null.TimeFrom(*m.RespondedAt)
	}
	if m.Motive != "" {
		e.Motive.SetValid(m.Motive)
	}
	return e
}

func (r *MembershipRequestRepositoryImpl) toEntities(ms []models.MembershipRequest) []*entities.MembershipRequest {
	requests := make([]*entities.MembershipRequest, 0, len(ms))
	for i := range ms {
		requests = append(requests, r.toEntity(&ms[i]))
	}
	return requests
}

// AgencyRegistrationRepositoryImpl implements AgencyRegistrationRepository
type AgencyRegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewAgencyRegistrationRepository(db *gorm.DB) *AgencyRegistrationRepositoryImpl {
	return &AgencyRegistrationRepositoryImpl{db: db}
}

func (r *AgencyRegistrationRepositoryImpl) Create(ctx context.Context, request *entities.AgencyRegistrationRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	m := r.toModel(request)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *AgencyRegistrationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.AgencyRegistrationRequest, error) {
	var m models.AgencyRegistrationRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AgencyRegistrationRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.AgencyRegistrationRequest, error) {
	var m models.AgencyRegistrationRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("email = ?", email).
		Order("submitted_at DESC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AgencyRegistrationRepositoryImpl) Update(ctx context.Context, request *entities.AgencyRegistrationRequest) error {
	m := r.toModel(request)
	m.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.AgencyRegistrationRequest{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"state":        m.State,
			"motive":       m.Motive,
			"responded_at": m.RespondedAt,
			"updated_at":   m.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AgencyRegistrationRepositoryImpl) ListPending(ctx context.Context) ([]*entities.AgencyRegistrationRequest, error) {
	var ms []models.AgencyRegistrationRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("state = ?", string(entities.RegistrationStatePending)).
		Order("submitted_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	requests := make([]*entities.AgencyRegistrationRequest, 0, len(ms))
	for i := range ms {
		requests = append(requests, r.toEntity(&ms[i]))
	}
	return requests, nil
}

func (r *AgencyRegistrationRepositoryImpl) toModel(e *entities.AgencyRegistrationRequest) *models.AgencyRegistrationRequest {
	m := &models.AgencyRegistrationRequest{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Description:  e.Description.String,
		LogoURL:      e.LogoURL.String,
		Website:      e.Website.String,
		Address:      e.Address.String,
		City:         e.City.String,
		Country:      e.Country.String,
		State:        string(e.State),
		Motive:       e.Motive.String,
		SubmittedAt:  e.SubmittedAt,
	}
	if e.RespondedAt.Valid {
		at := e.RespondedAt.Time
		m.RespondedAt = &at
	}
	return m
}

func (r *AgencyRegistrationRepositoryImpl) toEntity(m *models.AgencyRegistrationRequest) *entities.AgencyRegistrationRequest {
	e := &entities.AgencyRegistrationRequest{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		State:        entities.RegistrationRequestState(m.State),
		SubmittedAt:  m.SubmittedAt,
	}
	if m.Description != "" {
		e.Description.SetValid(m.Description)
	}
	if m.LogoURL != "" {
		e.LogoURL.SetValid(m.LogoURL)
	}
	if m.Website != "" {
		e.Website.SetValid(m.Website)
	}
	if m.Address != "" {
		e.Address.SetValid(m.Address)
	}
	if m.City != "" {
		e.City.SetValid(m.City)
	}
	if m.Country != "" {
		e.Country.SetValid(m.Country)
	}
	if m.Motive != "" {
		e.Motive.SetValid(m.Motive)
	}
	if m.RespondedAt != nil {
		e.RespondedAt = null.TimeFrom(*m.RespondedAt)
	}
	return e
}
