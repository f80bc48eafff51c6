package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"agency-platform.backend/internal/domain/entities"
	"agency-platform.backend/internal/infrastructure/models"
)

// VisitRepositoryImpl implements VisitRepository
type VisitRepositoryImpl struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepositoryImpl {
	return &VisitRepositoryImpl{db: db}
}

func (r *VisitRepositoryImpl) Create(ctx context.Context, visit *entities.ProfileVisit) error {
	if visit.ID == uuid.Nil {
		visit.ID = uuid.New()
	}
	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now()
	}

	m := &models.ProfileVisit{
		ID:        visit.ID,
		ProfileID: visit.ProfileID,
		IP:        visit.IP,
		UserAgent: visit.UserAgent,
		VisitedAt: visit.VisitedAt,
		CreatedAt: time.Now(),
	}
	if visit.VisitorID.Valid {
		m.VisitorID = &visit.VisitorID.UUID
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *VisitRepositoryImpl) CountByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ProfileVisit{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	return count, err
}

func (r *VisitRepositoryImpl) CountSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ProfileVisit{}).
		Where("profile_id = ? AND visited_at >= ?", profileID, since).
		Count(&count).Error
	return count, err
}

// VisitsPerDay buckets visits by calendar day over the last days days.
// Days without visits are filled with zero counts so charts stay contiguous.
func (r *VisitRepositoryImpl) VisitsPerDay(ctx context.Context, profileID uuid.UUID, days int) ([]entities.VisitsOnDay, error) {
	since := time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)

	var ms []models.ProfileVisit
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("profile_id = ? AND visited_at >= ?", profileID, since).
		Order("visited_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, days)
	for i := range ms {
		counts[ms[i].VisitedAt.Format("2006-01-02")]++
	}

	result := make([]entities.VisitsOnDay, 0, days)
	for d := 0; d < days; d++ {
		day := since.AddDate(0, 0, d)
		result = append(result, entities.VisitsOnDay{
			Day:    day,
			Visits: counts[day.Format("2006-01-02")],
		})
	}
	return result, nil
}

// ContactRepositoryImpl implements ContactRepository
type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *entities.ProfileContact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if contact.ContactedAt.IsZero() {
		contact.ContactedAt = time.Now()
	}

	m := &models.ProfileContact{
		ID:           contact.ID,
		ProfileID:    contact.ProfileID,
		ContactType:  string(contact.ContactType),
		IP:           contact.IP,
		IsRegistered: contact.IsRegistered,
		ContactedAt:  contact.ContactedAt,
		CreatedAt:    time.Now(),
	}
	if contact.VisitorID.Valid {
		m.VisitorID = &contact.VisitorID.UUID
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *ContactRepositoryImpl) CountByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ProfileContact{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	return count, err
}

func (r *ContactRepositoryImpl) CountSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ProfileContact{}).
		Where("profile_id = ? AND contacted_at >= ?", profileID, since).
		Count(&count).Error
	return count, err
}

func (r *ContactRepositoryImpl) CountByType(ctx context.Context, profileID uuid.UUID) (map[string]int64, error) {
	type row struct {
		ContactType string
		Total       int64
	}
	var rows []row
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.ProfileContact{}).
		Select("contact_type, COUNT(*) as total").
		Where("profile_id = ?", profileID).
		Group("contact_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ContactType] = r.Total
	}
	return counts, nil
}
