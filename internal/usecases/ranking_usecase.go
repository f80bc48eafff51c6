package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/domain/repositories"
	"agency-platform.backend/pkg/logger"
	"agency-platform.backend/pkg/redis"
	"agency-platform.backend/pkg/utils"
)

// Cache TTL per ranking dimension. The all dimension is always computed
// live so new activity shows up immediately.
const (
	recentCacheTTL   = 5 * time.Minute
	popularCacheTTL  = 15 * time.Minute
	featuredCacheTTL = 15 * time.Minute
)

// RankingUsecase serves the paginated discovery listings, with Redis
// TTL caching on the cacheable dimensions
type RankingUsecase struct {
	profileRepo  repositories.ProfileRepository
	featuredRepo repositories.FeaturedPlacementRepository
}

// NewRankingUsecase creates a new ranking usecase
func NewRankingUsecase(
	profileRepo repositories.ProfileRepository,
	featuredRepo repositories.FeaturedPlacementRepository,
) *RankingUsecase {
	return &RankingUsecase{
		profileRepo:  profileRepo,
		featuredRepo: featuredRepo,
	}
}

// GetPage returns one page of the requested dimension. Page and size are
// clamped into valid ranges, never rejected.
func (u *RankingUsecase) GetPage(ctx context.Context, dimension entities.RankingDimension, page, size int) (*entities.RankingPage, error) {
	if !dimension.Valid() {
		return nil, domainerrors.BadRequest("unknown ranking dimension")
	}
	params := utils.ClampPagination(page, size)

	if dimension == entities.RankingAll {
		return u.computePage(ctx, dimension, params)
	}

	key := cacheKey(dimension, params.Page, params.Size)
	if cached := u.readCache(ctx, key); cached != nil {
		return cached, nil
	}

	result, err := u.computePage(ctx, dimension, params)
	if err != nil {
		return nil, err
	}
	u.writeCache(ctx, key, result, cacheTTLFor(dimension))
	return result, nil
}

func (u *RankingUsecase) computePage(ctx context.Context, dimension entities.RankingDimension, params utils.PaginationParams) (*entities.RankingPage, error) {
	var (
		items []entities.ProfileSummary
		total int64
		err   error
	)

	switch dimension {
	case entities.RankingFeatured:
		items, total, err = u.featuredPage(ctx, params)
	default:
		total, err = u.profileRepo.CountAvailable(ctx)
		if err != nil {
			return nil, err
		}
		switch dimension {
		case entities.RankingRecent:
			items, err = u.profileRepo.ListRecentPaged(ctx, params.Size, params.Offset())
		case entities.RankingPopular:
			items, err = u.profileRepo.ListPopularPaged(ctx, params.Size, params.Offset())
		default:
			items, err = u.profileRepo.ListAllPaged(ctx, params.Size, params.Offset())
		}
	}
	if err != nil {
		return nil, err
	}

	meta := utils.CalculateMeta(total, params.Page, params.Size)
	return &entities.RankingPage{
		Items:      items,
		TotalItems: meta.TotalItems,
		TotalPages: meta.TotalPages,
		PageNumber: meta.Page,
		PageSize:   meta.Size,
	}, nil
}

// featuredPage resolves profiles with a live placement at the current
// instant, keeping the placement order
func (u *RankingUsecase) featuredPage(ctx context.Context, params utils.PaginationParams) ([]entities.ProfileSummary, int64, error) {
	now := time.Now()
	total, err := u.featuredRepo.CountActiveProfiles(ctx, now)
	if err != nil {
		return nil, 0, err
	}
	ids, err := u.featuredRepo.ActiveProfileIDsPaged(ctx, now, params.Size, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	summaries, err := u.profileRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	byID := make(map[uuid.UUID]entities.ProfileSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}
	ordered := make([]entities.ProfileSummary, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, total, nil
}

// readCache returns the cached page or nil. Cache backend errors degrade
// to live computation.
func (u *RankingUsecase) readCache(ctx context.Context, key string) *entities.RankingPage {
	raw, err := redis.Get(ctx, key)
	if err != nil {
		if !redis.IsNil(err) {
			logger.Warn(ctx, "ranking cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var page entities.RankingPage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		logger.Warn(ctx, "ranking cache payload corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &page
}

// writeCache stores the page. Population races are tolerated: last
// writer wins, TTL is the only invalidation.
func (u *RankingUsecase) writeCache(ctx context.Context, key string, page *entities.RankingPage, ttl time.Duration) {
	payload, err := json.Marshal(page)
	if err != nil {
		logger.Warn(ctx, "ranking cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := redis.Set(ctx, key, payload, ttl); err != nil {
		logger.Warn(ctx, "ranking cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(dimension entities.RankingDimension, page, size int) string {
	return fmt.Sprintf("ranking:%s:%d:%d", dimension, page, size)
}

func cacheTTLFor(dimension entities.RankingDimension) time.Duration {
	switch dimension {
	case entities.RankingRecent:
		return recentCacheTTL
	case entities.RankingFeatured:
		return featuredCacheTTL
	default:
		return popularCacheTTL
	}
}
