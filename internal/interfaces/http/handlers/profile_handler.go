package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/interfaces/http/middleware"
	"agency-platform.backend/internal/interfaces/http/response"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, actor entities.Actor, input entities.CreateProfileInput) (*entities.Profile, error)
	GetOwnProfile(ctx context.Context, actor entities.Actor) (*entities.Profile, error)
	SetAvailability(ctx context.Context, actor entities.Actor, profileID uuid.UUID, available bool) error
}

type ProfileStatsService interface {
	GetStats(ctx context.Context, actor entities.Actor, profileID uuid.UUID) (*entities.ProfileStats, error)
}

// ProfileHandler handles profile-owner endpoints
type ProfileHandler struct {
	profileUsecase ProfileService
	statsUsecase   ProfileStatsService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase ProfileService, statsUsecase ProfileStatsService) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase, statsUsecase: statsUsecase}
}

// CreateProfile registers the acting user's profile
// POST /api/v1/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.CreateProfile(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, profile)
}

// GetOwnProfile serves the acting user's profile
// GET /api/v1/me/profile
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profileUsecase.GetOwnProfile(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

type availabilityInput struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// SetAvailability toggles a profile's discovery availability
// PATCH /api/v1/profiles/:id/availability
func (h *ProfileHandler) SetAvailability(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	var input availabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.profileUsecase.SetAvailability(c.Request.Context(), actor, id, *input.IsAvailable); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"isAvailable": *input.IsAvailable})
}

// GetStats serves a profile's engagement statistics
// GET /api/v1/profiles/:id/stats
func (h *ProfileHandler) GetStats(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	stats, err := h.statsUsecase.GetStats(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
