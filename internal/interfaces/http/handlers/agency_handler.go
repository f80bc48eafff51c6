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

type AgencyService interface {
	GetAgency(ctx context.Context, agencyID uuid.UUID) (*entities.Agency, error)
	GetProfiles(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.Profile, error)
	GetVerifiedProfiles(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.Profile, error)
	GetPendingVerificationProfiles(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.Profile, error)
	RemoveProfile(ctx context.Context, actor entities.Actor, agencyID, profileID uuid.UUID) error
	GetDashboard(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) (*entities.AgencyDashboard, error)
	CreatePlacement(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, input entities.CreatePlacementInput) (*entities.FeaturedPlacement, error)
	GetPlacements(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.FeaturedPlacement, error)
	ListAgencies(ctx context.Context, actor entities.Actor) ([]*entities.Agency, error)
	ListUnverifiedAgencies(ctx context.Context, actor entities.Actor) ([]*entities.Agency, error)
}

// AgencyHandler handles agency roster and dashboard endpoints
type AgencyHandler struct {
	agencyUsecase AgencyService
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(agencyUsecase AgencyService) *AgencyHandler {
	return &AgencyHandler{agencyUsecase: agencyUsecase}
}

func actorAndID(c *gin.Context, param string) (entities.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return entities.Actor{}, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid ID"))
		return entities.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}

// GetAgency serves a public agency view
// GET /api/v1/agencies/:id
func (h *AgencyHandler) GetAgency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid agency ID"))
		return
	}

	agency, err := h.agencyUsecase.GetAgency(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, agency)
}

// GetProfiles serves the agency roster
// GET /api/v1/agencies/:id/profiles
func (h *AgencyHandler) GetProfiles(c *gin.Context) {
	actor, id, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	var (
		profiles []*entities.Profile
		err      error
	)
	switch c.Query("verification") {
	case "verified":
		profiles, err = h.agencyUsecase.GetVerifiedProfiles(c.Request.Context(), actor, id)
	case "pending":
		profiles, err = h.agencyUsecase.GetPendingVerificationProfiles(c.Request.Context(), actor, id)
	default:
		profiles, err = h.agencyUsecase.GetProfiles(c.Request.Context(), actor, id)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profiles": profiles})
}

// RemoveProfile detaches a profile from the roster
// DELETE /api/v1/agencies/:id/profiles/:profileId
func (h *AgencyHandler) RemoveProfile(c *gin.Context) {
	actor, id, ok := actorAndID(c, "id")
	if !ok {
		return
	}
	profileID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	if err := h.agencyUsecase.RemoveProfile(c.Request.Context(), actor, id, profileID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// GetDashboard serves the agency management counters
// GET /api/v1/agencies/:id/dashboard
func (h *AgencyHandler) GetDashboard(c *gin.Context) {
	actor, id, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.agencyUsecase.GetDashboard(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}

// CreatePlacement opens a featured placement for a roster profile
// POST /api/v1/agencies/:id/placements
func (h *AgencyHandler) CreatePlacement(c *gin.Context) {
	actor, id, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	var input entities.CreatePlacementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	placement, err := h.agencyUsecase.CreatePlacement(c.Request.Context(), actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, placement)
}

// GetPlacements lists the agency's placements
// GET /api/v1/agencies/:id/placements
func (h *AgencyHandler) GetPlacements(c *gin.Context) {
	actor, id, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	placements, err := h.agencyUsecase.GetPlacements(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"placements": placements})
}

// ListAgencies lists all agencies, admin only
// GET /api/v1/admin/agencies?verification=pending
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var (
		agencies []*entities.Agency
		err      error
	)
	if c.Query("verification") == "pending" {
		agencies, err = h.agencyUsecase.ListUnverifiedAgencies(c.Request.Context(), actor)
	} else {
		agencies, err = h.agencyUsecase.ListAgencies(c.Request.Context(), actor)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"agencies": agencies})
}
