package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/infrastructure/jobs"
	"agency-platform.backend/internal/interfaces/http/middleware"
	"agency-platform.backend/internal/interfaces/http/response"
)

type RankingService interface {
	GetPage(ctx context.Context, dimension entities.RankingDimension, page, size int) (*entities.RankingPage, error)
}

type ProfileReader interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entities.Profile, error)
}

type ContactRecorder interface {
	RecordContact(ctx context.Context, profileID uuid.UUID, contactType entities.ContactType, visitorID uuid.NullUUID, ip string) error
}

// DiscoveryHandler serves the public profile listings. Profile reads
// enqueue a visit event; the response never waits on it.
type DiscoveryHandler struct {
	rankingUsecase RankingService
	profileUsecase ProfileReader
	contacts       ContactRecorder
	recorder       *jobs.ActivityRecorder
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(
	rankingUsecase RankingService,
	profileUsecase ProfileReader,
	contacts ContactRecorder,
	recorder *jobs.ActivityRecorder,
) *DiscoveryHandler {
	return &DiscoveryHandler{
		rankingUsecase: rankingUsecase,
		profileUsecase: profileUsecase,
		contacts:       contacts,
		recorder:       recorder,
	}
}

// ListProfiles serves one page of a discovery dimension
// GET /api/v1/profiles?dimension=all|recent|popular|featured&page=&pageSize=
func (h *DiscoveryHandler) ListProfiles(c *gin.Context) {
	dimension := entities.RankingDimension(c.DefaultQuery("dimension", string(entities.RankingAll)))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.rankingUsecase.GetPage(c.Request.Context(), dimension, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetProfile serves a public profile view and records the visit
// GET /api/v1/profiles/:id
func (h *DiscoveryHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	profile, err := h.profileUsecase.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recorder.Enqueue(c.Request.Context(), jobs.VisitEvent{
		ProfileID: id,
		VisitorID: middleware.VisitorID(c),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	response.Success(c, http.StatusOK, profile)
}

// RecordContact records a contact event against a profile
// POST /api/v1/profiles/:id/contacts
func (h *DiscoveryHandler) RecordContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	var input entities.RecordContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	err = h.contacts.RecordContact(c.Request.Context(), id,
		entities.ContactType(input.ContactType), middleware.VisitorID(c), c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"recorded": true})
}
