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

type RegistrationService interface {
	Submit(ctx context.Context, input entities.AgencyRegistrationInput) (*entities.AgencyRegistrationRequest, error)
	Approve(ctx context.Context, actor entities.Actor, requestID uuid.UUID) (*entities.Agency, error)
	Reject(ctx context.Context, actor entities.Actor, requestID uuid.UUID, motive string) error
	GetPendingRegistrations(ctx context.Context, actor entities.Actor) ([]*entities.AgencyRegistrationRequest, error)
}

// RegistrationHandler handles agency sign-up and its admin review
type RegistrationHandler struct {
	registrationUsecase RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationUsecase RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationUsecase: registrationUsecase}
}

// Submit accepts a public agency registration request
// POST /api/v1/agency-registrations
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var input entities.AgencyRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request, err := h.registrationUsecase.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":    request.ID,
		"state": request.State,
	})
}

// Approve provisions the agency account, admin only
// POST /api/v1/admin/agency-registrations/:id/approve
func (h *RegistrationHandler) Approve(c *gin.Context) {
	actor, requestID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	agency, err := h.registrationUsecase.Approve(c.Request.Context(), actor, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, agency)
}

type rejectRegistrationInput struct {
	Motive string `json:"motive" binding:"required"`
}

// Reject declines a registration request with a motive, admin only
// POST /api/v1/admin/agency-registrations/:id/reject
func (h *RegistrationHandler) Reject(c *gin.Context) {
	actor, requestID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	var input rejectRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.registrationUsecase.Reject(c.Request.Context(), actor, requestID, input.Motive); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": entities.RegistrationStateRejected})
}

// ListPending lists registration requests awaiting review, admin only
// GET /api/v1/admin/agency-registrations/pending
func (h *RegistrationHandler) ListPending(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	requests, err := h.registrationUsecase.GetPendingRegistrations(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, requests)
}
