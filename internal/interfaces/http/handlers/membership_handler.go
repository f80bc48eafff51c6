package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/interfaces/http/middleware"
	"agency-platform.backend/internal/interfaces/http/response"
	"agency-platform.backend/pkg/utils"
)

type MembershipService interface {
	Submit(ctx context.Context, actor entities.Actor, profileID, agencyID uuid.UUID) (*entities.MembershipRequest, error)
	Approve(ctx context.Context, actor entities.Actor, requestID uuid.UUID) error
	Reject(ctx context.Context, actor entities.Actor, requestID uuid.UUID) error
	Cancel(ctx context.Context, actor entities.Actor, requestID uuid.UUID, motive string) error
	GetPending(ctx context.Context, actor entities.Actor, agencyID uuid.UUID) ([]*entities.MembershipRequest, error)
	GetHistory(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, filter entities.MembershipHistoryFilter, page, size int) ([]*entities.MembershipRequest, utils.PaginationMeta, error)
}

// MembershipHandler handles membership request endpoints
type MembershipHandler struct {
	membershipUsecase MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipUsecase MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipUsecase: membershipUsecase}
}

type submitMembershipInput struct {
	ProfileID uuid.UUID `json:"profileId" binding:"required"`
	AgencyID  uuid.UUID `json:"agencyId" binding:"required"`
}

// Submit creates a pending membership request
// POST /api/v1/membership-requests
func (h *MembershipHandler) Submit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input submitMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request, err := h.membershipUsecase.Submit(c.Request.Context(), actor, input.ProfileID, input.AgencyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// Approve accepts a pending request and joins the profile to the roster
// POST /api/v1/membership-requests/:id/approve
func (h *MembershipHandler) Approve(c *gin.Context) {
	actor, requestID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	if err := h.membershipUsecase.Approve(c.Request.Context(), actor, requestID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": entities.MembershipStateApproved})
}

// Reject declines a pending request
// POST /api/v1/membership-requests/:id/reject
func (h *MembershipHandler) Reject(c *gin.Context) {
	actor, requestID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	if err := h.membershipUsecase.Reject(c.Request.Context(), actor, requestID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": entities.MembershipStateRejected})
}

type cancelMembershipInput struct {
	Motive string `json:"motive,omitempty"`
}

// Cancel withdraws a pending request
// POST /api/v1/membership-requests/:id/cancel
func (h *MembershipHandler) Cancel(c *gin.Context) {
	actor, requestID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	var input cancelMembershipInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	if err := h.membershipUsecase.Cancel(c.Request.Context(), actor, requestID, input.Motive); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": entities.MembershipStateCancelled})
}

// GetPending lists an agency's open requests
// GET /api/v1/agencies/:id/membership-requests/pending
func (h *MembershipHandler) GetPending(c *gin.Context) {
	actor, agencyID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	requests, err := h.membershipUsecase.GetPending(c.Request.Context(), actor, agencyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, requests)
}

// GetHistory lists an agency's resolved requests with filters
// GET /api/v1/agencies/:id/membership-requests?from=&to=&state=&page=&pageSize=
func (h *MembershipHandler) GetHistory(c *gin.Context) {
	actor, agencyID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	var filter entities.MembershipHistoryFilter
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid 'from' timestamp"))
			return
		}
		filter.DateFrom = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid 'to' timestamp"))
			return
		}
		filter.DateTo = &parsed
	}
	if raw := c.Query("state"); raw != "" {
		state := entities.MembershipRequestState(raw)
		filter.State = &state
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(utils.DefaultPageSize)))

	requests, meta, err := h.membershipUsecase.GetHistory(c.Request.Context(), actor, agencyID, filter, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      requests,
		"pagination": meta,
	})
}
