package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/interfaces/http/response"
	"agency-platform.backend/internal/usecases"
)

type PointsService interface {
	Credit(ctx context.Context, agencyID uuid.UUID, amount int, concept string) (*entities.PointsBalance, error)
	Debit(ctx context.Context, agencyID uuid.UUID, amount int, concept string) (*entities.PointsBalance, error)
	GetBalance(ctx context.Context, agencyID uuid.UUID) (*entities.PointsBalance, error)
}

type AgencyReader interface {
	GetAgency(ctx context.Context, agencyID uuid.UUID) (*entities.Agency, error)
}

// PointsHandler handles the agency points ledger endpoints. The ledger
// usecase has no notion of actors, so ownership is enforced here.
type PointsHandler struct {
	pointsUsecase PointsService
	agencyReader  AgencyReader
	policy        usecases.PermissionPolicy
}

// NewPointsHandler creates a new points handler
func NewPointsHandler(pointsUsecase PointsService, agencyReader AgencyReader) *PointsHandler {
	return &PointsHandler{
		pointsUsecase: pointsUsecase,
		agencyReader:  agencyReader,
		policy:        usecases.PermissionPolicy{},
	}
}

func (h *PointsHandler) authorize(c *gin.Context) (uuid.UUID, bool) {
	actor, agencyID, ok := actorAndID(c, "id")
	if !ok {
		return uuid.Nil, false
	}
	agency, err := h.agencyReader.GetAgency(c.Request.Context(), agencyID)
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, false
	}
	if !h.policy.CanManageAgency(actor, agency) {
		response.Error(c, domainerrors.ErrForbidden)
		return uuid.Nil, false
	}
	return agencyID, true
}

// Credit adds points to the agency balance
// POST /api/v1/agencies/:id/points/credit
func (h *PointsHandler) Credit(c *gin.Context) {
	agencyID, ok := h.authorize(c)
	if !ok {
		return
	}

	var input entities.PointsOperationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	balance, err := h.pointsUsecase.Credit(c.Request.Context(), agencyID, input.Amount, input.Concept)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, balance)
}

// Debit spends points from the agency balance
// POST /api/v1/agencies/:id/points/debit
func (h *PointsHandler) Debit(c *gin.Context) {
	agencyID, ok := h.authorize(c)
	if !ok {
		return
	}

	var input entities.PointsOperationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	balance, err := h.pointsUsecase.Debit(c.Request.Context(), agencyID, input.Amount, input.Concept)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, balance)
}

// GetBalance returns the current balance and recent movements
// GET /api/v1/agencies/:id/points
func (h *PointsHandler) GetBalance(c *gin.Context) {
	agencyID, ok := h.authorize(c)
	if !ok {
		return
	}

	balance, err := h.pointsUsecase.GetBalance(c.Request.Context(), agencyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, balance)
}
