package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	domainerrors "agency-platform.backend/internal/domain/errors"
	"agency-platform.backend/internal/interfaces/http/response"
)

type VerificationService interface {
	VerifyProfile(ctx context.Context, actor entities.Actor, agencyID, profileID uuid.UUID, chargeAmount float64, notes string) (*entities.VerificationRecord, error)
	VerifyBatch(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, profileIDs []uuid.UUID, unitCharge float64, notes string) ([]*entities.VerificationRecord, error)
	RevokeVerification(ctx context.Context, actor entities.Actor, profileID uuid.UUID) error
	SetAgencyVerified(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, verified bool) error
	GetCommissions(ctx context.Context, actor entities.Actor, agencyID uuid.UUID, from, to time.Time) (*entities.AgencyCommissionReport, error)
}

// VerificationHandler handles profile and agency verification endpoints
type VerificationHandler struct {
	verificationUsecase VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// VerifyProfile verifies one roster profile
// POST /api/v1/agencies/:id/profiles/:profileId/verify
func (h *VerificationHandler) VerifyProfile(c *gin.Context) {
	actor, agencyID, ok := actorAndID(c, "id")
	if !ok {
		return
	}
	profileID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile ID"))
		return
	}

	var input entities.VerifyProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.verificationUsecase.VerifyProfile(c.Request.Context(), actor, agencyID, profileID, input.ChargeAmount, input.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, record)
}

// VerifyBatch verifies a set of roster profiles with a volume discount
// POST /api/v1/agencies/:id/verifications/batch
func (h *VerificationHandler) VerifyBatch(c *gin.Context) {
	actor, agencyID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	var input entities.VerifyBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	records, err := h.verificationUsecase.VerifyBatch(c.Request.Context(), actor, agencyID, input.ProfileIDs, input.UnitCharge, input.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"verified": records,
		"requested": len(input.ProfileIDs),
	})
}

// RevokeVerification reverts a profile to unverified
// DELETE /api/v1/profiles/:id/verification
func (h *VerificationHandler) RevokeVerification(c *gin.Context) {
	actor, profileID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	if err := h.verificationUsecase.RevokeVerification(c.Request.Context(), actor, profileID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"revoked": true})
}

type agencyVerificationInput struct {
	IsVerified *bool `json:"isVerified" binding:"required"`
}

// SetAgencyVerified flips an agency's platform verification, admin only
// PATCH /api/v1/admin/agencies/:id/verification
func (h *VerificationHandler) SetAgencyVerified(c *gin.Context) {
	actor, agencyID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	var input agencyVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.verificationUsecase.SetAgencyVerified(c.Request.Context(), actor, agencyID, *input.IsVerified); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"isVerified": *input.IsVerified})
}

// GetCommissions summarizes the agency's verification commissions
// GET /api/v1/agencies/:id/commissions?from=&to=
func (h *VerificationHandler) GetCommissions(c *gin.Context) {
	actor, agencyID, ok := actorAndID(c, "id")
	if !ok {
		return
	}

	to := time.Now()
	from := to.AddDate(0, -1, 0)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid 'from' timestamp"))
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid 'to' timestamp"))
			return
		}
		to = parsed
	}

	report, err := h.verificationUsecase.GetCommissions(c.Request.Context(), actor, agencyID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, report)
}
