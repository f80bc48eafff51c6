package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "agency-platform.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error onto its HTTP status and sends it
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status := statusForSentinel(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// never leak internals to the caller
		message = "internal server error"
	}
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}

func statusForSentinel(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrAgencyNotVerified):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrInvalidStateTransition),
		errors.Is(err, domainerrors.ErrAlreadyVerified):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerrors.ErrProfileNotInAgency):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
