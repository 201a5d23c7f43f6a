package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
)

// respondError translates service errors into HTTP responses. Sentinel errors
// map to their natural status; anything else is a 500 with a generic message
// so internals never leak to clients.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var status int
	var message string

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrForbidden):
		status, message = http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrInvalidState):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrAlreadyResolved):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrLimitExceeded):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperrors.ErrPayment):
		status, message = http.StatusBadGateway, "Payment processing failed"
	default:
		status, message = http.StatusInternalServerError, "Failed to "+action
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Rejected request to "+action, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": message})
}
