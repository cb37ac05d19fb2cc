package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service-layer error onto the HTTP response.
// fallbackMsg is what the client sees for unexpected failures; the real error
// only goes to the log.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var quotaErr *apperrors.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		logger.Warn("Quota limit reached", slog.String("feature", quotaErr.Feature), slog.Int64("limit", quotaErr.Limit))
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":   quotaErr.Error(),
			"feature": quotaErr.Feature,
			"limit":   quotaErr.Limit,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrInsufficientStock):
		logger.Warn("Insufficient stock", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnsupported):
		logger.Warn("Unsupported on this backend", slog.String("error", err.Error()))
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
