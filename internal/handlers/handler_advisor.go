package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// advisorHandler handles advisor suggestion requests.
type advisorHandler struct {
	advisorService portssvc.AdvisorSvcFacade
}

func newAdvisorHandler(as portssvc.AdvisorSvcFacade) *advisorHandler {
	return &advisorHandler{advisorService: as}
}

// registerAdvisorRoutes registers routes related to the advisor.
func registerAdvisorRoutes(rg *gin.RouterGroup, advisorService portssvc.AdvisorSvcFacade) {
	h := newAdvisorHandler(advisorService)

	advisor := rg.Group("/advisor")
	{
		advisor.GET("/suggestions", h.suggestions)
		advisor.POST("/apply", h.apply)
	}
}

func (h *advisorHandler) suggestions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	suggestions, err := h.advisorService.Suggest(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get suggestions")
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
}

func (h *advisorHandler) apply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplySuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplySuggestion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.advisorService.Apply(c.Request.Context(), ownerID, req); err != nil {
		respondServiceError(c, logger, err, "Failed to apply suggestion")
		return
	}

	c.Status(http.StatusNoContent)
}
