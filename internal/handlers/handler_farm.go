package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// farmHandler handles HTTP requests related to the farm singleton.
type farmHandler struct {
	farmService portssvc.FarmSvcFacade
}

func newFarmHandler(fs portssvc.FarmSvcFacade) *farmHandler {
	return &farmHandler{farmService: fs}
}

// registerFarmRoutes registers routes related to the farm.
func registerFarmRoutes(rg *gin.RouterGroup, farmService portssvc.FarmSvcFacade) {
	h := newFarmHandler(farmService)

	farm := rg.Group("/farm")
	{
		farm.POST("", h.createFarm)
		farm.GET("", h.getFarm)
		farm.PUT("", h.updateFarm)
	}
}

func (h *farmHandler) createFarm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFarm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	farm, err := h.farmService.CreateFarm(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create farm")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFarmResponse(farm))
}

func (h *farmHandler) getFarm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	farm, err := h.farmService.GetFarm(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve farm")
		return
	}

	c.JSON(http.StatusOK, dto.ToFarmResponse(farm))
}

func (h *farmHandler) updateFarm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFarm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	farm, err := h.farmService.UpdateFarm(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update farm")
		return
	}

	c.JSON(http.StatusOK, dto.ToFarmResponse(farm))
}
