package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lotHandler handles HTTP requests related to lots.
type lotHandler struct {
	lotService portssvc.LotSvcFacade
}

func newLotHandler(ls portssvc.LotSvcFacade) *lotHandler {
	return &lotHandler{lotService: ls}
}

// registerLotRoutes registers routes related to lots.
func registerLotRoutes(rg *gin.RouterGroup, lotService portssvc.LotSvcFacade) {
	h := newLotHandler(lotService)

	lots := rg.Group("/lots")
	{
		lots.POST("", h.createLot)
		lots.GET("", h.listLots)
		lots.GET("/:lotID", h.getLot)
		lots.PUT("/:lotID", h.updateLot)
		lots.DELETE("/:lotID", h.deleteLot)
	}
}

func (h *lotHandler) createLot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lot, err := h.lotService.CreateLot(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create lot")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLotResponse(lot))
}

func (h *lotHandler) listLots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lots, err := h.lotService.ListLots(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list lots")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLotResponse(lots))
}

func (h *lotHandler) getLot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lot, err := h.lotService.GetLotByID(c.Request.Context(), ownerID, c.Param("lotID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve lot")
		return
	}

	c.JSON(http.StatusOK, dto.ToLotResponse(lot))
}

func (h *lotHandler) updateLot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lot, err := h.lotService.UpdateLot(c.Request.Context(), ownerID, c.Param("lotID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update lot")
		return
	}

	c.JSON(http.StatusOK, dto.ToLotResponse(lot))
}

func (h *lotHandler) deleteLot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.lotService.DeleteLot(c.Request.Context(), ownerID, c.Param("lotID")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete lot")
		return
	}

	c.Status(http.StatusNoContent)
}
