package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// supplyHandler handles HTTP requests related to supplies.
type supplyHandler struct {
	supplyService portssvc.SupplySvcFacade
}

func newSupplyHandler(ss portssvc.SupplySvcFacade) *supplyHandler {
	return &supplyHandler{supplyService: ss}
}

// registerSupplyRoutes registers routes related to supplies.
func registerSupplyRoutes(rg *gin.RouterGroup, supplyService portssvc.SupplySvcFacade) {
	h := newSupplyHandler(supplyService)

	supplies := rg.Group("/supplies")
	{
		supplies.POST("", h.createSupply)
		supplies.GET("", h.listSupplies)
		supplies.GET("/:supplyID", h.getSupply)
		supplies.PUT("/:supplyID", h.updateSupply)
		supplies.POST("/:supplyID/restock", h.restockSupply)
		supplies.DELETE("/:supplyID", h.deleteSupply)
	}
}

func (h *supplyHandler) createSupply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupply", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supply, err := h.supplyService.CreateSupply(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create supply")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplyResponse(supply))
}

func (h *supplyHandler) listSupplies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supplies, err := h.supplyService.ListSupplies(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list supplies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSupplyResponse(supplies))
}

func (h *supplyHandler) getSupply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supply, err := h.supplyService.GetSupplyByID(c.Request.Context(), ownerID, c.Param("supplyID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve supply")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplyResponse(supply))
}

func (h *supplyHandler) updateSupply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupply", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supply, err := h.supplyService.UpdateSupply(c.Request.Context(), ownerID, c.Param("supplyID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update supply")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplyResponse(supply))
}

func (h *supplyHandler) restockSupply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RestockSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RestockSupply", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supply, err := h.supplyService.RestockSupply(c.Request.Context(), ownerID, c.Param("supplyID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to restock supply")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplyResponse(supply))
}

func (h *supplyHandler) deleteSupply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.supplyService.DeleteSupply(c.Request.Context(), ownerID, c.Param("supplyID")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete supply")
		return
	}

	c.Status(http.StatusNoContent)
}
