package handlers

import (
	"net/http"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// usageHandler handles the top-level usage routes. Reversal lives here
// because a usage ID alone identifies the record to undo.
type usageHandler struct {
	ledgerService portssvc.StockLedgerSvcFacade
}

func newUsageHandler(ls portssvc.StockLedgerSvcFacade) *usageHandler {
	return &usageHandler{ledgerService: ls}
}

// registerUsageRoutes registers the usage reversal route.
func registerUsageRoutes(rg *gin.RouterGroup, ledgerService portssvc.StockLedgerSvcFacade) {
	h := newUsageHandler(ledgerService)

	usages := rg.Group("/usages")
	{
		usages.DELETE("/:usageID", h.reverseUsage)
	}
}

func (h *usageHandler) reverseUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.ledgerService.ReverseUsage(c.Request.Context(), ownerID, c.Param("usageID")); err != nil {
		respondServiceError(c, logger, err, "Failed to reverse usage")
		return
	}

	c.Status(http.StatusNoContent)
}
