package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// syncHandler handles the one-shot local-to-hosted migration.
type syncHandler struct {
	migrationService portssvc.MigrationSvcFacade
}

func newSyncHandler(ms portssvc.MigrationSvcFacade) *syncHandler {
	return &syncHandler{migrationService: ms}
}

// registerSyncRoutes registers the migration route.
func registerSyncRoutes(rg *gin.RouterGroup, migrationService portssvc.MigrationSvcFacade) {
	h := newSyncHandler(migrationService)

	sync := rg.Group("/sync")
	{
		sync.POST("/migrate", h.migrate)
	}
}

// migrate adopts every device-local record into the authenticated account.
// A partial failure still reports the records that landed; re-running picks
// up where the failed type left off.
func (h *syncHandler) migrate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	migrated, err := h.migrationService.Run(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Migration failed", slog.String("error", err.Error()), slog.Int("migrated_records", migrated))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":           "Migration failed; local records for unfinished types were preserved",
			"migratedRecords": migrated,
		})
		return
	}

	c.JSON(http.StatusOK, dto.MigrateResponse{MigratedRecords: migrated})
}
