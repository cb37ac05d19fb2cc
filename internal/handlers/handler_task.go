package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests related to tasks, including the usage
// sub-resource recorded through the stock ledger.
type taskHandler struct {
	taskService   portssvc.TaskSvcFacade
	ledgerService portssvc.StockLedgerSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade, ls portssvc.StockLedgerSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts, ledgerService: ls}
}

// registerTaskRoutes registers routes related to tasks and their usages.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade, ledgerService portssvc.StockLedgerSvcFacade) {
	h := newTaskHandler(taskService, ledgerService)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:taskID", h.getTask)
		tasks.PUT("/:taskID", h.updateTask)
		tasks.DELETE("/:taskID", h.deleteTask)
		tasks.POST("/:taskID/usages", h.applyUsage)
		tasks.GET("/:taskID/usages", h.listUsages)
	}
}

func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTaskResponse(tasks))
}

func (h *taskHandler) getTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), ownerID, c.Param("taskID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// updateTask saves the edit. When the write succeeded but a completion side
// effect failed, the response still carries the task plus a warning so the
// client knows the edit is durable.
func (h *taskHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), ownerID, c.Param("taskID"), req)
	if err != nil {
		if task == nil {
			respondServiceError(c, logger, err, "Failed to update task")
			return
		}
		logger.Warn("Task updated with side-effect failures", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.UpdateTaskResponse{
			Task:    dto.ToTaskResponse(task),
			Warning: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.UpdateTaskResponse{Task: dto.ToTaskResponse(task)})
}

func (h *taskHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), ownerID, c.Param("taskID")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *taskHandler) applyUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyUsage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	usage, err := h.ledgerService.ApplyUsage(c.Request.Context(), ownerID, c.Param("taskID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record usage")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUsageResponse(usage))
}

func (h *taskHandler) listUsages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	usages, err := h.ledgerService.ListUsages(c.Request.Context(), ownerID, c.Param("taskID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list usages")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsageResponse(usages))
}
