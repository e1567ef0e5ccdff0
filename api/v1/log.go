package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/services"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// LogController handles log record endpoints for human callers
type LogController struct {
	logService     *services.LogService
	projectService *services.ProjectService
}

// NewLogController creates a new log controller
func NewLogController(db *gorm.DB) *LogController {
	return &LogController{
		logService:     services.NewLogService(db),
		projectService: services.NewProjectService(db),
	}
}

// CreateLog appends a log record to an owned project
func (c *LogController) CreateLog(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	owned := c.projectService.CheckOwnership(projectID, currentUserID(ctx))
	if owned.IsErr() {
		respondError(ctx, owned.UnwrapErr())
		return
	}

	var req dto.CreateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusCreated, c.logService.Create(projectID, req))
}

// ListLogs returns a project's logs, newest first
func (c *LogController) ListLogs(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.logService.ListByProject(projectID, currentUserID(ctx)))
}

// GetLog returns one log resolved through the ownership join
func (c *LogController) GetLog(ctx *gin.Context) {
	logID, ok := pathRecordID(ctx, "logId")
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.logService.GetByID(logID, currentUserID(ctx)))
}

// UpdateLog modifies a log in place
func (c *LogController) UpdateLog(ctx *gin.Context) {
	logID, ok := pathRecordID(ctx, "logId")
	if !ok {
		return
	}

	var req dto.UpdateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusOK, c.logService.Update(logID, req, currentUserID(ctx)))
}

// DeleteLog removes a log record
func (c *LogController) DeleteLog(ctx *gin.Context) {
	logID, ok := pathRecordID(ctx, "logId")
	if !ok {
		return
	}

	deleted := c.logService.Delete(logID, currentUserID(ctx))
	if deleted.IsErr() {
		respondError(ctx, deleted.UnwrapErr())
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListLogsByLevel filters a project's logs by level
func (c *LogController) ListLogsByLevel(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.logService.ListByLevel(projectID, ctx.Param("level"), currentUserID(ctx)))
}

// ListLogsByCategory filters a project's logs by category
func (c *LogController) ListLogsByCategory(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.logService.ListByCategory(projectID, ctx.Param("category"), currentUserID(ctx)))
}

// ListLogsByTag filters a project's logs by tag membership
func (c *LogController) ListLogsByTag(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.logService.ListByTag(projectID, ctx.Param("tag"), currentUserID(ctx)))
}

// pathRecordID validates a record ID path parameter as a UUID
func pathRecordID(ctx *gin.Context, name string) (string, bool) {
	id := ctx.Param(name)
	if uuid.Validate(id) != nil {
		respondError(ctx, utils.ValidationError("invalid "+name))
		return "", false
	}
	return id, true
}
