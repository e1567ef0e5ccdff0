package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/services"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// IngestController handles the machine surface. Callers authenticate with
// X-API-Key; the project comes from the key and never from the request.
type IngestController struct {
	logService   *services.LogService
	eventService *services.EventService
}

// NewIngestController creates a new ingest controller
func NewIngestController(db *gorm.DB) *IngestController {
	return &IngestController{
		logService:   services.NewLogService(db),
		eventService: services.NewEventService(db),
	}
}

// CreateLog appends a log record to the key's project
func (c *IngestController) CreateLog(ctx *gin.Context) {
	var req dto.CreateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusCreated, c.logService.Create(boundProjectID(ctx), req))
}

// ListLogs returns the key's project logs, newest first
func (c *IngestController) ListLogs(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.logService.ListForProject(boundProjectID(ctx)))
}

// CreateEvent records an event for the key's project
func (c *IngestController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusCreated, c.eventService.Create(boundProjectID(ctx), req))
}

// ListEvents returns the key's project events, newest first
func (c *IngestController) ListEvents(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.eventService.ListForProject(boundProjectID(ctx)))
}
