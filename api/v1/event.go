package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/services"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// EventController handles event record endpoints for human callers
type EventController struct {
	eventService   *services.EventService
	projectService *services.ProjectService
}

// NewEventController creates a new event controller
func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService:   services.NewEventService(db),
		projectService: services.NewProjectService(db),
	}
}

// CreateEvent records an event for an owned project
func (c *EventController) CreateEvent(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	owned := c.projectService.CheckOwnership(projectID, currentUserID(ctx))
	if owned.IsErr() {
		respondError(ctx, owned.UnwrapErr())
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusCreated, c.eventService.Create(projectID, req))
}

// ListEvents returns a project's events, newest first
func (c *EventController) ListEvents(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.eventService.ListByProject(projectID, currentUserID(ctx)))
}

// GetEvent returns one event resolved through the ownership join
func (c *EventController) GetEvent(ctx *gin.Context) {
	eventID, ok := pathRecordID(ctx, "eventId")
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.eventService.GetByID(eventID, currentUserID(ctx)))
}

// UpdateEvent modifies an event in place, validating any status change
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	eventID, ok := pathRecordID(ctx, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusOK, c.eventService.Update(eventID, req, currentUserID(ctx)))
}

// DeleteEvent removes an event record
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	eventID, ok := pathRecordID(ctx, "eventId")
	if !ok {
		return
	}

	deleted := c.eventService.Delete(eventID, currentUserID(ctx))
	if deleted.IsErr() {
		respondError(ctx, deleted.UnwrapErr())
		return
	}

	ctx.Status(http.StatusNoContent)
}
