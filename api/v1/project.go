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

// ProjectController handles project CRUD endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{projectService: services.NewProjectService(db)}
}

// pathProjectID validates the :id path parameter as a UUID. Malformed IDs
// are rejected before they reach the store.
func pathProjectID(ctx *gin.Context) (string, bool) {
	projectID := ctx.Param("id")
	if uuid.Validate(projectID) != nil {
		respondError(ctx, utils.ValidationError("invalid project id"))
		return "", false
	}
	return projectID, true
}

// ListProjects returns the caller's projects, newest first
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.projectService.ListByOwner(currentUserID(ctx)))
}

// CreateProject registers a new project owned by the caller
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusCreated, c.projectService.Create(req.Name, currentUserID(ctx)))
}

// GetProject returns one project after the ownership check
func (c *ProjectController) GetProject(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	respond(ctx, http.StatusOK, c.projectService.CheckOwnership(projectID, currentUserID(ctx)))
}

// UpdateProject renames a project
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusOK, c.projectService.Rename(projectID, req.Name, currentUserID(ctx)))
}

// DeleteProject removes a project and everything it owns
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return
	}

	deleted := c.projectService.Delete(projectID, currentUserID(ctx))
	if deleted.IsErr() {
		respondError(ctx, deleted.UnwrapErr())
		return
	}

	ctx.Status(http.StatusNoContent)
}
