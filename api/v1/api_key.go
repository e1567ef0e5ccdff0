package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/services"
	"gorm.io/gorm"
)

// APIKeyController handles per-project API key endpoints. Every route
// passes the ownership guard before touching the key.
type APIKeyController struct {
	keyService     *services.APIKeyService
	projectService *services.ProjectService
}

// NewAPIKeyController creates a new API key controller
func NewAPIKeyController(db *gorm.DB) *APIKeyController {
	return &APIKeyController{
		keyService:     services.NewAPIKeyService(db),
		projectService: services.NewProjectService(db),
	}
}

// GetKey returns the active key's metadata: masked form, never the secret
func (c *APIKeyController) GetKey(ctx *gin.Context) {
	projectID, ok := c.guard(ctx)
	if !ok {
		return
	}

	key := c.keyService.LookupByProject(projectID)
	if key.IsNothing() {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "no active API key for this project",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.NewAPIKeyResponse(key.Unwrap()),
	})
}

// GenerateKey issues a new key, deactivating any prior one. The plaintext
// appears in this response and nowhere else, ever.
func (c *APIKeyController) GenerateKey(ctx *gin.Context) {
	projectID, ok := c.guard(ctx)
	if !ok {
		return
	}

	created := c.keyService.Create(projectID)
	if created.IsErr() {
		respondError(ctx, created.UnwrapErr())
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   createdKeyResponse(created.Unwrap()),
	})
}

// ResetKey rotates the key: the old secret stops working atomically with
// the new one starting.
func (c *APIKeyController) ResetKey(ctx *gin.Context) {
	projectID, ok := c.guard(ctx)
	if !ok {
		return
	}

	rotated := c.keyService.Rotate(projectID)
	if rotated.IsErr() {
		respondError(ctx, rotated.UnwrapErr())
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   createdKeyResponse(rotated.Unwrap()),
	})
}

// DeactivateKey turns off the active key without issuing a replacement
func (c *APIKeyController) DeactivateKey(ctx *gin.Context) {
	projectID, ok := c.guard(ctx)
	if !ok {
		return
	}

	deactivated := c.keyService.Deactivate(projectID)
	if deactivated.IsErr() {
		respondError(ctx, deactivated.UnwrapErr())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"deactivated": deactivated.Unwrap(),
	})
}

func (c *APIKeyController) guard(ctx *gin.Context) (string, bool) {
	projectID, ok := pathProjectID(ctx)
	if !ok {
		return "", false
	}

	owned := c.projectService.CheckOwnership(projectID, currentUserID(ctx))
	if owned.IsErr() {
		respondError(ctx, owned.UnwrapErr())
		return "", false
	}
	return projectID, true
}

func createdKeyResponse(created services.CreatedKey) dto.APIKeyCreatedResponse {
	return dto.APIKeyCreatedResponse{
		APIKeyResponse: dto.NewAPIKeyResponse(created.Key),
		Key:            created.Plaintext,
	}
}
