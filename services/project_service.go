package services

import (
	"errors"
	"log"

	"github.com/logtide-backend/models"
	"github.com/logtide-backend/repositories"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projects *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{projects: repositories.NewProjectRepository(db)}
}

// CheckOwnership returns the project only when it exists and belongs to
// the user. A project that does not exist and a project owned by someone
// else produce the identical error, so existence never leaks.
func (s *ProjectService) CheckOwnership(projectID, userID string) utils.OpResult[models.Project] {
	project, err := s.projects.FindByIDAndOwner(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail[models.Project](utils.NotFoundOrForbiddenError("project"))
		}
		log.Printf("ownership check failed for project %s: %v", projectID, err)
		return utils.Fail[models.Project](utils.InternalError())
	}
	return utils.Ok(project)
}

// Create registers a new project. Name uniqueness is scoped per owner:
// two different users may each have a project called "demo".
func (s *ProjectService) Create(name, ownerID string) utils.OpResult[models.Project] {
	taken, err := s.projects.NameTaken(name, ownerID, "")
	if err != nil {
		return utils.Fail[models.Project](utils.InternalError())
	}
	if taken {
		return utils.Fail[models.Project](utils.ConflictError("project name already exists for this user"))
	}

	project, err := s.projects.Create(models.Project{Name: name, OwnerID: ownerID})
	if err != nil {
		// A concurrent create can slip past the check above; the composite
		// unique index on (owner_id, name) reports it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail[models.Project](utils.ConflictError("project name already exists for this user"))
		}
		log.Printf("failed to create project: %v", err)
		return utils.Fail[models.Project](utils.InternalError())
	}

	return utils.Ok(project)
}

// Rename changes a project's name after re-validating ownership and
// re-checking uniqueness excluding the project's own row.
func (s *ProjectService) Rename(projectID, newName, ownerID string) utils.OpResult[models.Project] {
	owned := s.CheckOwnership(projectID, ownerID)
	if owned.IsErr() {
		return owned
	}
	project := owned.Unwrap()

	if newName != project.Name {
		taken, err := s.projects.NameTaken(newName, ownerID, projectID)
		if err != nil {
			return utils.Fail[models.Project](utils.InternalError())
		}
		if taken {
			return utils.Fail[models.Project](utils.ConflictError("project name already exists for this user"))
		}
	}

	project.Name = newName
	project, err := s.projects.Save(project)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail[models.Project](utils.ConflictError("project name already exists for this user"))
		}
		log.Printf("failed to rename project %s: %v", projectID, err)
		return utils.Fail[models.Project](utils.InternalError())
	}

	return utils.Ok(project)
}

// ListByOwner retrieves the user's projects, newest first
func (s *ProjectService) ListByOwner(ownerID string) utils.OpResult[[]models.Project] {
	projects, err := s.projects.ListByOwner(ownerID)
	if err != nil {
		return utils.Fail[[]models.Project](utils.InternalError())
	}
	return utils.Ok(projects)
}

// Delete removes a project and cascades to its logs, events, and API key
func (s *ProjectService) Delete(projectID, ownerID string) utils.OpResult[bool] {
	owned := s.CheckOwnership(projectID, ownerID)
	if owned.IsErr() {
		return utils.Fail[bool](owned.UnwrapErr())
	}

	if err := s.projects.DeleteCascade(projectID); err != nil {
		log.Printf("failed to delete project %s: %v", projectID, err)
		return utils.Fail[bool](utils.InternalError())
	}

	return utils.Ok(true)
}
