package services

import (
	"errors"
	"log"
	"strings"

	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/models"
	"github.com/logtide-backend/repositories"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// LogService handles validated writes and ownership-gated reads of log
// records.
type LogService struct {
	logs     *repositories.LogRepository
	projects *ProjectService
}

// NewLogService creates a new log service instance
func NewLogService(db *gorm.DB) *LogService {
	return &LogService{
		logs:     repositories.NewLogRepository(db),
		projects: NewProjectService(db),
	}
}

// Create appends a log record to a project. The project is assumed
// authorized: human callers pass the ownership guard in the handler,
// machine callers are bound to the project by their key.
func (s *LogService) Create(projectID string, req dto.CreateLogRequest) utils.OpResult[models.Log] {
	if !models.ValidLogLevel(req.Level) {
		return utils.Fail[models.Log](utils.ValidationError("invalid log level, must be: info, debug, warning, error, critical"))
	}

	record := models.Log{
		ProjectID: projectID,
		Level:     strings.ToLower(req.Level),
		Category:  req.Category,
		Message:   req.Message,
		Tags:      req.Tags,
	}

	record, err := s.logs.Create(record)
	if err != nil {
		log.Printf("failed to create log for project %s: %v", projectID, err)
		return utils.Fail[models.Log](utils.InternalError())
	}

	return utils.Ok(record)
}

// ListByProject returns a project's logs, newest first, after the
// ownership guard passes.
func (s *LogService) ListByProject(projectID, userID string) utils.OpResult[[]models.Log] {
	if owned := s.projects.CheckOwnership(projectID, userID); owned.IsErr() {
		return utils.Fail[[]models.Log](owned.UnwrapErr())
	}

	logs, err := s.logs.ListByProject(projectID)
	if err != nil {
		return utils.Fail[[]models.Log](utils.InternalError())
	}
	return utils.Ok(logs)
}

// GetByID resolves a log through its owning project and the caller's
// identity; absent and forbidden collapse into one error.
func (s *LogService) GetByID(logID, userID string) utils.OpResult[models.Log] {
	record, err := s.logs.FindForOwner(logID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail[models.Log](utils.NotFoundOrForbiddenError("log"))
		}
		return utils.Fail[models.Log](utils.InternalError())
	}
	return utils.Ok(record)
}

// Update modifies a log in place. Nil request fields keep their stored
// values.
func (s *LogService) Update(logID string, req dto.UpdateLogRequest, userID string) utils.OpResult[models.Log] {
	found := s.GetByID(logID, userID)
	if found.IsErr() {
		return found
	}
	record := found.Unwrap()

	if req.Level != nil {
		if !models.ValidLogLevel(*req.Level) {
			return utils.Fail[models.Log](utils.ValidationError("invalid log level, must be: info, debug, warning, error, critical"))
		}
		record.Level = strings.ToLower(*req.Level)
	}
	if req.Category != nil {
		record.Category = req.Category
	}
	if req.Message != nil {
		record.Message = *req.Message
	}
	if req.Tags != nil {
		record.Tags = *req.Tags
	}

	record, err := s.logs.Save(record)
	if err != nil {
		log.Printf("failed to update log %s: %v", logID, err)
		return utils.Fail[models.Log](utils.InternalError())
	}

	return utils.Ok(record)
}

// Delete removes a log after resolving it through the ownership join
func (s *LogService) Delete(logID, userID string) utils.OpResult[bool] {
	found := s.GetByID(logID, userID)
	if found.IsErr() {
		return utils.Fail[bool](found.UnwrapErr())
	}

	if err := s.logs.Delete(logID); err != nil {
		log.Printf("failed to delete log %s: %v", logID, err)
		return utils.Fail[bool](utils.InternalError())
	}

	return utils.Ok(true)
}

// ListByLevel filters a project's logs by level after the ownership check
func (s *LogService) ListByLevel(projectID, level, userID string) utils.OpResult[[]models.Log] {
	if !models.ValidLogLevel(level) {
		return utils.Fail[[]models.Log](utils.ValidationError("invalid log level"))
	}
	if owned := s.projects.CheckOwnership(projectID, userID); owned.IsErr() {
		return utils.Fail[[]models.Log](owned.UnwrapErr())
	}

	logs, err := s.logs.ListByLevel(projectID, strings.ToLower(level))
	if err != nil {
		return utils.Fail[[]models.Log](utils.InternalError())
	}
	return utils.Ok(logs)
}

// ListByCategory filters a project's logs by category after the ownership check
func (s *LogService) ListByCategory(projectID, category, userID string) utils.OpResult[[]models.Log] {
	if owned := s.projects.CheckOwnership(projectID, userID); owned.IsErr() {
		return utils.Fail[[]models.Log](owned.UnwrapErr())
	}

	logs, err := s.logs.ListByCategory(projectID, category)
	if err != nil {
		return utils.Fail[[]models.Log](utils.InternalError())
	}
	return utils.Ok(logs)
}

// ListByTag filters a project's logs by tag membership after the ownership check
func (s *LogService) ListByTag(projectID, tag, userID string) utils.OpResult[[]models.Log] {
	if owned := s.projects.CheckOwnership(projectID, userID); owned.IsErr() {
		return utils.Fail[[]models.Log](owned.UnwrapErr())
	}

	logs, err := s.logs.ListByTag(projectID, tag)
	if err != nil {
		return utils.Fail[[]models.Log](utils.InternalError())
	}
	return utils.Ok(logs)
}

// ListForProject returns a project's logs without an ownership check, for
// machine callers whose key is already bound to the project.
func (s *LogService) ListForProject(projectID string) utils.OpResult[[]models.Log] {
	logs, err := s.logs.ListByProject(projectID)
	if err != nil {
		return utils.Fail[[]models.Log](utils.InternalError())
	}
	return utils.Ok(logs)
}
