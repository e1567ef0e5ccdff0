package repositories

import (
	"encoding/json"

	"github.com/logtide-backend/models"
	"gorm.io/gorm"
)

// LogRepository handles database operations for log records
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new log repository instance
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Create inserts a new log record
func (r *LogRepository) Create(logRecord models.Log) (models.Log, error) {
	result := r.db.Create(&logRecord)
	return logRecord, result.Error
}

// ListByProject retrieves all logs for a project, newest first
func (r *LogRepository) ListByProject(projectID string) ([]models.Log, error) {
	var logs []models.Log
	result := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&logs)
	return logs, result.Error
}

// FindForOwner resolves a log through its owning project and the caller's
// identity in one join. Absent and foreign records are indistinguishable:
// both come back as gorm.ErrRecordNotFound.
func (r *LogRepository) FindForOwner(logID, ownerID string) (models.Log, error) {
	var logRecord models.Log
	result := r.db.
		Joins("JOIN projects ON projects.id = logs.project_id").
		Where("logs.id = ? AND projects.owner_id = ?", logID, ownerID).
		First(&logRecord)
	return logRecord, result.Error
}

// Save persists changes to an existing log record
func (r *LogRepository) Save(logRecord models.Log) (models.Log, error) {
	result := r.db.Save(&logRecord)
	return logRecord, result.Error
}

// Delete removes a log record
func (r *LogRepository) Delete(id string) error {
	return r.db.Delete(&models.Log{}, "id = ?", id).Error
}

// ListByLevel retrieves a project's logs filtered by level, newest first
func (r *LogRepository) ListByLevel(projectID, level string) ([]models.Log, error) {
	var logs []models.Log
	result := r.db.
		Where("project_id = ? AND level = ?", projectID, level).
		Order("created_at DESC").
		Find(&logs)
	return logs, result.Error
}

// ListByCategory retrieves a project's logs filtered by category, newest first
func (r *LogRepository) ListByCategory(projectID, category string) ([]models.Log, error) {
	var logs []models.Log
	result := r.db.
		Where("project_id = ? AND category = ?", projectID, category).
		Order("created_at DESC").
		Find(&logs)
	return logs, result.Error
}

// ListByTag retrieves a project's logs whose tags contain the given tag,
// using jsonb containment on the tags column.
func (r *LogRepository) ListByTag(projectID, tag string) ([]models.Log, error) {
	needle, err := json.Marshal([]string{tag})
	if err != nil {
		return nil, err
	}

	var logs []models.Log
	result := r.db.
		Where("project_id = ? AND tags @> ?", projectID, string(needle)).
		Order("created_at DESC").
		Find(&logs)
	return logs, result.Error
}
