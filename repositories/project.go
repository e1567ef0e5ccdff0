package repositories

import (
	"github.com/logtide-backend/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByIDAndOwner retrieves a project only when it belongs to the owner.
// A missing project and a foreign project both surface as
// gorm.ErrRecordNotFound, so callers cannot tell the cases apart.
func (r *ProjectRepository) FindByIDAndOwner(id, ownerID string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ? AND owner_id = ?", id, ownerID)
	return project, result.Error
}

// ListByOwner retrieves all projects belonging to a user, newest first
func (r *ProjectRepository) ListByOwner(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects)
	return projects, result.Error
}

// NameTaken checks whether the owner already has another project with this
// name. excludeID skips the project's own row during renames.
func (r *ProjectRepository) NameTaken(name, ownerID, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.Project{}).Where("name = ? AND owner_id = ?", name, ownerID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Save persists changes to an existing project
func (r *ProjectRepository) Save(project models.Project) (models.Project, error) {
	result := r.db.Save(&project)
	return project, result.Error
}

// DeleteCascade removes a project and every dependent record in one
// transaction so no orphaned logs, events, or keys survive.
func (r *ProjectRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Log{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.APIKey{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
