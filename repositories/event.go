package repositories

import (
	"github.com/logtide-backend/models"
	"gorm.io/gorm"
)

// EventRepository handles database operations for event records
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event record
func (r *EventRepository) Create(event models.Event) (models.Event, error) {
	result := r.db.Create(&event)
	return event, result.Error
}

// ListByProject retrieves all events for a project, newest first
func (r *EventRepository) ListByProject(projectID string) ([]models.Event, error) {
	var events []models.Event
	result := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&events)
	return events, result.Error
}

// FindForOwner resolves an event through its owning project and the
// caller's identity in one join, collapsing absent and foreign records
// into gorm.ErrRecordNotFound.
func (r *EventRepository) FindForOwner(eventID, ownerID string) (models.Event, error) {
	var event models.Event
	result := r.db.
		Joins("JOIN projects ON projects.id = events.project_id").
		Where("events.id = ? AND projects.owner_id = ?", eventID, ownerID).
		First(&event)
	return event, result.Error
}

// Save persists changes to an existing event record
func (r *EventRepository) Save(event models.Event) (models.Event, error) {
	result := r.db.Save(&event)
	return event, result.Error
}

// Delete removes an event record
func (r *EventRepository) Delete(id string) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}
