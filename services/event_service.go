package services

import (
	"errors"
	"log"

	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/models"
	"github.com/logtide-backend/repositories"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// EventService handles validated writes and ownership-gated reads of
// event records.
type EventService struct {
	events   *repositories.EventRepository
	projects *ProjectService
}

// NewEventService creates a new event service instance
func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		events:   repositories.NewEventRepository(db),
		projects: NewProjectService(db),
	}
}

// Create records an event for a project after validating the type and
// optional status formats.
func (s *EventService) Create(projectID string, req dto.CreateEventRequest) utils.OpResult[models.Event] {
	if !models.ValidEventType(req.EventType) {
		return utils.Fail[models.Event](utils.ValidationError("invalid event type format"))
	}
	if req.EventStatus != nil && !models.ValidEventStatus(*req.EventStatus) {
		return utils.Fail[models.Event](utils.ValidationError("invalid event status format"))
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	event := models.Event{
		ProjectID:   projectID,
		EventType:   req.EventType,
		EventStatus: req.EventStatus,
		Metadata:    metadata,
	}

	event, err := s.events.Create(event)
	if err != nil {
		log.Printf("failed to create event for project %s: %v", projectID, err)
		return utils.Fail[models.Event](utils.InternalError())
	}

	return utils.Ok(event)
}

// ListByProject returns a project's events, newest first, after the
// ownership guard passes.
func (s *EventService) ListByProject(projectID, userID string) utils.OpResult[[]models.Event] {
	if owned := s.projects.CheckOwnership(projectID, userID); owned.IsErr() {
		return utils.Fail[[]models.Event](owned.UnwrapErr())
	}

	events, err := s.events.ListByProject(projectID)
	if err != nil {
		return utils.Fail[[]models.Event](utils.InternalError())
	}
	return utils.Ok(events)
}

// GetByID resolves an event through its owning project and the caller's
// identity; absent and forbidden collapse into one error.
func (s *EventService) GetByID(eventID, userID string) utils.OpResult[models.Event] {
	event, err := s.events.FindForOwner(eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail[models.Event](utils.NotFoundOrForbiddenError("event"))
		}
		return utils.Fail[models.Event](utils.InternalError())
	}
	return utils.Ok(event)
}

// Update modifies an event in place. A status update is validated as a
// transition: setting a status on a statusless event is always allowed,
// clearing one is always allowed, and any other change only needs to pass
// the same format check as creation. A validation failure leaves the
// stored record untouched.
func (s *EventService) Update(eventID string, req dto.UpdateEventRequest, userID string) utils.OpResult[models.Event] {
	found := s.GetByID(eventID, userID)
	if found.IsErr() {
		return found
	}
	event := found.Unwrap()

	if req.EventType != nil {
		if !models.ValidEventType(*req.EventType) {
			return utils.Fail[models.Event](utils.ValidationError("invalid event type format"))
		}
		event.EventType = *req.EventType
	}

	if req.EventStatus != nil {
		if *req.EventStatus == "" {
			event.EventStatus = nil
		} else {
			if !models.ValidEventStatus(*req.EventStatus) {
				return utils.Fail[models.Event](utils.ValidationError("invalid event status format"))
			}
			status := *req.EventStatus
			event.EventStatus = &status
		}
	}

	if req.Metadata != nil {
		event.Metadata = req.Metadata
	}

	event, err := s.events.Save(event)
	if err != nil {
		log.Printf("failed to update event %s: %v", eventID, err)
		return utils.Fail[models.Event](utils.InternalError())
	}

	return utils.Ok(event)
}

// Delete removes an event after resolving it through the ownership join
func (s *EventService) Delete(eventID, userID string) utils.OpResult[bool] {
	found := s.GetByID(eventID, userID)
	if found.IsErr() {
		return utils.Fail[bool](found.UnwrapErr())
	}

	if err := s.events.Delete(eventID); err != nil {
		log.Printf("failed to delete event %s: %v", eventID, err)
		return utils.Fail[bool](utils.InternalError())
	}

	return utils.Ok(true)
}

// ListForProject returns a project's events without an ownership check,
// for machine callers whose key is already bound to the project.
func (s *EventService) ListForProject(projectID string) utils.OpResult[[]models.Event] {
	events, err := s.events.ListByProject(projectID)
	if err != nil {
		return utils.Fail[[]models.Event](utils.InternalError())
	}
	return utils.Ok(events)
}
