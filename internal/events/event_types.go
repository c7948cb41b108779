package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContentCreated EventType = "content_created"
	EventContentUpdated EventType = "content_updated"
	EventContentDeleted EventType = "content_deleted"
	EventResumeReloaded EventType = "resume_reloaded"
	EventUserCreated    EventType = "user_created"
)

// Event represents a domain event emitted by services. Actor is the
// username of the principal that triggered it, or "SYSTEM" for startup
// seeding.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	Resource   string      `json:"resource"`
	ResourceID int64       `json:"resource_id,omitempty"`
	Actor      string      `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload,omitempty"`
}

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(eventType EventType, resource string, resourceID int64, actor string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Resource:   resource,
		ResourceID: resourceID,
		Actor:      actor,
		Timestamp:  time.Now(),
	}
}
