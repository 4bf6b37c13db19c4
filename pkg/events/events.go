package events

import (
	"time"

	"github.com/google/uuid"
)

// Event names emitted by workflow controllers.
const (
	EventStatusChanged = "document.status.changed"
)

// Event is the envelope delivered to subscribers.
type Event struct {
	ID      uuid.UUID
	Name    string
	At      time.Time
	Payload any
}

// StatusChange is the payload of EventStatusChanged: one successful workflow
// action moving a document between legal statuses.
type StatusChange struct {
	DocumentType string
	DocumentID   int64
	Action       string
	From         string
	To           string
}
