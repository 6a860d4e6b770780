package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType discriminates the two kinds of facts the engine records.
type EventType string

const (
	EventImpression EventType = "impression"
	EventClick      EventType = "click"
)

// Event is an append-only fact row: a creative was shown or clicked. Events
// are written once per delivery decision or caller-reported click and never
// updated or deleted.
type Event struct {
	ID         int64
	OccurredAt time.Time
	Type       EventType
	CampaignID uuid.UUID
	CreativeID uuid.UUID
	Slot       string
	Page       string
	Country    string
	Region     string
	Province   string
	City       string
	Device     string
	UserID     *string
}
