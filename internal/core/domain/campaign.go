package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses. Only active campaigns are eligible for delivery; the
// other values appear in rows written by the campaign-management tooling.
const (
	CampaignActive   = "active"
	CampaignPaused   = "paused"
	CampaignArchived = "archived"
)

// Campaign is the business entity controlling status, priority, time window
// and targeting rules for one or more creatives. The engine never writes
// campaigns; they are authored elsewhere and read here.
type Campaign struct {
	ID        uuid.UUID
	Name      string
	Status    string
	Priority  int
	StartAt   *time.Time // nil means unbounded start
	EndAt     *time.Time // nil means unbounded end
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the campaign status permits delivery.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignActive
}

// InWindow reports whether the campaign time window contains now. A nil
// bound is unbounded on that side.
func (c *Campaign) InWindow(now time.Time) bool {
	if c.StartAt != nil && c.StartAt.After(now) {
		return false
	}
	if c.EndAt != nil && c.EndAt.Before(now) {
		return false
	}
	return true
}
