package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Creative is a concrete rendered ad unit belonging to a campaign. Slot is
// the named placement it may render in (e.g. "home_sidebar").
type Creative struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Slot       string
	Title      string
	Body       string
	ImageURL   string
	TargetURL  string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Deliverable reports whether the creative can actually be served. A
// creative without a destination URL reduces the eligible set rather than
// producing an error.
func (c *Creative) Deliverable() bool {
	return c.IsActive && strings.TrimSpace(c.TargetURL) != ""
}
