package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"arena-ads/internal/core/domain"
)

// AdRepository reads campaign, creative and targeting rows. It is an
// outbound port; the rows are read-only inputs from the engine's point of
// view.
type AdRepository interface {
	// ListSlotCandidates returns every active creative placed in the slot,
	// joined with its owning campaign and the campaign's targets. Campaign
	// status, time window and targeting are evaluated by the caller.
	ListSlotCandidates(ctx context.Context, slot string) ([]domain.Candidate, error)
}

// EventStore appends and reads the impression/click log. Events are the only
// state this engine writes and are never mutated after insertion.
type EventStore interface {
	// Insert appends exactly one event. Every call produces a new row;
	// retries are fresh impressions by design.
	Insert(ctx context.Context, e *domain.Event) error

	// ListCampaignEvents returns one page of events for the campaign with
	// occurred_at in [from, to), ordered by occurred_at descending. Paging is
	// the mechanism bounding an otherwise unbounded read, so callers must
	// walk pages sequentially.
	ListCampaignEvents(ctx context.Context, campaignID uuid.UUID, from, to time.Time, limit, offset int) ([]domain.Event, error)
}

// ProfileStore exposes the platform's stored user attributes. A missing
// profile is reported as (nil, nil), not an error.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}
