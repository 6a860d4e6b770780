package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"arena-ads/internal/core/domain"
)

// EventStore implements port.EventStore on PostgreSQL. ad_events is the only
// table this engine writes; rows are never updated or deleted.
type EventStore struct {
	pool *pgxpool.Pool
}

// NewEventStore returns a new event store instance.
func NewEventStore(pool *pgxpool.Pool) *EventStore {
	return &EventStore{pool: pool}
}

// Insert appends exactly one event row.
func (s *EventStore) Insert(ctx context.Context, e *domain.Event) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	return s.pool.QueryRow(ctx, `
        INSERT INTO ad_events
            (occurred_at, event_type, campaign_id, creative_id, slot, page,
             country, region, province, city, device, user_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id`,
		e.OccurredAt, string(e.Type), e.CampaignID, e.CreativeID, e.Slot, e.Page,
		e.Country, e.Region, e.Province, e.City, e.Device, e.UserID,
	).Scan(&e.ID)
}

// ListCampaignEvents returns one page of events for the campaign with
// occurred_at in [from, to), newest first.
func (s *EventStore) ListCampaignEvents(ctx context.Context, campaignID uuid.UUID, from, to time.Time, limit, offset int) ([]domain.Event, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, occurred_at, event_type, campaign_id, creative_id, slot, page,
               country, region, province, city, device, user_id
        FROM ad_events
        WHERE campaign_id = $1
          AND occurred_at >= $2
          AND occurred_at < $3
        ORDER BY occurred_at DESC
        LIMIT $4 OFFSET $5`,
		campaignID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			e   domain.Event
			typ string
		)
		err := row.Scan(
			&e.ID, &e.OccurredAt, &typ, &e.CampaignID, &e.CreativeID, &e.Slot, &e.Page,
			&e.Country, &e.Region, &e.Province, &e.City, &e.Device, &e.UserID,
		)
		e.Type = domain.EventType(typ)
		return e, err
	})
}
