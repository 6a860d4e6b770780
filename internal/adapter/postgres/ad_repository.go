package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"arena-ads/internal/core/domain"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Campaign, creative and target rows are read-only inputs to the engine.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// ListSlotCandidates returns every active creative in the slot joined with
// its owning campaign, plus the campaigns' targets. Status, time-window and
// targeting checks are left to the usecase so they stay unit-testable.
func (r *AdRepository) ListSlotCandidates(ctx context.Context, slot string) ([]domain.Candidate, error) {
	const query = `
        SELECT
            cr.id,
            cr.campaign_id,
            cr.slot,
            cr.title,
            cr.body,
            cr.image_url,
            cr.target_url,
            cr.is_active,
            cr.created_at,
            cr.updated_at,
            c.id,
            c.name,
            c.status,
            c.priority,
            c.start_at,
            c.end_at,
            c.created_at,
            c.updated_at
        FROM ad_creatives cr
        JOIN ad_campaigns c ON cr.campaign_id = c.id
        WHERE cr.slot = $1
          AND cr.is_active`
	rows, err := r.pool.Query(ctx, query, slot)
	if err != nil {
		return nil, err
	}
	candidates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Candidate, error) {
		var c domain.Candidate
		err := row.Scan(
			&c.Creative.ID,
			&c.Creative.CampaignID,
			&c.Creative.Slot,
			&c.Creative.Title,
			&c.Creative.Body,
			&c.Creative.ImageURL,
			&c.Creative.TargetURL,
			&c.Creative.IsActive,
			&c.Creative.CreatedAt,
			&c.Creative.UpdatedAt,
			&c.Campaign.ID,
			&c.Campaign.Name,
			&c.Campaign.Status,
			&c.Campaign.Priority,
			&c.Campaign.StartAt,
			&c.Campaign.EndAt,
			&c.Campaign.CreatedAt,
			&c.Campaign.UpdatedAt,
		)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return candidates, nil
	}

	targets, err := r.listTargets(ctx, campaignIDs(candidates))
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i].Targets = targets[candidates[i].Campaign.ID]
	}
	return candidates, nil
}

// listTargets fetches the targeting rows for a set of campaigns, grouped by
// campaign id.
func (r *AdRepository) listTargets(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.Target, error) {
	const query = `
        SELECT id, campaign_id, country, region, city, sport, audience, device
        FROM ad_targets
        WHERE campaign_id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	targets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Target, error) {
		var t domain.Target
		err := row.Scan(&t.ID, &t.CampaignID, &t.Country, &t.Region, &t.City, &t.Sport, &t.Audience, &t.Device)
		return t, err
	})
	if err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]domain.Target, len(ids))
	for _, t := range targets {
		grouped[t.CampaignID] = append(grouped[t.CampaignID], t)
	}
	return grouped, nil
}

func campaignIDs(candidates []domain.Candidate) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	ids := make([]uuid.UUID, 0, len(candidates))
	for i := range candidates {
		id := candidates[i].Campaign.ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
