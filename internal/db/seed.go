package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var seedSlots = []string{"home_sidebar", "feed_top", "search_results"}

var seedGeo = []struct {
	region, province, city string
}{
	{"lazio", "rm", "roma"},
	{"lombardia", "mi", "milano"},
	{"toscana", "fi", "firenze"},
	{"piemonte", "to", "torino"},
}

var seedSports = []string{"calcio", "basket", "volley", "rugby"}

// Seed inserts demo campaigns, targets, creatives, profiles and a month of
// impression/click events. Intended for local development.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	campaignIDs := make([]uuid.UUID, 0, 5)
	creativeIDs := make(map[uuid.UUID][]uuid.UUID)

	for i := 1; i <= 5; i++ {
		campaignID := uuid.New()
		campaignIDs = append(campaignIDs, campaignID)
		start := time.Now().AddDate(0, 0, -7)
		end := time.Now().AddDate(0, 1, 0)
		_, err := pool.Exec(ctx, `INSERT INTO ad_campaigns
    (id, name, status, priority, start_at, end_at, created_at, updated_at)
VALUES ($1,$2,'active',$3,$4,$5,now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, fmt.Sprintf("Campaign %d", i), r.Intn(10), start, end)
		if err != nil {
			return err
		}

		// every other campaign targets a specific region and sport; the rest
		// run untargeted
		if i%2 == 0 {
			geo := seedGeo[r.Intn(len(seedGeo))]
			_, err = pool.Exec(ctx, `INSERT INTO ad_targets (campaign_id, region, sport)
VALUES ($1,$2,$3)`, campaignID, geo.region, seedSports[r.Intn(len(seedSports))])
			if err != nil {
				return err
			}
		}

		for j := 1; j <= 3; j++ {
			creativeID := uuid.New()
			creativeIDs[campaignID] = append(creativeIDs[campaignID], creativeID)
			slot := seedSlots[r.Intn(len(seedSlots))]
			_, err = pool.Exec(ctx, `INSERT INTO ad_creatives
    (id, campaign_id, slot, title, body, image_url, target_url, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,TRUE,now(),now()) ON CONFLICT DO NOTHING`,
				creativeID, campaignID, slot,
				fmt.Sprintf("Creative %d for campaign %d", j, i),
				"Join the season tryouts",
				fmt.Sprintf("https://cdn.example.com/ads/%s.png", creativeID),
				fmt.Sprintf("https://example.com/landing/%s", creativeID))
			if err != nil {
				return err
			}
		}
	}

	for i := 1; i <= 50; i++ {
		geo := seedGeo[r.Intn(len(seedGeo))]
		_, err := pool.Exec(ctx, `INSERT INTO profiles (user_id, country, region, province, city, sport)
VALUES ($1,'it',$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
			fmt.Sprintf("user-%d", i), geo.region, geo.province, geo.city,
			seedSports[r.Intn(len(seedSports))])
		if err != nil {
			return err
		}
	}

	devices := []string{"mobile", "tablet", "desktop"}
	for i := 0; i < 2000; i++ {
		campaignID := campaignIDs[r.Intn(len(campaignIDs))]
		creatives := creativeIDs[campaignID]
		creativeID := creatives[r.Intn(len(creatives))]
		geo := seedGeo[r.Intn(len(seedGeo))]
		occurred := time.Now().Add(-time.Duration(r.Intn(30*24)) * time.Hour)
		eventType := "impression"
		if r.Intn(10) == 0 {
			eventType = "click"
		}
		userID := fmt.Sprintf("user-%d", r.Intn(50)+1)
		_, err := pool.Exec(ctx, `INSERT INTO ad_events
    (occurred_at, event_type, campaign_id, creative_id, slot, page,
     country, region, province, city, device, user_id)
VALUES ($1,$2,$3,$4,$5,$6,'it',$7,$8,$9,$10,$11)`,
			occurred, eventType, campaignID, creativeID,
			seedSlots[r.Intn(len(seedSlots))], "/feed",
			geo.region, geo.province, geo.city,
			devices[r.Intn(len(devices))], userID)
		if err != nil {
			return err
		}
	}
	return nil
}
