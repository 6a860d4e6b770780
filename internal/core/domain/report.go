package domain

import "sort"

// AggregateRow is one reporting group: events bucketed by placement and
// geography with literal impression/click counts and the derived CTR. Rows
// are computed per request and never persisted.
type AggregateRow struct {
	Slot        string  `json:"slot"`
	Region      string  `json:"region"`
	Province    string  `json:"province"`
	City        string  `json:"city"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

type groupKey struct {
	slot, region, province, city string
}

// AggregateEvents groups events by (slot, region, province, city) and counts
// impressions and clicks per group alongside campaign-wide totals. CTR is
// clicks/impressions, or 0 when a group has no impressions. Rows are sorted
// by slot ascending, ties broken by impressions descending. Aggregation is
// by value, so the arbitrary interleaving of concurrent writers does not
// affect the result.
func AggregateEvents(events []Event) (rows []AggregateRow, impressions, clicks int64) {
	groups := make(map[groupKey]*AggregateRow)
	for i := range events {
		e := &events[i]
		key := groupKey{slot: e.Slot, region: e.Region, province: e.Province, city: e.City}
		row, ok := groups[key]
		if !ok {
			row = &AggregateRow{Slot: e.Slot, Region: e.Region, Province: e.Province, City: e.City}
			groups[key] = row
		}
		switch e.Type {
		case EventImpression:
			row.Impressions++
			impressions++
		case EventClick:
			row.Clicks++
			clicks++
		}
	}
	rows = make([]AggregateRow, 0, len(groups))
	for _, row := range groups {
		if row.Impressions > 0 {
			row.CTR = float64(row.Clicks) / float64(row.Impressions)
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Slot != rows[j].Slot {
			return rows[i].Slot < rows[j].Slot
		}
		if rows[i].Impressions != rows[j].Impressions {
			return rows[i].Impressions > rows[j].Impressions
		}
		// stable ordering for groups tied on slot and impressions
		if rows[i].Region != rows[j].Region {
			return rows[i].Region < rows[j].Region
		}
		if rows[i].Province != rows[j].Province {
			return rows[i].Province < rows[j].Province
		}
		return rows[i].City < rows[j].City
	})
	return rows, impressions, clicks
}
