package domain

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func ev(typ EventType, slot, region, province, city string) Event {
	return Event{
		Type:       typ,
		CampaignID: uuid.Nil,
		CreativeID: uuid.Nil,
		Slot:       slot,
		Region:     region,
		Province:   province,
		City:       city,
	}
}

func TestAggregateEventsGroupsAndCounts(t *testing.T) {
	events := []Event{
		ev(EventImpression, "home", "lazio", "rm", "roma"),
		ev(EventImpression, "home", "lazio", "rm", "roma"),
		ev(EventClick, "home", "lazio", "rm", "roma"),
		ev(EventImpression, "feed", "lombardia", "mi", "milano"),
	}
	rows, impressions, clicks := AggregateEvents(events)

	if impressions != 3 || clicks != 1 {
		t.Fatalf("totals = %d/%d, want 3/1", impressions, clicks)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(rows))
	}
	// sorted by slot ascending
	if rows[0].Slot != "feed" || rows[1].Slot != "home" {
		t.Fatalf("unexpected slot order: %+v", rows)
	}
	home := rows[1]
	if home.Impressions != 2 || home.Clicks != 1 || home.CTR != 0.5 {
		t.Fatalf("unexpected home row: %+v", home)
	}
}

func TestAggregateEventsCTRZeroWhenNoImpressions(t *testing.T) {
	// clicks without impressions should not normally occur, but must not
	// divide by zero
	rows, impressions, clicks := AggregateEvents([]Event{
		ev(EventClick, "home", "lazio", "rm", "roma"),
	})
	if impressions != 0 || clicks != 1 {
		t.Fatalf("totals = %d/%d, want 0/1", impressions, clicks)
	}
	if rows[0].CTR != 0 {
		t.Fatalf("CTR = %v, want 0", rows[0].CTR)
	}
}

func TestAggregateEventsTiesBrokenByImpressionsDescending(t *testing.T) {
	events := []Event{
		ev(EventImpression, "home", "toscana", "fi", "firenze"),
		ev(EventImpression, "home", "lazio", "rm", "roma"),
		ev(EventImpression, "home", "lazio", "rm", "roma"),
	}
	rows, _, _ := AggregateEvents(events)
	if rows[0].City != "roma" || rows[1].City != "firenze" {
		t.Fatalf("expected the busier group first, got %+v", rows)
	}
}

func TestAggregateEventsIsDeterministic(t *testing.T) {
	events := []Event{
		ev(EventImpression, "home", "lazio", "rm", "roma"),
		ev(EventClick, "home", "lazio", "rm", "roma"),
		ev(EventImpression, "feed", "lombardia", "mi", "milano"),
		ev(EventImpression, "feed", "toscana", "fi", "firenze"),
		ev(EventImpression, "home", "piemonte", "to", "torino"),
	}
	rows1, imp1, clk1 := AggregateEvents(events)
	rows2, imp2, clk2 := AggregateEvents(events)
	if imp1 != imp2 || clk1 != clk2 {
		t.Fatalf("totals differ across runs: %d/%d vs %d/%d", imp1, clk1, imp2, clk2)
	}
	if !reflect.DeepEqual(rows1, rows2) {
		t.Fatalf("rows differ across runs:\n%+v\n%+v", rows1, rows2)
	}
}

func TestAggregateEventsEmptyInput(t *testing.T) {
	rows, impressions, clicks := AggregateEvents(nil)
	if len(rows) != 0 || impressions != 0 || clicks != 0 {
		t.Fatalf("expected empty aggregation, got %d rows %d/%d", len(rows), impressions, clicks)
	}
}
