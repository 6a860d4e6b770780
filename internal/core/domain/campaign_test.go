package domain

import (
	"testing"
	"time"
)

func TestCampaignInWindow(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name    string
		startAt *time.Time
		endAt   *time.Time
		want    bool
	}{
		{"unbounded", nil, nil, true},
		{"inside window", &past, &future, true},
		{"start in the future", &future, nil, false},
		{"end in the past", nil, &past, false},
	}
	for _, tc := range cases {
		c := Campaign{StartAt: tc.startAt, EndAt: tc.endAt}
		if got := c.InWindow(now); got != tc.want {
			t.Errorf("%s: InWindow = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCampaignIsActive(t *testing.T) {
	if !(&Campaign{Status: CampaignActive}).IsActive() {
		t.Fatal("active campaign must be active")
	}
	for _, status := range []string{CampaignPaused, CampaignArchived, "draft", ""} {
		if (&Campaign{Status: status}).IsActive() {
			t.Fatalf("status %q must not be active", status)
		}
	}
}
