package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"arena-ads/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad engine. This
// is the primary port into the application; the HTTP adapter depends on it
// and tests substitute fakes for it.
type AdUseCase interface {
	// Deliver resolves the viewer context, filters the slot's creatives by
	// campaign eligibility, picks one by priority with random tie-break and
	// records an impression event. It returns nil when no deliverable
	// creative exists, which is a valid non-error outcome.
	Deliver(ctx context.Context, req DeliveryRequest) (*DeliveryCreative, error)

	// RecordClick appends a caller-reported click event for a creative that
	// was previously delivered. No redirect is performed.
	RecordClick(ctx context.Context, req ClickRequest) error

	// CampaignReport aggregates all events for the campaign inside the
	// requested window into per-(slot, region, province, city) rows. Storage
	// failures abort the whole report; partial results are never returned.
	CampaignReport(ctx context.Context, req ReportRequest) (*Report, error)
}

// DeliveryRequest carries the caller-supplied placement plus ambient
// identity and the raw User-Agent header.
type DeliveryRequest struct {
	Slot      string
	Page      string
	UserID    string // empty for anonymous viewers
	UserAgent string
}

// DeliveryCreative is the DTO returned to the client for a successful
// delivery.
type DeliveryCreative struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaignId"`
	Slot       string    `json:"slot"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ImageURL   string    `json:"imageUrl"`
	TargetURL  string    `json:"targetUrl"`
}

// ClickRequest identifies the delivered creative a client reports a click
// for, plus the same ambient viewer signals as a delivery request.
type ClickRequest struct {
	CampaignID uuid.UUID
	CreativeID uuid.UUID
	Slot       string
	Page       string
	UserID     string
	UserAgent  string
}

// ReportRequest is a validated reporting window. From and To are UTC
// midnights; the effective range is [From, To+1d).
type ReportRequest struct {
	CampaignID uuid.UUID
	From       time.Time
	To         time.Time
}

// ToEnd returns the exclusive end of the window.
func (r ReportRequest) ToEnd() time.Time {
	return r.To.AddDate(0, 0, 1)
}

// ReportMeta summarizes a report: the requested window, the number of
// aggregate rows and the campaign-wide totals.
type ReportMeta struct {
	CampaignID       string `json:"campaign_id"`
	From             string `json:"from"`
	To               string `json:"to"`
	Rows             int    `json:"rows"`
	ImpressionsTotal int64  `json:"impressionsTotal"`
	ClicksTotal      int64  `json:"clicksTotal"`
}

// Report is the aggregation result rendered as JSON or CSV by the HTTP
// adapter.
type Report struct {
	Meta ReportMeta            `json:"meta"`
	Data []domain.AggregateRow `json:"data"`
}
