package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"arena-ads/internal/core/domain"
	"arena-ads/internal/core/port"
)

const (
	// reportPageSize is the fixed page size used when walking the event log.
	reportPageSize = 1000

	// maxReportDays caps the effective range [from, to+1d).
	maxReportDays = 93

	dateLayout = "2006-01-02"
)

// ParseReportRequest validates the raw reporting parameters before any store
// access. Dates are YYYY-MM-DD in UTC; to defaults to today and from to
// today minus 30 days.
func ParseReportRequest(campaignID, fromStr, toStr string, now time.Time) (port.ReportRequest, error) {
	var req port.ReportRequest

	id, err := uuid.Parse(strings.TrimSpace(campaignID))
	if err != nil {
		return req, errors.New("campaign_id must be a UUID")
	}
	req.CampaignID = id

	today := now.UTC().Truncate(24 * time.Hour)
	req.To = today
	if toStr != "" {
		req.To, err = time.ParseInLocation(dateLayout, toStr, time.UTC)
		if err != nil {
			return req, errors.New("to must be a YYYY-MM-DD date")
		}
	}
	req.From = today.AddDate(0, 0, -30)
	if fromStr != "" {
		req.From, err = time.ParseInLocation(dateLayout, fromStr, time.UTC)
		if err != nil {
			return req, errors.New("from must be a YYYY-MM-DD date")
		}
	}

	end := req.ToEnd()
	if req.From.After(end) {
		return req, errors.New("from must not be after to")
	}
	if end.Sub(req.From) > maxReportDays*24*time.Hour {
		return req, fmt.Errorf("date range must not exceed %d days", maxReportDays)
	}
	return req, nil
}

// CampaignReport pages through every event for the campaign inside the
// window and aggregates them by (slot, region, province, city). Pagination
// is strictly sequential: each page's existence is determined only by the
// previous page's row count.
func (s *AdService) CampaignReport(ctx context.Context, req port.ReportRequest) (*port.Report, error) {
	var all []domain.Event
	for offset := 0; ; {
		page, err := s.events.ListCampaignEvents(ctx, req.CampaignID, req.From, req.ToEnd(), reportPageSize, offset)
		if err != nil {
			s.metrics.RecordReport("error")
			return nil, fmt.Errorf("list campaign events: %w", err)
		}
		all = append(all, page...)
		if len(page) < reportPageSize {
			break
		}
		offset += len(page)
	}

	rows, impressions, clicks := domain.AggregateEvents(all)
	s.metrics.RecordReport("ok")
	return &port.Report{
		Meta: port.ReportMeta{
			CampaignID:       req.CampaignID.String(),
			From:             req.From.Format(dateLayout),
			To:               req.To.Format(dateLayout),
			Rows:             len(rows),
			ImpressionsTotal: impressions,
			ClicksTotal:      clicks,
		},
		Data: rows,
	}, nil
}
