package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"arena-ads/internal/core/domain"
	"arena-ads/internal/core/port"
	"arena-ads/internal/metrics"
)

// AdService implements port.AdUseCase. It orchestrates the delivery pipeline
// (resolve viewer, filter by eligibility, pick by priority, record the
// decision) and the reporting aggregation. The service holds no mutable
// state; each request works on its own buffers.
type AdService struct {
	ads      port.AdRepository
	events   port.EventStore
	profiles port.ProfileStore
	metrics  *metrics.Metrics

	// intn breaks priority ties. The default is the process-wide math/rand
	// source, which is statistically fair but not reproducible.
	intn func(n int) int
	now  func() time.Time
}

// NewAdService creates the usecase with the provided outbound ports. The
// metrics argument may be nil.
func NewAdService(ads port.AdRepository, events port.EventStore, profiles port.ProfileStore, m *metrics.Metrics) *AdService {
	return &AdService{
		ads:      ads,
		events:   events,
		profiles: profiles,
		metrics:  m,
		intn:     rand.Intn,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithRand replaces the tie-break random source, making selection
// deterministic for a given seed.
func (s *AdService) WithRand(r *rand.Rand) *AdService {
	s.intn = r.Intn
	return s
}

// WithClock replaces the wall clock used for time-window checks and event
// timestamps.
func (s *AdService) WithClock(now func() time.Time) *AdService {
	s.now = now
	return s
}

// Deliver selects one creative for the slot and records the decision as an
// impression event. A nil result with a nil error means no deliverable
// creative exists, which the HTTP layer renders as {"creative": null}.
func (s *AdService) Deliver(ctx context.Context, req port.DeliveryRequest) (*port.DeliveryCreative, error) {
	viewer, err := s.resolveViewer(ctx, req.UserID, req.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("resolve viewer: %w", err)
	}

	candidates, err := s.ads.ListSlotCandidates(ctx, req.Slot)
	if err != nil {
		return nil, fmt.Errorf("list slot candidates: %w", err)
	}

	now := s.now()
	eligible := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Campaign.IsActive() || !c.Campaign.InWindow(now) {
			continue
		}
		if !domain.TargetsMatch(c.Targets, viewer) {
			continue
		}
		eligible = append(eligible, c)
	}

	winner := domain.PickByPriority(eligible, s.intn)
	if winner == nil {
		s.metrics.RecordEmptyDelivery(req.Slot, "no_eligible")
		return nil, nil
	}
	if !winner.Creative.Deliverable() {
		s.metrics.RecordEmptyDelivery(req.Slot, "no_destination")
		return nil, nil
	}

	event := &domain.Event{
		OccurredAt: now,
		Type:       domain.EventImpression,
		CampaignID: winner.Campaign.ID,
		CreativeID: winner.Creative.ID,
		Slot:       req.Slot,
		Page:       req.Page,
		Country:    viewer.Country,
		Region:     viewer.Region,
		Province:   viewer.Province,
		City:       viewer.City,
		Device:     viewer.Device,
		UserID:     optionalUserID(req.UserID),
	}
	if err = s.events.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("record impression: %w", err)
	}
	s.metrics.RecordEvent(string(domain.EventImpression))
	s.metrics.RecordDelivery(req.Slot)

	return &port.DeliveryCreative{
		ID:         winner.Creative.ID,
		CampaignID: winner.Campaign.ID,
		Slot:       winner.Creative.Slot,
		Title:      winner.Creative.Title,
		Body:       winner.Creative.Body,
		ImageURL:   winner.Creative.ImageURL,
		TargetURL:  winner.Creative.TargetURL,
	}, nil
}

// RecordClick appends a caller-reported click event. The viewer context is
// resolved the same way as for a delivery so the click carries comparable
// geography and device attributes.
func (s *AdService) RecordClick(ctx context.Context, req port.ClickRequest) error {
	viewer, err := s.resolveViewer(ctx, req.UserID, req.UserAgent)
	if err != nil {
		return fmt.Errorf("resolve viewer: %w", err)
	}
	event := &domain.Event{
		OccurredAt: s.now(),
		Type:       domain.EventClick,
		CampaignID: req.CampaignID,
		CreativeID: req.CreativeID,
		Slot:       req.Slot,
		Page:       req.Page,
		Country:    viewer.Country,
		Region:     viewer.Region,
		Province:   viewer.Province,
		City:       viewer.City,
		Device:     viewer.Device,
		UserID:     optionalUserID(req.UserID),
	}
	if err = s.events.Insert(ctx, event); err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	s.metrics.RecordEvent(string(domain.EventClick))
	return nil
}

// resolveViewer builds the normalized viewer context from the optional
// stored profile and the User-Agent header. A missing profile leaves the
// viewer-derived fields empty; only a store failure is an error.
func (s *AdService) resolveViewer(ctx context.Context, userID, userAgent string) (domain.ViewerContext, error) {
	var profile *domain.Profile
	if userID != "" {
		p, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			return domain.ViewerContext{}, err
		}
		profile = p
	}
	return domain.NewViewerContext(profile, userAgent), nil
}

func optionalUserID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
