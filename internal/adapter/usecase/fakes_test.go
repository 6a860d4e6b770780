package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"arena-ads/internal/core/domain"
)

// fakeAdRepo serves a fixed candidate list for any slot.
type fakeAdRepo struct {
	candidates []domain.Candidate
	err        error
	gotSlot    string
}

func (f *fakeAdRepo) ListSlotCandidates(_ context.Context, slot string) ([]domain.Candidate, error) {
	f.gotSlot = slot
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

// fakeEventStore records inserts and pages over a fixed event slice the way
// the real store would: ordered reads served by limit/offset.
type fakeEventStore struct {
	inserted  []domain.Event
	insertErr error

	events    []domain.Event
	listErr   error
	listCalls int
	limits    []int
	offsets   []int
}

func (f *fakeEventStore) Insert(_ context.Context, e *domain.Event) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, *e)
	return nil
}

func (f *fakeEventStore) ListCampaignEvents(_ context.Context, _ uuid.UUID, _, _ time.Time, limit, offset int) ([]domain.Event, error) {
	f.listCalls++
	f.limits = append(f.limits, limit)
	f.offsets = append(f.offsets, offset)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if offset >= len(f.events) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.events) {
		end = len(f.events)
	}
	return f.events[offset:end], nil
}

// fakeProfileStore resolves profiles from a map and counts lookups.
type fakeProfileStore struct {
	profiles map[string]*domain.Profile
	err      error
	lookups  int
}

func (f *fakeProfileStore) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}
