package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"arena-ads/internal/core/domain"
)

// ProfileStore reads the platform's stored user attributes. The profiles
// table is a read-only projection maintained by the rest of the platform.
type ProfileStore struct {
	pool *pgxpool.Pool
}

// NewProfileStore returns a new profile store instance.
func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

// GetProfile returns the stored attributes for a user, or (nil, nil) when no
// profile exists.
func (s *ProfileStore) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := s.pool.QueryRow(ctx, `
        SELECT user_id, country, region, province, city, sport
        FROM profiles
        WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.Country, &p.Region, &p.Province, &p.City, &p.Sport)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
