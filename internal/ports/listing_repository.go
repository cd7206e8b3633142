package ports

import (
	"context"

	"showing-route-service/internal/domain"
)

// Port: a boundary for persisting resolved listings.
type ListingRepository interface {
	// Save inserts or updates a listing keyed by MLS number.
	Save(ctx context.Context, listing domain.Listing) error
	// GetByMLS returns the stored listing and whether one exists.
	GetByMLS(ctx context.Context, mlsNumber string) (domain.Listing, bool, error)
	// List returns all stored listings ordered by MLS number.
	List(ctx context.Context) ([]domain.Listing, error)
}
