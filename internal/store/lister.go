package store

import (
	"context"

	"praedex-api/internal/models"
)

// Lister provides the authoritative set of listings, independent of whether
// it is backed by a remote REST endpoint or an in-memory table. The ranking
// service treats both identically.
type Lister interface {
	// List returns all listings. When ref is non-nil the implementation may
	// pre-rank server-side, populating each entry's distance annotation.
	List(ctx context.Context, ref *models.Coordinate) ([]models.RankedListing, error)

	// GetByID returns the listing with the given id, or a not-found error.
	GetByID(ctx context.Context, id string) (models.Listing, error)

	// Add creates a new listing with a freshly minted id.
	Add(ctx context.Context, in models.NewListing) (models.Listing, error)
}

var (
	_ Lister = (*Memory)(nil)
	_ Lister = (*Remote)(nil)
)
