package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"praedex-api/internal/apperr"
	"praedex-api/internal/geo"
	"praedex-api/internal/models"
)

// Memory is the in-memory Lister. It doubles as the statically bundled
// fallback set used when a remote Lister is unreachable.
type Memory struct {
	mu       sync.RWMutex
	listings []models.Listing
}

// NewMemory creates a store seeded with the default listing set.
func NewMemory() *Memory {
	return &Memory{listings: seedListings()}
}

// NewMemoryWith creates a store holding the given listings.
func NewMemoryWith(listings []models.Listing) *Memory {
	return &Memory{listings: listings}
}

// List returns all listings in store order. When ref is given the result is
// pre-ranked ascending by distance, matching the remote endpoint's behavior.
func (m *Memory) List(_ context.Context, ref *models.Coordinate) ([]models.RankedListing, error) {
	m.mu.RLock()
	listings := make([]models.Listing, len(m.listings))
	copy(listings, m.listings)
	m.mu.RUnlock()

	if ref != nil {
		return geo.Rank(*ref, listings), nil
	}

	out := make([]models.RankedListing, len(listings))
	for i, l := range listings {
		out[i] = models.RankedListing{Listing: l}
	}
	return out, nil
}

func (m *Memory) GetByID(_ context.Context, id string) (models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, l := range m.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, apperr.New(apperr.NotFound, "property %q not found", id)
}

func (m *Memory) Add(_ context.Context, in models.NewListing) (models.Listing, error) {
	kind := in.Kind
	if kind == "" {
		kind = models.KindProperty
	}

	listing := models.Listing{
		ID:          "prop-" + uuid.NewString(),
		Kind:        kind,
		Title:       strings.TrimSpace(in.Title),
		Price:       in.Price,
		Address:     strings.TrimSpace(in.Address),
		Location:    in.Location,
		Description: "New property listing",
	}

	m.mu.Lock()
	m.listings = append(m.listings, listing)
	m.mu.Unlock()

	return listing, nil
}
