package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"praedex-api/internal/apperr"
	"praedex-api/internal/cache"
	"praedex-api/internal/geo"
	"praedex-api/internal/location"
	"praedex-api/internal/models"
)

// cachePrefix is the listings namespace. Every cached listing query lives
// under it so that a successful creation can invalidate all of them at once.
const cachePrefix = "properties"

// DefaultReference is used when ranking must proceed without a resolved
// caller coordinate (New York).
var DefaultReference = models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

// Result is the uniform outcome of a listing query. Degraded marks a payload
// served via the fallback path; it is a recorded fact, not an error.
type Result struct {
	Listings       []models.RankedListing `json:"listings"`
	Ranked         bool                   `json:"ranked"`
	Degraded       bool                   `json:"degraded"`
	LocationStatus models.LocationStatus  `json:"locationStatus"`
}

// Lister is the listing store capability the service depends on.
// Both the in-memory table and the remote REST client satisfy it.
type Lister interface {
	List(ctx context.Context, ref *models.Coordinate) ([]models.RankedListing, error)
	GetByID(ctx context.Context, id string) (models.Listing, error)
	Add(ctx context.Context, in models.NewListing) (models.Listing, error)
}

// PropertyService orchestrates listing queries: it validates inputs, fetches
// from the Lister, ranks by distance, memoizes per query key and degrades
// gracefully when the store or geolocation is unavailable.
type PropertyService struct {
	lister     Lister
	fallback   Lister
	cache      cache.Cache
	resolver   *location.Resolver
	defaultRef models.Coordinate
	log        zerolog.Logger
}

func NewPropertyService(
	lister Lister,
	fallback Lister,
	c cache.Cache,
	resolver *location.Resolver,
	log zerolog.Logger,
) *PropertyService {
	return &PropertyService{
		lister:     lister,
		fallback:   fallback,
		cache:      c,
		resolver:   resolver,
		defaultRef: DefaultReference,
		log:        log,
	}
}

// Nearest returns listings ordered ascending by distance from ref, or in
// store order (unranked) when ref is nil. When limit is given only the
// closest limit entries are returned. A remote fetch failure falls back to
// the static listing set and marks the result degraded; it never errors.
func (s *PropertyService) Nearest(ctx context.Context, ref *models.Coordinate, limit *int) (Result, error) {
	if ref != nil && !ref.Valid() {
		return Result{}, apperr.New(apperr.InvalidArgument,
			"invalid coordinates: latitude must be in [-90,90], longitude in [-180,180]")
	}
	if limit != nil && (*limit < 1 || *limit > 100) {
		return Result{}, apperr.New(apperr.InvalidArgument, "limit must be between 1 and 100")
	}

	key := nearestKey(ref, limit)
	if payload, ok := s.cache.Get(ctx, key); ok {
		var cached Result
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		// A payload that no longer decodes is treated as a miss.
		s.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	}

	res, err := s.fetchAndRank(ctx, ref)
	if err != nil {
		return Result{}, err
	}

	if limit != nil && len(res.Listings) > *limit {
		res.Listings = res.Listings[:*limit]
	}

	if payload, err := json.Marshal(res); err == nil {
		s.cache.Set(ctx, key, payload)
	}

	return res, nil
}

// NearMe resolves the caller's position and delegates to Nearest. Resolution
// failure is absorbed: the result is ranked against the default reference,
// marked degraded, and the location status records which fallback occurred.
func (s *PropertyService) NearMe(ctx context.Context, limit *int) (Result, error) {
	coord, err := s.resolver.Resolve(ctx)
	if err == nil {
		res, nerr := s.Nearest(ctx, &coord, limit)
		if nerr != nil {
			return Result{}, nerr
		}
		res.LocationStatus = models.LocationSuccess
		return res, nil
	}

	s.log.Warn().Err(err).Msg("location resolution failed, ranking against default reference")

	ref := s.defaultRef
	res, nerr := s.Nearest(ctx, &ref, limit)
	if nerr != nil {
		return Result{}, nerr
	}
	res.Degraded = true
	res.LocationStatus = location.StatusFor(err)
	return res, nil
}

// GetByID returns a single listing. Lookups are cached under their own
// namespace: an added listing can never change an existing id's payload.
func (s *PropertyService) GetByID(ctx context.Context, id string) (models.Listing, error) {
	if strings.TrimSpace(id) == "" || len(id) >= 100 {
		return models.Listing{}, apperr.New(apperr.InvalidArgument, "invalid property ID format")
	}

	key := "property:" + id
	if payload, ok := s.cache.Get(ctx, key); ok {
		var cached models.Listing
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	listing, err := s.lister.GetByID(ctx, id)
	if err != nil {
		return models.Listing{}, s.classify(err, "get property")
	}

	if payload, err := json.Marshal(listing); err == nil {
		s.cache.Set(ctx, key, payload)
	}

	return listing, nil
}

// Add validates and creates a listing, then invalidates every cached listing
// query: the authoritative set has changed.
func (s *PropertyService) Add(ctx context.Context, in models.NewListing) (models.Listing, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Listing{}, apperr.New(apperr.InvalidArgument, "valid title is required")
	}
	if in.Price <= 0 || in.Price >= 1e9 {
		return models.Listing{}, apperr.New(apperr.InvalidArgument, "valid price is required (0 < price < 1B)")
	}
	if !in.Location.Valid() {
		return models.Listing{}, apperr.New(apperr.InvalidArgument, "valid lat and lng coordinates are required")
	}
	if in.Kind != "" && !models.ValidKind(in.Kind) {
		return models.Listing{}, apperr.New(apperr.InvalidArgument, "type must be one of property, hotel, land, shortlet")
	}

	listing, err := s.lister.Add(ctx, in)
	if err != nil {
		return models.Listing{}, s.classify(err, "add property")
	}

	s.cache.Invalidate(ctx, cachePrefix)
	return listing, nil
}

// fetchAndRank runs the fetch and rank steps of the query state machine.
func (s *PropertyService) fetchAndRank(ctx context.Context, ref *models.Coordinate) (Result, error) {
	listings, err := s.lister.List(ctx, ref)
	if err != nil {
		return s.fallbackResult(ctx, ref, err)
	}

	res := Result{Listings: listings, LocationStatus: models.LocationIdle}
	switch {
	case len(listings) > 0 && listings[0].DistanceFromUser != nil:
		// Server pre-ranked; sort once more to guarantee the ordering invariant.
		geo.SortByDistance(res.Listings)
		res.Ranked = true
	case ref != nil:
		res.Listings = geo.Rank(*ref, stripDistances(listings))
		res.Ranked = true
	}
	return res, nil
}

// fallbackResult serves the static listing set ranked against ref, or the
// default reference when the caller supplied none.
func (s *PropertyService) fallbackResult(ctx context.Context, ref *models.Coordinate, cause error) (Result, error) {
	s.log.Warn().Err(cause).Msg("listing fetch failed, serving static fallback set")

	if ref == nil {
		r := s.defaultRef
		ref = &r
	}

	listings, err := s.fallback.List(ctx, ref)
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Unavailable, err, "listing fetch failed and no fallback data exists")
	}

	return Result{
		Listings:       listings,
		Ranked:         true,
		Degraded:       true,
		LocationStatus: models.LocationIdle,
	}, nil
}

// classify keeps kinded errors intact and folds unexpected collaborator
// faults into Internal so one failed request never crashes the service.
func (s *PropertyService) classify(err error, op string) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e
	}
	s.log.Error().Err(err).Str("op", op).Msg("unexpected store fault")
	return apperr.Wrap(apperr.Internal, err, "service: %s", op)
}

func stripDistances(listings []models.RankedListing) []models.Listing {
	out := make([]models.Listing, len(listings))
	for i, l := range listings {
		out[i] = l.Listing
	}
	return out
}

// nearestKey derives the cache key from the operation, the reference rounded
// to 4 decimals (~11 m, well under ranking resolution) and the limit.
func nearestKey(ref *models.Coordinate, limit *int) string {
	coord := "none"
	if ref != nil {
		coord = strconv.FormatFloat(round4(ref.Latitude), 'f', -1, 64) +
			"," + strconv.FormatFloat(round4(ref.Longitude), 'f', -1, 64)
	}
	lim := "all"
	if limit != nil {
		lim = strconv.Itoa(*limit)
	}
	return fmt.Sprintf("%s:nearest:%s:%s", cachePrefix, coord, lim)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
