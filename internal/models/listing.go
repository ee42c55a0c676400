package models

import "math"

// Coordinate is an immutable geographic point (WGS 84). Equality is structural.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are finite and inside their domain
// ranges: latitude [-90,90], longitude [-180,180].
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// ListingKind classifies a listing.
type ListingKind string

const (
	KindProperty ListingKind = "property"
	KindHotel    ListingKind = "hotel"
	KindLand     ListingKind = "land"
	KindShortlet ListingKind = "shortlet"
)

// ValidKind reports whether k is one of the four supported listing kinds.
func ValidKind(k ListingKind) bool {
	switch k {
	case KindProperty, KindHotel, KindLand, KindShortlet:
		return true
	}
	return false
}

// Listing represents a single property, hotel, land or shortlet offering.
// The ranking subsystem only reads listings; the store owns them.
type Listing struct {
	ID          string      `json:"id"`
	Kind        ListingKind `json:"type"`
	Title       string      `json:"title"`
	Price       float64     `json:"price"`
	Description string      `json:"description,omitempty"`
	Address     string      `json:"address,omitempty"`
	Location    Coordinate  `json:"location"`
	Bedrooms    int         `json:"bedrooms,omitempty"`
	Bathrooms   int         `json:"bathrooms,omitempty"`
	Sqft        int         `json:"sqft,omitempty"`
	Rating      *float64    `json:"rating,omitempty"`
	ReviewCount *int        `json:"reviewCount,omitempty"`
}

// RankedListing is a Listing annotated with the great-circle distance from the
// caller's reference coordinate, in kilometers rounded to 2 decimal places.
// DistanceFromUser is null when no reference coordinate was supplied.
type RankedListing struct {
	Listing
	DistanceFromUser *float64 `json:"distanceFromUser"`
}

// NewListing is the input for creating a listing.
type NewListing struct {
	Title    string
	Price    float64
	Kind     ListingKind
	Address  string
	Location Coordinate
}

// LocationStatus describes how the caller's reference coordinate was obtained.
// It drives the fallback narrative only, never the ranking math.
type LocationStatus string

const (
	LocationIdle        LocationStatus = "idle"
	LocationSuccess     LocationStatus = "success"
	LocationDenied      LocationStatus = "denied"
	LocationUnavailable LocationStatus = "unavailable"
)
