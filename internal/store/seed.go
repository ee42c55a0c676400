package store

import "praedex-api/internal/models"

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }

// seedListings is the statically bundled listing set. It is both the default
// data for a fresh in-memory store and the fallback payload when the remote
// listing service is unreachable.
func seedListings() []models.Listing {
	return []models.Listing{
		{
			ID: "prop-1", Kind: models.KindProperty,
			Title: "Modern 2BR Apartment in Chelsea", Price: 875000,
			Address:  "214 W 21st St, New York, NY",
			Location: models.Coordinate{Latitude: 40.7443, Longitude: -73.9986},
			Bedrooms: 2, Bathrooms: 2, Sqft: 1150,
			Rating: f(4.7), ReviewCount: n(58),
		},
		{
			ID: "prop-2", Kind: models.KindHotel,
			Title: "The Harborview Hotel", Price: 289,
			Address:  "102 North End Ave, New York, NY",
			Location: models.Coordinate{Latitude: 40.7150, Longitude: -74.0155},
			Rating:   f(4.4), ReviewCount: n(1203),
		},
		{
			ID: "prop-3", Kind: models.KindProperty,
			Title: "Brooklyn Heights Brownstone", Price: 2450000,
			Address:  "87 Remsen St, Brooklyn, NY",
			Location: models.Coordinate{Latitude: 40.6945, Longitude: -73.9950},
			Bedrooms: 4, Bathrooms: 3, Sqft: 3200,
			Rating: f(4.9), ReviewCount: n(12),
		},
		{
			ID: "prop-4", Kind: models.KindShortlet,
			Title: "Cozy Studio near Central Park", Price: 180,
			Address:  "15 W 81st St, New York, NY",
			Location: models.Coordinate{Latitude: 40.7833, Longitude: -73.9730},
			Bedrooms: 1, Bathrooms: 1, Sqft: 420,
			Rating: f(4.2), ReviewCount: n(340),
		},
		{
			ID: "prop-5", Kind: models.KindLand,
			Title: "Half-Acre Development Plot, Staten Island", Price: 425000,
			Address:  "Arthur Kill Rd, Staten Island, NY",
			Location: models.Coordinate{Latitude: 40.5434, Longitude: -74.2292},
		},
		{
			ID: "prop-6", Kind: models.KindHotel,
			Title: "Midtown Grand Suites", Price: 345,
			Address:  "440 W 57th St, New York, NY",
			Location: models.Coordinate{Latitude: 40.7695, Longitude: -73.9877},
			Rating:   f(4.1), ReviewCount: n(2874),
		},
		{
			ID: "prop-7", Kind: models.KindProperty,
			Title: "Waterfront Condo in Long Island City", Price: 1120000,
			Address:  "4720 Center Blvd, Long Island City, NY",
			Location: models.Coordinate{Latitude: 40.7465, Longitude: -73.9570},
			Bedrooms: 3, Bathrooms: 2, Sqft: 1600,
			Rating: f(4.6), ReviewCount: n(27),
		},
		{
			ID: "prop-8", Kind: models.KindShortlet,
			Title: "Sunny Loft in Williamsburg", Price: 220,
			Address:  "96 Wythe Ave, Brooklyn, NY",
			Location: models.Coordinate{Latitude: 40.7216, Longitude: -73.9577},
			Bedrooms: 2, Bathrooms: 1, Sqft: 900,
			Rating: f(4.8), ReviewCount: n(512),
		},
		{
			ID: "prop-9", Kind: models.KindProperty,
			Title: "Hoboken Riverside Townhouse", Price: 1385000,
			Address:  "2 Constitution Ct, Hoboken, NJ",
			Location: models.Coordinate{Latitude: 40.7371, Longitude: -74.0270},
			Bedrooms: 3, Bathrooms: 3, Sqft: 2100,
			Rating: f(4.5), ReviewCount: n(9),
		},
		{
			ID: "prop-10", Kind: models.KindLand,
			Title: "Commercial Corner Lot, Newark", Price: 650000,
			Address:  "Broad St & Market St, Newark, NJ",
			Location: models.Coordinate{Latitude: 40.7357, Longitude: -74.1724},
		},
		{
			ID: "prop-11", Kind: models.KindHotel,
			Title: "SoHo Boutique Inn", Price: 412,
			Address:  "310 W Broadway, New York, NY",
			Location: models.Coordinate{Latitude: 40.7223, Longitude: -74.0049},
			Rating:   f(4.6), ReviewCount: n(764),
		},
		{
			ID: "prop-12", Kind: models.KindShortlet,
			Title: "Garden Apartment in Park Slope", Price: 195,
			Address:  "452 6th Ave, Brooklyn, NY",
			Location: models.Coordinate{Latitude: 40.6665, Longitude: -73.9830},
			Bedrooms: 1, Bathrooms: 1, Sqft: 650,
			Rating: f(4.3), ReviewCount: n(188),
		},
	}
}
