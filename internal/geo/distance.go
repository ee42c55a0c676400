package geo

import (
	"math"
	"sort"

	"praedex-api/internal/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Distance computes the great-circle distance between two coordinates in
// kilometers using the haversine formula, rounded to 2 decimal places.
// It is pure and total: any two well-formed coordinates yield a result.
func Distance(a, b models.Coordinate) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return round2(earthRadiusKm * c)
}

// Rank annotates each listing with its distance from ref and returns the
// listings ordered by non-decreasing distance. The sort is stable: listings
// whose rounded distances are equal keep their original relative order.
func Rank(ref models.Coordinate, listings []models.Listing) []models.RankedListing {
	ranked := make([]models.RankedListing, len(listings))
	for i, l := range listings {
		d := Distance(ref, l.Location)
		ranked[i] = models.RankedListing{Listing: l, DistanceFromUser: &d}
	}

	SortByDistance(ranked)
	return ranked
}

// SortByDistance stable-sorts ranked listings ascending by distance.
// Entries without a distance annotation sort after annotated ones.
func SortByDistance(listings []models.RankedListing) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i].DistanceFromUser, listings[j].DistanceFromUser
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a < *b
	})
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
