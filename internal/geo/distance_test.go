package geo

import (
	"math"
	"testing"

	"praedex-api/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	newYork    = models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	losAngeles = models.Coordinate{Latitude: 34.0522, Longitude: -118.2437}
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      models.Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "new york to los angeles",
			a:         newYork,
			b:         losAngeles,
			expected:  3940,
			tolerance: 5,
		},
		{
			name:      "identical points",
			a:         newYork,
			b:         newYork,
			expected:  0,
			tolerance: 0,
		},
		{
			name:      "equator antimeridian neighbors",
			a:         models.Coordinate{Latitude: 0, Longitude: 179.5},
			b:         models.Coordinate{Latitude: 0, Longitude: -179.5},
			expected:  111.19,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	assert.Equal(t, Distance(newYork, losAngeles), Distance(losAngeles, newYork))
}

func TestDistance_NonNegative(t *testing.T) {
	coords := []models.Coordinate{
		{Latitude: -90, Longitude: -180},
		{Latitude: 90, Longitude: 180},
		{Latitude: 0, Longitude: 0},
		newYork,
		losAngeles,
	}
	for _, a := range coords {
		for _, b := range coords {
			assert.GreaterOrEqual(t, Distance(a, b), 0.0)
		}
	}
}

func TestRank_OrderedAndPermutation(t *testing.T) {
	listings := []models.Listing{
		{ID: "far", Location: losAngeles},
		{ID: "near", Location: models.Coordinate{Latitude: 40.72, Longitude: -74.0}},
		{ID: "mid", Location: models.Coordinate{Latitude: 41.0, Longitude: -74.0}},
	}

	ranked := Rank(newYork, listings)

	assert.Len(t, ranked, len(listings))
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "far", ranked[2].ID)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, *ranked[i-1].DistanceFromUser, *ranked[i].DistanceFromUser)
	}

	// Permutation of the input: every id appears exactly once.
	seen := map[string]int{}
	for _, r := range ranked {
		seen[r.ID]++
	}
	for _, l := range listings {
		assert.Equal(t, 1, seen[l.ID])
	}
}

func TestRank_TiesPreserveInputOrder(t *testing.T) {
	// Same coordinate means identical rounded distance; the stable sort must
	// keep the original relative order.
	spot := models.Coordinate{Latitude: 40.75, Longitude: -73.99}
	listings := []models.Listing{
		{ID: "first", Location: spot},
		{ID: "second", Location: spot},
		{ID: "third", Location: spot},
	}

	ranked := Rank(newYork, listings)

	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
	assert.Equal(t, "third", ranked[2].ID)
}

func TestRank_RoundsToTwoDecimals(t *testing.T) {
	ranked := Rank(newYork, []models.Listing{{ID: "a", Location: losAngeles}})

	d := *ranked[0].DistanceFromUser
	assert.InDelta(t, math.Round(d*100)/100, d, 1e-9)
}
