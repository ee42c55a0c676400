package store

import (
	"context"
	"testing"

	"praedex-api/internal/apperr"
	"praedex-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_List_StoreOrderWithoutReference(t *testing.T) {
	s := NewMemory()

	listings, err := s.List(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	assert.Equal(t, "prop-1", listings[0].ID)
	for _, l := range listings {
		assert.Nil(t, l.DistanceFromUser, "unranked listings carry no distance")
	}
}

func TestMemory_List_PreRanksWithReference(t *testing.T) {
	s := NewMemory()
	ref := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	listings, err := s.List(context.Background(), &ref)
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	for i, l := range listings {
		require.NotNil(t, l.DistanceFromUser)
		if i > 0 {
			assert.LessOrEqual(t, *listings[i-1].DistanceFromUser, *l.DistanceFromUser)
		}
	}
}

func TestMemory_GetByID(t *testing.T) {
	s := NewMemory()

	listing, err := s.GetByID(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.Equal(t, "prop-1", listing.ID)

	_, err = s.GetByID(context.Background(), "prop-does-not-exist")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestMemory_Add(t *testing.T) {
	s := NewMemory()
	before, _ := s.List(context.Background(), nil)

	created, err := s.Add(context.Background(), models.NewListing{
		Title:    "  New Lagos Shortlet  ",
		Price:    150,
		Kind:     models.KindShortlet,
		Location: models.Coordinate{Latitude: 6.5244, Longitude: 3.3792},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Contains(t, created.ID, "prop-")
	assert.Equal(t, "New Lagos Shortlet", created.Title, "title is trimmed")
	assert.Equal(t, models.KindShortlet, created.Kind)

	after, _ := s.List(context.Background(), nil)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, created.ID, after[len(after)-1].ID)
}

func TestMemory_Add_DefaultsKindToProperty(t *testing.T) {
	s := NewMemory()

	created, err := s.Add(context.Background(), models.NewListing{
		Title:    "Untyped",
		Price:    100,
		Location: models.Coordinate{Latitude: 0, Longitude: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, models.KindProperty, created.Kind)
}
