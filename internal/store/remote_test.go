package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"praedex-api/internal/apperr"
	"praedex-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemote_List_PassesReference(t *testing.T) {
	var gotLat, gotLng string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("userLat")
		gotLng = r.URL.Query().Get("userLng")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"prop-1","type":"property","title":"A","price":1,` +
			`"location":{"latitude":40.7,"longitude":-74},"distanceFromUser":1.42}]`))
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, time.Second)
	ref := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	listings, err := r.List(context.Background(), &ref)
	require.NoError(t, err)

	assert.Equal(t, "40.7128", gotLat)
	assert.Equal(t, "-74.006", gotLng)
	require.Len(t, listings, 1)
	require.NotNil(t, listings[0].DistanceFromUser)
	assert.Equal(t, 1.42, *listings[0].DistanceFromUser)
}

func TestRemote_List_NoReferenceOmitsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, time.Second).List(context.Background(), nil)
	assert.NoError(t, err)
}

func TestRemote_List_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, time.Second).List(context.Background(), nil)
	assert.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Unavailable))
}

func TestRemote_List_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, time.Second).List(context.Background(), nil)
	assert.Error(t, err)
}

func TestRemote_List_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := NewRemote(srv.URL, time.Second).List(context.Background(), nil)
	assert.Error(t, err)
}

func TestRemote_GetByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Property not found"}`))
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, time.Second).GetByID(context.Background(), "nope")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestRemote_Add(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"prop-new","type":"hotel","title":"H","price":200,` +
			`"location":{"latitude":6.52,"longitude":3.37}}`))
	}))
	defer srv.Close()

	created, err := NewRemote(srv.URL, time.Second).Add(context.Background(), models.NewListing{
		Title:    "H",
		Price:    200,
		Kind:     models.KindHotel,
		Location: models.Coordinate{Latitude: 6.52, Longitude: 3.37},
	})
	require.NoError(t, err)
	assert.Equal(t, "prop-new", created.ID)
}
