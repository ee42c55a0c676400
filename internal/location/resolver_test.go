package location

import (
	"context"
	"errors"
	"testing"
	"time"

	"praedex-api/internal/models"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	coord models.Coordinate
	err   error
}

func (p stubProvider) CurrentPosition(_ context.Context, _ Options) (models.Coordinate, error) {
	return p.coord, p.err
}

type deniedProvider struct{ stubProvider }

func (deniedProvider) PermissionState(_ context.Context) (PermissionState, error) {
	return PermissionDenied, nil
}

type brokenQuerierProvider struct{ stubProvider }

func (brokenQuerierProvider) PermissionState(_ context.Context) (PermissionState, error) {
	return "", errors.New("permissions api not available")
}

type blockingProvider struct{}

func (blockingProvider) CurrentPosition(ctx context.Context, _ Options) (models.Coordinate, error) {
	<-ctx.Done()
	return models.Coordinate{}, ctx.Err()
}

func TestResolver_Resolve(t *testing.T) {
	valid := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	tests := []struct {
		name        string
		resolver    *Resolver
		expected    models.Coordinate
		expectedErr error
	}{
		{
			name:        "no provider is unsupported",
			resolver:    NewResolver(nil),
			expectedErr: ErrUnsupported,
		},
		{
			name:     "successful resolution",
			resolver: NewResolver(stubProvider{coord: valid}),
			expected: valid,
		},
		{
			name:        "denied permission skips the position request",
			resolver:    NewResolver(deniedProvider{stubProvider{coord: valid}}),
			expectedErr: ErrPermissionDenied,
		},
		{
			name:     "failing permission query falls through to the position request",
			resolver: NewResolver(brokenQuerierProvider{stubProvider{coord: valid}}),
			expected: valid,
		},
		{
			name:        "provider failure maps to position unavailable",
			resolver:    NewResolver(stubProvider{err: errors.New("no gps fix")}),
			expectedErr: ErrPositionUnavailable,
		},
		{
			name:        "out of range coordinate is unavailable",
			resolver:    NewResolver(stubProvider{coord: models.Coordinate{Latitude: 200, Longitude: 0}}),
			expectedErr: ErrPositionUnavailable,
		},
		{
			name:        "slow provider times out",
			resolver:    NewResolverWithTimeout(blockingProvider{}, 20*time.Millisecond),
			expectedErr: ErrTimedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, err := tt.resolver.Resolve(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, coord)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, models.LocationSuccess, StatusFor(nil))
	assert.Equal(t, models.LocationDenied, StatusFor(ErrPermissionDenied))
	assert.Equal(t, models.LocationUnavailable, StatusFor(ErrTimedOut))
	assert.Equal(t, models.LocationUnavailable, StatusFor(ErrUnsupported))
	assert.Equal(t, models.LocationUnavailable, StatusFor(ErrPositionUnavailable))
}

func TestFixedProvider(t *testing.T) {
	coord := models.Coordinate{Latitude: 6.5244, Longitude: 3.3792}
	resolver := NewResolver(FixedProvider{Coord: coord})

	got, err := resolver.Resolve(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, coord, got)
}
