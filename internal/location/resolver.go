package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"praedex-api/internal/models"
)

// Failure kinds for a resolution attempt. A single denial or timeout is
// terminal for that call; callers decide whether to retry.
var (
	ErrUnsupported         = errors.New("location: geolocation is not supported")
	ErrPermissionDenied    = errors.New("location: permission denied")
	ErrPositionUnavailable = errors.New("location: position unavailable")
	ErrTimedOut            = errors.New("location: request timed out")
)

// PermissionState mirrors the platform permission query states.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
	PermissionPrompt  PermissionState = "prompt"
)

// Options tune a one-shot position request. Low accuracy is the default
// trade-off: faster response, coarser precision, which is acceptable because
// ranking only needs kilometer-scale ordering.
type Options struct {
	Timeout      time.Duration
	HighAccuracy bool
}

// Provider is the platform's one-shot geolocation capability.
type Provider interface {
	CurrentPosition(ctx context.Context, opts Options) (models.Coordinate, error)
}

// PermissionQuerier is an optional pre-flight permission query a Provider may
// support. Its absence or failure never fails resolution on its own.
type PermissionQuerier interface {
	PermissionState(ctx context.Context) (PermissionState, error)
}

// DefaultTimeout bounds a single position request.
const DefaultTimeout = 10 * time.Second

// Resolver obtains the caller's coordinates from a Provider, or reports why
// it could not as one of the four failure kinds.
type Resolver struct {
	provider Provider
	timeout  time.Duration
}

func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider, timeout: DefaultTimeout}
}

// NewResolverWithTimeout creates a resolver with a custom request timeout.
func NewResolverWithTimeout(provider Provider, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{provider: provider, timeout: timeout}
}

// Resolve performs a single resolution attempt. It never retries.
func (r *Resolver) Resolve(ctx context.Context) (models.Coordinate, error) {
	if r == nil || r.provider == nil {
		return models.Coordinate{}, ErrUnsupported
	}

	// Best-effort pre-flight: a failing or absent permission query is skipped,
	// but a known-denied state short-circuits the position request.
	if q, ok := r.provider.(PermissionQuerier); ok {
		if state, err := q.PermissionState(ctx); err == nil && state == PermissionDenied {
			return models.Coordinate{}, ErrPermissionDenied
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	coord, err := r.provider.CurrentPosition(ctx, Options{Timeout: r.timeout, HighAccuracy: false})
	if err != nil {
		return models.Coordinate{}, mapError(err)
	}

	if !coord.Valid() {
		return models.Coordinate{}, fmt.Errorf("%w: coordinate out of range", ErrPositionUnavailable)
	}

	return coord, nil
}

// mapError folds provider and context errors into the four failure kinds.
func mapError(err error) error {
	switch {
	case errors.Is(err, ErrUnsupported),
		errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrPositionUnavailable),
		errors.Is(err, ErrTimedOut):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimedOut
	default:
		return fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
}

// StatusFor maps a resolution outcome to the user-facing location status.
func StatusFor(err error) models.LocationStatus {
	switch {
	case err == nil:
		return models.LocationSuccess
	case errors.Is(err, ErrPermissionDenied):
		return models.LocationDenied
	default:
		return models.LocationUnavailable
	}
}

// FixedProvider reports a static coordinate. It stands in for a real platform
// capability in server-side deployments and in the verification tool.
type FixedProvider struct {
	Coord models.Coordinate
}

func (p FixedProvider) CurrentPosition(_ context.Context, _ Options) (models.Coordinate, error) {
	return p.Coord, nil
}
