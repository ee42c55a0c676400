package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"praedex-api/internal/apperr"
	"praedex-api/internal/models"
)

// DefaultRemoteTimeout bounds a single call to the remote listing service.
const DefaultRemoteTimeout = 10 * time.Second

// Remote is a Lister backed by the REST listing service. Network errors,
// non-2xx responses and malformed bodies are reported as errors; the caller
// decides whether to fall back.
type Remote struct {
	client  *http.Client
	baseURL string
}

func NewRemote(baseURL string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &Remote{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *Remote) List(ctx context.Context, ref *models.Coordinate) ([]models.RankedListing, error) {
	u := r.baseURL + "/properties"
	if ref != nil {
		params := url.Values{}
		params.Set("userLat", strconv.FormatFloat(ref.Latitude, 'f', -1, 64))
		params.Set("userLng", strconv.FormatFloat(ref.Longitude, 'f', -1, 64))
		u += "?" + params.Encode()
	}

	var listings []models.RankedListing
	if err := r.get(ctx, u, &listings); err != nil {
		return nil, fmt.Errorf("store: list properties: %w", err)
	}
	return listings, nil
}

func (r *Remote) GetByID(ctx context.Context, id string) (models.Listing, error) {
	var listing models.Listing
	err := r.get(ctx, r.baseURL+"/properties/"+url.PathEscape(id), &listing)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return models.Listing{}, apperr.New(apperr.NotFound, "property %q not found", id)
		}
		return models.Listing{}, fmt.Errorf("store: get property %q: %w", id, err)
	}
	return listing, nil
}

func (r *Remote) Add(ctx context.Context, in models.NewListing) (models.Listing, error) {
	body, err := json.Marshal(map[string]any{
		"title":    in.Title,
		"price":    in.Price,
		"type":     in.Kind,
		"location": in.Address,
		"lat":      in.Location.Latitude,
		"lng":      in.Location.Longitude,
	})
	if err != nil {
		return models.Listing{}, fmt.Errorf("store: encode property: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/properties", bytes.NewReader(body))
	if err != nil {
		return models.Listing{}, fmt.Errorf("store: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return models.Listing{}, fmt.Errorf("store: add property: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return models.Listing{}, statusError(resp)
	}

	var listing models.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return models.Listing{}, fmt.Errorf("store: decode created property: %w", err)
	}
	return listing, nil
}

func (r *Remote) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError turns a non-success response into a kinded error, keeping the
// server's error message when the body carries one.
func statusError(resp *http.Response) error {
	msg := resp.Status
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperr.New(apperr.NotFound, "%s", msg)
	case http.StatusBadRequest:
		return apperr.New(apperr.InvalidArgument, "%s", msg)
	default:
		return apperr.New(apperr.Unavailable, "remote listing service: %s", msg)
	}
}
