package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wedonate/pkg/types"
)

// Client resolves free-text addresses against the Nominatim search API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		// Geocoding is the slowest, least essential external call; a hard
		// timeout keeps a slow provider from stalling mutation requests.
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the coordinates of the highest-relevance match, or nil when
// the provider has no result for the address. Transport and status failures
// are returned as errors; callers decide whether that is fatal.
func (c *Client) Resolve(ctx context.Context, address string) (*types.Coordinates, error) {
	if address == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.ExternalServiceError{Service: "geocode", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &types.ExternalServiceError{
			Service: "geocode",
			Err:     fmt.Errorf("search failed with status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, &types.ExternalServiceError{Service: "geocode", Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, &types.ExternalServiceError{Service: "geocode", Err: fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)}
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, &types.ExternalServiceError{Service: "geocode", Err: fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)}
	}

	return &types.Coordinates{Latitude: lat, Longitude: lon}, nil
}
