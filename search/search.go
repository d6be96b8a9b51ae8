package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"wayfare/errs"
	"wayfare/models"
)

// Client talks to the forward-geocoding endpoint. The provider returns
// features ranked by relevance; order is preserved, never re-ranked.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("GEOCODING_BASE_URL")
	if base == "" {
		base = "https://api.mapbox.com/geocoding/v5/mapbox.places"
	}
	return &Client{
		BaseURL: base,
		Token:   os.Getenv("MAPBOX_ACCESS_TOKEN"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeFeature struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"` // [lon, lat]
}

type geocodeResponse struct {
	Features []geocodeFeature `json:"features"`
}

// Search geocodes a free-text query. An empty or whitespace-only query
// yields an empty result without a network call.
func (c *Client) Search(ctx context.Context, query string) ([]models.Location, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Location{}, nil
	}

	endpoint := fmt.Sprintf("%s/%s.json?access_token=%s",
		c.BaseURL, url.PathEscape(query), url.QueryEscape(c.Token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &errs.SearchError{Err: err}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &errs.SearchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errs.SearchError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &errs.SearchError{Err: err}
	}

	locations := make([]models.Location, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		locations = append(locations, models.Location{
			ID:      f.ID,
			Name:    f.Text,
			Address: f.PlaceName,
			// provider center is [lon, lat]
			Coordinates: models.Coordinates{Lat: f.Center[1], Lng: f.Center[0]},
		})
	}
	return locations, nil
}
