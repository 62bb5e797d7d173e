package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type PointOfInterest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// GeoClient is the boundary contract for the geocoding/POI upstream. An empty
// result set is valid "no data", distinct from a transport failure.
type GeoClient interface {
	Geocode(ctx context.Context, place string) (*Coordinates, error)
	NearbyPOIs(ctx context.Context, coords Coordinates) ([]PointOfInterest, error)
}

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimClient resolves place names via a Nominatim-style API and lists
// nearby points of interest.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	return &NominatimClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Name        string `json:"name"`
}

func (c *NominatimClient) Geocode(ctx context.Context, place string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	places, err := c.search(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q", places[0].Lat)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q", places[0].Lon)
	}
	return &Coordinates{Lat: lat, Lon: lon}, nil
}

func (c *NominatimClient) NearbyPOIs(ctx context.Context, coords Coordinates) ([]PointOfInterest, error) {
	q := url.Values{}
	q.Set("q", "attraction")
	q.Set("format", "json")
	q.Set("limit", "10")
	q.Set("viewbox", fmt.Sprintf("%f,%f,%f,%f", coords.Lon-0.1, coords.Lat+0.1, coords.Lon+0.1, coords.Lat-0.1))
	q.Set("bounded", "1")

	places, err := c.search(ctx, q)
	if err != nil {
		return nil, err
	}

	pois := make([]PointOfInterest, 0, len(places))
	for _, p := range places {
		name := p.Name
		if name == "" {
			name = p.DisplayName
		}
		if name == "" {
			continue
		}
		pois = append(pois, PointOfInterest{Name: name, Category: p.Category})
	}
	return pois, nil
}

func (c *NominatimClient) search(ctx context.Context, q url.Values) ([]nominatimPlace, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: build request: %w", err)
	}
	req.Header.Set("User-Agent", "tripforge/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("geocoding: unexpected status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("geocoding: decode response: %w", err)
	}
	return places, nil
}
