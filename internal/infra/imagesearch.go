package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"tripforge/internal/models/response_models"
)

// ImageSearchClient is the boundary contract for the stock-photo upstream.
type ImageSearchClient interface {
	// Search returns ranked image descriptors for query. When the client is
	// unconfigured it returns (nil, nil) without touching the network.
	Search(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error)
	Configured() bool
}

const (
	defaultPexelsBaseURL = "https://api.pexels.com/v1"

	// client-side request throttle; the burst covers one search batch
	pexelsRequestInterval = 100 * time.Millisecond
	pexelsRequestBurst    = 3
)

// PexelsClient talks to a Pexels-style photo search API. Authentication is a
// static API key; an empty key means the service is unconfigured, which is a
// distinct condition from a transport failure.
type PexelsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewPexelsClient(apiKey, baseURL string) *PexelsClient {
	if baseURL == "" {
		baseURL = defaultPexelsBaseURL
	}
	return &PexelsClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(pexelsRequestInterval), pexelsRequestBurst),
	}
}

func (c *PexelsClient) Configured() bool {
	return c.apiKey != ""
}

type pexelsPhoto struct {
	ID           int64  `json:"id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Photographer string `json:"photographer"`
	Src          struct {
		Original string `json:"original"`
		Large    string `json:"large"`
		Medium   string `json:"medium"`
		Small    string `json:"small"`
	} `json:"src"`
}

type pexelsSearchResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

func (c *PexelsClient) Search(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
	if !c.Configured() {
		return nil, nil
	}
	if perPage < 1 {
		perPage = 5
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("image search: %w", err)
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("image search: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image search: unexpected status %d", resp.StatusCode)
	}

	var body pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("image search: decode response: %w", err)
	}

	results := make([]response_models.ImageResult, 0, len(body.Photos))
	for _, p := range body.Photos {
		results = append(results, response_models.ImageResult{
			ID:           strconv.FormatInt(p.ID, 10),
			Width:        p.Width,
			Height:       p.Height,
			Small:        p.Src.Small,
			Medium:       p.Src.Medium,
			Large:        p.Src.Large,
			Photographer: p.Photographer,
		})
	}
	return results, nil
}
