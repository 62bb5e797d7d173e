package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// WeatherClient is the boundary contract for the weather upstream. Failures
// here are non-fatal; callers fall back to SeasonalForecast.
type WeatherClient interface {
	Forecast(ctx context.Context, coords Coordinates) (string, error)
}

const defaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeatherClient(apiKey, baseURL string) *OpenWeatherClient {
	if baseURL == "" {
		baseURL = defaultOpenWeatherBaseURL
	}
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (c *OpenWeatherClient) Forecast(ctx context.Context, coords Coordinates) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("weather: service unconfigured")
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", coords.Lat))
	q.Set("lon", fmt.Sprintf("%f", coords.Lon))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("weather: decode response: %w", err)
	}
	if len(body.Weather) == 0 {
		return "", fmt.Errorf("weather: empty response")
	}
	return fmt.Sprintf("%s, around %.0f°C", body.Weather[0].Description, body.Main.Temp), nil
}

// seasonalForecasts is the static fallback table, keyed by month.
var seasonalForecasts = map[time.Month]string{
	time.January:   "cool and dry, pack a light jacket",
	time.February:  "mild with clear skies",
	time.March:     "warming up, occasional showers",
	time.April:     "warm, good sightseeing weather",
	time.May:       "hot with afternoon showers possible",
	time.June:      "hot and humid, plan indoor breaks",
	time.July:      "hot, chance of monsoon rain",
	time.August:    "warm and wet, carry an umbrella",
	time.September: "warm with clearing skies",
	time.October:   "pleasant and mild",
	time.November:  "cool mornings, comfortable days",
	time.December:  "cool and festive, light layers",
}

// SeasonalForecast returns the static expectation for the given month. Used
// whenever the live weather call fails or is unconfigured.
func SeasonalForecast(month time.Month) string {
	if f, ok := seasonalForecasts[month]; ok {
		return f
	}
	return "mild, check a local forecast"
}
