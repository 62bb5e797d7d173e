package services

import (
	"context"
	"log"
	"time"

	"tripforge/internal/infra"
	"tripforge/internal/resilience"
)

type GeoServiceInterface interface {
	// LookupCity geocodes the city and lists nearby points of interest.
	// Both results are best-effort: nil coordinates and an empty POI list
	// are valid outcomes, never errors.
	LookupCity(ctx context.Context, city string) (*infra.Coordinates, []infra.PointOfInterest)

	// DailyWeather returns a human-readable forecast line, falling back to
	// the seasonal table when the live call fails.
	DailyWeather(ctx context.Context, coords *infra.Coordinates) string
}

type GeoService struct {
	geo      infra.GeoClient
	weather  infra.WeatherClient
	registry *resilience.Registry
}

func NewGeoService(geo infra.GeoClient, weather infra.WeatherClient, registry *resilience.Registry) GeoServiceInterface {
	return &GeoService{
		geo:      geo,
		weather:  weather,
		registry: registry,
	}
}

func (s *GeoService) LookupCity(ctx context.Context, city string) (*infra.Coordinates, []infra.PointOfInterest) {
	var coords *infra.Coordinates
	err := s.registry.Execute(ctx, resilience.Operation{
		Name:     "geocoding",
		Deadline: resilience.DefaultTimeout,
	}, func(ctx context.Context) error {
		var geoErr error
		coords, geoErr = s.geo.Geocode(ctx, city)
		return geoErr
	})
	if err != nil {
		log.Printf("geocoding %q failed: %v", city, err)
		return nil, nil
	}
	if coords == nil {
		// valid "no data" response
		return nil, nil
	}

	var pois []infra.PointOfInterest
	err = s.registry.Execute(ctx, resilience.Operation{
		Name:     "geocoding",
		Deadline: resilience.DefaultTimeout,
	}, func(ctx context.Context) error {
		var poiErr error
		pois, poiErr = s.geo.NearbyPOIs(ctx, *coords)
		return poiErr
	})
	if err != nil {
		log.Printf("POI lookup for %q failed: %v", city, err)
		return coords, nil
	}
	return coords, pois
}

func (s *GeoService) DailyWeather(ctx context.Context, coords *infra.Coordinates) string {
	if coords == nil {
		return infra.SeasonalForecast(time.Now().Month())
	}

	var forecast string
	err := s.registry.Execute(ctx, resilience.Operation{
		Name:     "weather",
		Deadline: resilience.DefaultTimeout,
	}, func(ctx context.Context) error {
		var wErr error
		forecast, wErr = s.weather.Forecast(ctx, *coords)
		return wErr
	})
	if err != nil {
		log.Printf("weather lookup failed, using seasonal table: %v", err)
		return infra.SeasonalForecast(time.Now().Month())
	}
	return forecast
}
