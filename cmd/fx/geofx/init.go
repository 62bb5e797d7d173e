package geofx

import (
	"os"

	"go.uber.org/fx"

	"tripforge/internal/infra"
	"tripforge/internal/resilience"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideGeoClient, provideWeatherClient, provideGeoService)

func provideGeoClient() infra.GeoClient {
	return infra.NewNominatimClient(os.Getenv("NOMINATIM_BASE_URL"))
}

func provideWeatherClient() infra.WeatherClient {
	return infra.NewOpenWeatherClient(os.Getenv("OPENWEATHER_API_KEY"), os.Getenv("OPENWEATHER_BASE_URL"))
}

func provideGeoService(geo infra.GeoClient, weather infra.WeatherClient, registry *resilience.Registry) services.GeoServiceInterface {
	return services.NewGeoService(geo, weather, registry)
}
