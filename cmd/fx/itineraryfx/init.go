package itineraryfx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
	"tripforge/internal/resilience"
	"tripforge/internal/services"
	mem "tripforge/pkg/memcache"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryCache, provideItineraryService, provideItineraryController)

func provideItineraryCache() *mem.Itineraries {
	return mem.NewItineraries()
}

func provideItineraryService(
	planner utils.PlannerClientInterface,
	images services.ImageServiceInterface,
	geo services.GeoServiceInterface,
	registry *resilience.Registry,
	cache *mem.Itineraries,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(planner, images, geo, registry, cache)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
