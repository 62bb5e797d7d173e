package tripsfx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripsController)

func provideTripRepo() repositories.TripRepositoryInterface {
	return repositories.NewTripRepository()
}

func provideTripService(tripRepo repositories.TripRepositoryInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideTripsController(tripService services.TripServiceInterface) *controllers.TripsController {
	return controllers.NewTripsController(tripService)
}
