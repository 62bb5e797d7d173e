package imagesfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripforge/internal/infra"
	"tripforge/internal/resilience"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideImageSearchClient, provideImageService)

func provideImageSearchClient() infra.ImageSearchClient {
	apiKey := os.Getenv("PEXELS_API_KEY")
	if apiKey == "" {
		log.Printf("no PEXELS_API_KEY configured, image search disabled")
	}
	return infra.NewPexelsClient(apiKey, os.Getenv("PEXELS_BASE_URL"))
}

func provideImageService(client infra.ImageSearchClient, registry *resilience.Registry) services.ImageServiceInterface {
	return services.NewImageService(client, registry)
}
