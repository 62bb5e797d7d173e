package services

import (
	"strings"

	"tripforge/internal/models/response_models"
)

const (
	CategoryRestaurant = "restaurant"
	CategoryCulture    = "culture"
	CategoryNature     = "nature"
	CategoryAttraction = "attraction"
)

// InferCategory guesses a semantic category from keywords in the location
// name. Untagged names default to a generic attraction.
func InferCategory(name string) string {
	lower := strings.ToLower(name)

	for _, kw := range []string{"restaurant", "cafe", "café", "bistro", "food", "market", "bakery", "eatery", "diner"} {
		if strings.Contains(lower, kw) {
			return CategoryRestaurant
		}
	}
	for _, kw := range []string{"museum", "temple", "palace", "gallery", "fort", "church", "cathedral", "monastery", "heritage", "memorial"} {
		if strings.Contains(lower, kw) {
			return CategoryCulture
		}
	}
	for _, kw := range []string{"park", "beach", "lake", "garden", "mountain", "falls", "river", "forest", "island", "bay"} {
		if strings.Contains(lower, kw) {
			return CategoryNature
		}
	}
	return CategoryAttraction
}

func categoryQuery(location, category string) string {
	switch category {
	case CategoryRestaurant:
		return location + " restaurant food"
	case CategoryCulture:
		return location + " architecture landmark"
	case CategoryNature:
		return location + " landscape scenic"
	default:
		return location + " travel destination"
	}
}

// fallbackQueries are walked in order when the location's own query yields
// nothing at all.
func fallbackQueries(category string) []string {
	switch category {
	case CategoryRestaurant:
		return []string{"local cuisine restaurant", "street food market"}
	case CategoryCulture:
		return []string{"historic architecture", "cultural landmark"}
	case CategoryNature:
		return []string{"scenic nature landscape", "outdoor adventure"}
	default:
		return []string{"city skyline travel", "famous landmark"}
	}
}

// curatedImages is the static last-resort table for well-known destinations.
var curatedImages = map[string]response_models.ImageResult{
	"mumbai": {
		ID: "curated-mumbai", Width: 1920, Height: 1280,
		Small:        "https://images.pexels.com/photos/2409953/pexels-photo-2409953.jpeg?w=400",
		Medium:       "https://images.pexels.com/photos/2409953/pexels-photo-2409953.jpeg?w=800",
		Large:        "https://images.pexels.com/photos/2409953/pexels-photo-2409953.jpeg?w=1600",
		Photographer: "Curated",
	},
	"delhi": {
		ID: "curated-delhi", Width: 1920, Height: 1280,
		Small:        "https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg?w=400",
		Medium:       "https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg?w=800",
		Large:        "https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg?w=1600",
		Photographer: "Curated",
	},
	"paris": {
		ID: "curated-paris", Width: 1920, Height: 1280,
		Small:        "https://images.pexels.com/photos/338515/pexels-photo-338515.jpeg?w=400",
		Medium:       "https://images.pexels.com/photos/338515/pexels-photo-338515.jpeg?w=800",
		Large:        "https://images.pexels.com/photos/338515/pexels-photo-338515.jpeg?w=1600",
		Photographer: "Curated",
	},
	"tokyo": {
		ID: "curated-tokyo", Width: 1920, Height: 1280,
		Small:        "https://images.pexels.com/photos/2506923/pexels-photo-2506923.jpeg?w=400",
		Medium:       "https://images.pexels.com/photos/2506923/pexels-photo-2506923.jpeg?w=800",
		Large:        "https://images.pexels.com/photos/2506923/pexels-photo-2506923.jpeg?w=1600",
		Photographer: "Curated",
	},
}

var genericCityImage = response_models.ImageResult{
	ID: "curated-generic", Width: 1920, Height: 1280,
	Small:        "https://images.pexels.com/photos/346885/pexels-photo-346885.jpeg?w=400",
	Medium:       "https://images.pexels.com/photos/346885/pexels-photo-346885.jpeg?w=800",
	Large:        "https://images.pexels.com/photos/346885/pexels-photo-346885.jpeg?w=1600",
	Photographer: "Curated",
}

// CuratedImage returns the static fallback image for a city.
func CuratedImage(city string) response_models.ImageResult {
	if img, ok := curatedImages[strings.ToLower(strings.TrimSpace(city))]; ok {
		return img
	}
	return genericCityImage
}
