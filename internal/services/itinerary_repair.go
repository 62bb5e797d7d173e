package services

import (
	"fmt"
	"strings"
	"time"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
)

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
)

// repairItinerary normalizes a document regardless of which generation path
// produced it: exactly req.Days day entries, sequential day numbers, non-empty
// activity lists for every period and exactly three meals per day.
func repairItinerary(doc *response_models.Itinerary, req request_models.GenerateItineraryRequest) {
	city := strings.TrimSpace(req.City)
	doc.City = city

	// truncate surplus days, pad missing ones from the templates
	if len(doc.Days) > req.Days {
		doc.Days = doc.Days[:req.Days]
	}
	for len(doc.Days) < req.Days {
		doc.Days = append(doc.Days, buildFallbackDay(city, len(doc.Days)+1, req.Interests))
	}

	for i := range doc.Days {
		day := &doc.Days[i]
		day.Day = i + 1
		if day.Date == "" {
			day.Date = time.Now().AddDate(0, 0, i).Format("2006-01-02")
		}
		repairPeriods(day, city)
		day.Meals = repairMeals(day.Meals, city)
	}
}

func repairPeriods(day *response_models.DayPlan, city string) {
	fill := func(period string) []response_models.Activity {
		return []response_models.Activity{
			{
				Name:        "Free exploration",
				Description: fmt.Sprintf("Explore %s at your own pace this %s", city, period),
				Location:    city,
				Category:    CategoryAttraction,
				Cost:        "low",
			},
		}
	}

	if len(day.Morning) == 0 {
		day.Morning = fill("morning")
	}
	if len(day.Afternoon) == 0 {
		day.Afternoon = fill("afternoon")
	}
	if len(day.Evening) == 0 {
		day.Evening = fill("evening")
	}
}

// repairMeals returns exactly one Breakfast, one Lunch and one Dinner,
// keeping whatever the generation path supplied and synthesizing the rest.
func repairMeals(meals []response_models.Meal, city string) []response_models.Meal {
	defaults := map[string]response_models.Meal{
		MealBreakfast: {Meal: MealBreakfast, Venue: fmt.Sprintf("%s Morning Café", city), Cuisine: "local specialties", Cost: "low"},
		MealLunch:     {Meal: MealLunch, Venue: fmt.Sprintf("%s Local Kitchen", city), Cuisine: "local specialties", Cost: "medium"},
		MealDinner:    {Meal: MealDinner, Venue: fmt.Sprintf("%s Evening Bistro", city), Cuisine: "local specialties", Cost: "medium"},
	}

	out := make([]response_models.Meal, 0, 3)
	for _, label := range []string{MealBreakfast, MealLunch, MealDinner} {
		found := false
		for _, m := range meals {
			if strings.EqualFold(strings.TrimSpace(m.Meal), label) {
				m.Meal = label
				out = append(out, m)
				found = true
				break
			}
		}
		if !found {
			out = append(out, defaults[label])
		}
	}
	return out
}
