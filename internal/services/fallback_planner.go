package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
)

// Deterministic template-based generation. This path does no I/O and cannot
// fail; it is the guaranteed terminal success of the fallback chain.

var fallbackMorning = []string{
	"Old Town Walking Tour",
	"City Museum Visit",
	"Central Market Stroll",
	"Heritage District Exploration",
	"Botanical Garden Walk",
}

var fallbackAfternoon = []string{
	"Landmark Sightseeing",
	"Local Art Gallery",
	"Riverside Promenade",
	"Historic Temple Visit",
	"Craft Quarter Browsing",
}

var fallbackEvening = []string{
	"Sunset Viewpoint",
	"Night Market Visit",
	"Cultural Show",
	"Waterfront Dinner Walk",
	"Rooftop City Views",
}

var fallbackCuisines = []string{"local specialties", "regional classics", "street food favorites", "traditional dishes"}

// BuildFallbackItinerary assembles a complete document from static templates
// parameterized by city, day count and budget. Every day has non-empty
// morning/afternoon/evening lists and exactly three meals.
func BuildFallbackItinerary(req request_models.GenerateItineraryRequest) *response_models.Itinerary {
	city := strings.TrimSpace(req.City)

	days := make([]response_models.DayPlan, 0, req.Days)
	for d := 1; d <= req.Days; d++ {
		days = append(days, buildFallbackDay(city, d, req.Interests))
	}

	return &response_models.Itinerary{
		City:    city,
		Days:    days,
		Summary: buildFallbackSummary(city, req.Budget, req.Days),
	}
}

func buildFallbackDay(city string, day int, interests []string) response_models.DayPlan {
	pick := func(pool []string) string {
		return pool[(day-1)%len(pool)]
	}

	theme := ""
	if len(interests) > 0 {
		theme = interests[(day-1)%len(interests)]
	}

	activity := func(name, period string) response_models.Activity {
		desc := fmt.Sprintf("%s in %s", name, city)
		if theme != "" {
			desc += fmt.Sprintf(", with a focus on %s", theme)
		}
		return response_models.Activity{
			Name:        name,
			Description: desc,
			Location:    fmt.Sprintf("%s, %s", name, city),
			Category:    InferCategory(name),
			Cost:        periodCost(period),
		}
	}

	cuisine := pick(fallbackCuisines)
	return response_models.DayPlan{
		Day:       day,
		Date:      time.Now().AddDate(0, 0, day-1).Format("2006-01-02"),
		Morning:   []response_models.Activity{activity(pick(fallbackMorning), "morning")},
		Afternoon: []response_models.Activity{activity(pick(fallbackAfternoon), "afternoon")},
		Evening:   []response_models.Activity{activity(pick(fallbackEvening), "evening")},
		Meals: []response_models.Meal{
			{Meal: MealBreakfast, Venue: fmt.Sprintf("%s Morning Café", city), Cuisine: cuisine, Cost: "low"},
			{Meal: MealLunch, Venue: fmt.Sprintf("%s Local Kitchen", city), Cuisine: cuisine, Cost: "medium"},
			{Meal: MealDinner, Venue: fmt.Sprintf("%s Evening Bistro", city), Cuisine: cuisine, Cost: "medium"},
		},
	}
}

func periodCost(period string) string {
	if period == "evening" {
		return "medium"
	}
	return "low"
}

func buildFallbackSummary(city, budget string, days int) response_models.Summary {
	total := parseBudget(budget)

	breakdown := response_models.CostBreakdown{
		Accommodation: formatShare(total, 0.40),
		Food:          formatShare(total, 0.25),
		Activities:    formatShare(total, 0.20),
		Transport:     formatShare(total, 0.15),
		Total:         budgetLabel(total, budget),
	}

	return response_models.Summary{
		CostBreakdown: breakdown,
		Highlights: []string{
			fmt.Sprintf("Explore the historic heart of %s", city),
			fmt.Sprintf("Taste the local food scene across %d days", days),
			"Catch a sunset from the best viewpoint in town",
		},
		Tips: []string{
			"Carry small change for markets and street vendors",
			"Start sightseeing early to beat the crowds",
			"Check opening hours before visiting museums",
		},
	}
}

// parseBudget pulls the leading numeric amount out of a free-form budget
// string. Returns 0 when nothing numeric is present.
func parseBudget(budget string) float64 {
	cleaned := strings.TrimSpace(budget)
	end := 0
	for end < len(cleaned) && (cleaned[end] >= '0' && cleaned[end] <= '9' || cleaned[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

func formatShare(total, share float64) string {
	if total <= 0 {
		return "flexible"
	}
	return strconv.FormatFloat(total*share, 'f', 0, 64)
}

func budgetLabel(total float64, raw string) string {
	if total <= 0 {
		if strings.TrimSpace(raw) == "" {
			return "flexible"
		}
		return raw
	}
	return strconv.FormatFloat(total, 'f', 0, 64)
}
