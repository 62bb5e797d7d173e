package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
)

func TestRepairItineraryPadsMissingDays(t *testing.T) {
	req := request_models.GenerateItineraryRequest{City: "Mumbai", Days: 3}
	doc := &response_models.Itinerary{
		Days: []response_models.DayPlan{
			{Day: 1, Morning: []response_models.Activity{{Name: "Gateway of India"}}},
		},
	}

	repairItinerary(doc, req)

	require.Len(t, doc.Days, 3)
	for i, day := range doc.Days {
		assert.Equal(t, i+1, day.Day)
		assert.NotEmpty(t, day.Date)
		require.Len(t, day.Meals, 3)
	}
	// the supplied day survives, only gaps are synthesized
	assert.Equal(t, "Gateway of India", doc.Days[0].Morning[0].Name)
}

func TestRepairItineraryTruncatesSurplusDays(t *testing.T) {
	req := request_models.GenerateItineraryRequest{City: "Paris", Days: 2}
	doc := &response_models.Itinerary{
		Days: make([]response_models.DayPlan, 5),
	}

	repairItinerary(doc, req)

	assert.Len(t, doc.Days, 2)
}

func TestRepairItineraryRenumbersDays(t *testing.T) {
	req := request_models.GenerateItineraryRequest{City: "Tokyo", Days: 3}
	doc := &response_models.Itinerary{
		Days: []response_models.DayPlan{{Day: 4}, {Day: 9}, {Day: 1}},
	}

	repairItinerary(doc, req)

	for i, day := range doc.Days {
		assert.Equal(t, i+1, day.Day)
	}
}

func TestRepairItineraryFillsEmptyPeriods(t *testing.T) {
	req := request_models.GenerateItineraryRequest{City: "Delhi", Days: 1}
	doc := &response_models.Itinerary{
		Days: []response_models.DayPlan{
			{Day: 1, Afternoon: []response_models.Activity{{Name: "Red Fort"}}},
		},
	}

	repairItinerary(doc, req)

	day := doc.Days[0]
	require.NotEmpty(t, day.Morning)
	assert.Equal(t, "Free exploration", day.Morning[0].Name)
	assert.Equal(t, "Red Fort", day.Afternoon[0].Name)
	require.NotEmpty(t, day.Evening)
	assert.Equal(t, "Free exploration", day.Evening[0].Name)
}

func TestRepairMealsKeepsSuppliedMealsCaseInsensitively(t *testing.T) {
	meals := repairMeals([]response_models.Meal{
		{Meal: " lunch ", Venue: "Street Stall", Cuisine: "chaat", Cost: "low"},
	}, "Mumbai")

	require.Len(t, meals, 3)
	assert.Equal(t, MealBreakfast, meals[0].Meal)
	assert.Equal(t, MealLunch, meals[1].Meal)
	assert.Equal(t, "Street Stall", meals[1].Venue)
	assert.Equal(t, MealDinner, meals[2].Meal)
}

func TestRepairMealsDropsDuplicatesAndStrays(t *testing.T) {
	meals := repairMeals([]response_models.Meal{
		{Meal: "Dinner", Venue: "First Bistro"},
		{Meal: "Dinner", Venue: "Second Bistro"},
		{Meal: "Brunch", Venue: "Nowhere"},
	}, "Paris")

	require.Len(t, meals, 3)
	assert.Equal(t, MealBreakfast, meals[0].Meal)
	assert.Equal(t, MealLunch, meals[1].Meal)
	assert.Equal(t, "First Bistro", meals[2].Venue, "first match wins")
}
