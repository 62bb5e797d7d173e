package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/response_models"
)

func TestItinerariesSetAndGet(t *testing.T) {
	cache := NewItineraries()
	doc := &response_models.Itinerary{City: "Mumbai"}

	cache.Set("key", doc, time.Minute)

	got, ok := cache.Get("key")
	require.True(t, ok)
	assert.Same(t, doc, got)
}

func TestItinerariesMiss(t *testing.T) {
	cache := NewItineraries()

	_, ok := cache.Get("absent")
	assert.False(t, ok)
}

func TestItinerariesExpiry(t *testing.T) {
	cache := NewItineraries()
	cache.Set("key", &response_models.Itinerary{City: "Paris"}, 10*time.Millisecond)

	time.Sleep(25 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}
