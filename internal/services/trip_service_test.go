package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/request_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

func newTestTripService() TripServiceInterface {
	return NewTripService(repositories.NewTripRepository())
}

func TestCreateTripValidatesInput(t *testing.T) {
	svc := newTestTripService()

	_, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{Title: " ", City: "Mumbai"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.CreateTrip(context.Background(), request_models.CreateTripRequest{Title: "Trip", City: ""})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateTripDefaultsAnonymousAuthor(t *testing.T) {
	svc := newTestTripService()

	trip, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{Title: "Trip", City: "Mumbai"})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous traveler", trip.Author)
}

func TestCreateTripTrimsFields(t *testing.T) {
	svc := newTestTripService()

	trip, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		Title: "  Golden Week  ", City: "  Tokyo  ", Author: "  Aki  ", Days: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Golden Week", trip.Title)
	assert.Equal(t, "Tokyo", trip.City)
	assert.Equal(t, "Aki", trip.Author)
}

func TestGetAndDeleteTripRejectEmptyID(t *testing.T) {
	svc := newTestTripService()

	_, err := svc.GetTrip(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	assert.ErrorIs(t, svc.DeleteTrip(context.Background(), ""), utils.ErrInvalidInput)
}

func TestTripLifecycle(t *testing.T) {
	svc := newTestTripService()
	ctx := context.Background()

	created, err := svc.CreateTrip(ctx, request_models.CreateTripRequest{Title: "Trip", City: "Paris"})
	require.NoError(t, err)

	got, err := svc.GetTrip(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.DeleteTrip(ctx, created.ID))
	assert.Empty(t, svc.ListTrips(ctx))
}
