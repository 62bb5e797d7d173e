package services

import (
	"context"
	"strings"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context) []response_models.Trip
	GetTrip(ctx context.Context, id string) (*response_models.Trip, error)
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.Trip, error)
	DeleteTrip(ctx context.Context, id string) error
}

type TripService struct {
	tripRepo repositories.TripRepositoryInterface
}

func NewTripService(tripRepo repositories.TripRepositoryInterface) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (s *TripService) ListTrips(ctx context.Context) []response_models.Trip {
	return s.tripRepo.List(ctx)
}

func (s *TripService) GetTrip(ctx context.Context, id string) (*response_models.Trip, error) {
	if id == "" {
		return nil, utils.ErrInvalidInput
	}
	return s.tripRepo.GetByID(ctx, id)
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.Trip, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.City) == "" {
		return nil, utils.ErrInvalidInput
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = "Anonymous traveler"
	}

	trip := s.tripRepo.Create(ctx, response_models.Trip{
		Title:     strings.TrimSpace(req.Title),
		City:      strings.TrimSpace(req.City),
		Days:      req.Days,
		Author:    author,
		Itinerary: req.Itinerary,
	})
	return &trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, id string) error {
	if id == "" {
		return utils.ErrInvalidInput
	}
	return s.tripRepo.Delete(ctx, id)
}
