package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

type TripRepositoryInterface interface {
	List(ctx context.Context) []response_models.Trip
	GetByID(ctx context.Context, id string) (*response_models.Trip, error)
	Create(ctx context.Context, trip response_models.Trip) response_models.Trip
	Delete(ctx context.Context, id string) error
}

// TripRepository is the in-memory community-trips store. Nothing here
// survives a process restart.
type TripRepository struct {
	mu    sync.RWMutex
	trips map[string]response_models.Trip
	order []string
}

func NewTripRepository() TripRepositoryInterface {
	return &TripRepository{
		trips: make(map[string]response_models.Trip),
	}
}

func (r *TripRepository) List(ctx context.Context) []response_models.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]response_models.Trip, 0, len(r.order))
	for _, id := range r.order {
		if trip, ok := r.trips[id]; ok {
			out = append(out, trip)
		}
	}
	return out
}

func (r *TripRepository) GetByID(ctx context.Context, id string) (*response_models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, ok := r.trips[id]
	if !ok {
		return nil, utils.ErrTripNotFound
	}
	return &trip, nil
}

func (r *TripRepository) Create(ctx context.Context, trip response_models.Trip) response_models.Trip {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip.ID = uuid.New().String()
	trip.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	r.trips[trip.ID] = trip
	r.order = append(r.order, trip.ID)
	return trip
}

func (r *TripRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return utils.ErrTripNotFound
	}
	delete(r.trips, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
