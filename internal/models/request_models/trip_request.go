package request_models

import "tripforge/internal/models/response_models"

type CreateTripRequest struct {
	Title     string                     `json:"title"`
	City      string                     `json:"city"`
	Days      int                        `json:"days"`
	Author    string                     `json:"author"`
	Itinerary *response_models.Itinerary `json:"itinerary,omitempty"`
}
