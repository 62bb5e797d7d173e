package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/request_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary handles POST /itinerary/generate. The only error
// responses are for malformed request input; upstream trouble is absorbed
// into a degraded-quality document.
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.City) == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}
	if !req.ValidDayCount() {
		utils.RespondError(c, http.StatusBadRequest, "Days must be between 1 and 14")
		return
	}

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
