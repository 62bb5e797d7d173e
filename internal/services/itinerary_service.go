package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"tripforge/internal/infra"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/resilience"
	"tripforge/pkg/jsonrepair"
	mem "tripforge/pkg/memcache"
	"tripforge/pkg/utils"
)

const itineraryCacheTTL = time.Hour

type ItineraryServiceInterface interface {
	// GenerateItinerary always returns a complete document for valid input.
	// Upstream failures are absorbed into fallback paths and disclosed via
	// metadata; the only errors surfaced here are input errors.
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	planner  utils.PlannerClientInterface // nil when no AI credential is configured
	images   ImageServiceInterface
	geo      GeoServiceInterface
	registry *resilience.Registry
	cache    *mem.Itineraries
	aiOp     resilience.Operation
}

func NewItineraryService(
	planner utils.PlannerClientInterface,
	images ImageServiceInterface,
	geo GeoServiceInterface,
	registry *resilience.Registry,
	cache *mem.Itineraries,
) ItineraryServiceInterface {
	return &ItineraryService{
		planner:  planner,
		images:   images,
		geo:      geo,
		registry: registry,
		cache:    cache,
		aiOp: resilience.Operation{
			Name:        "ai-generation",
			Deadline:    resilience.AICallTimeout,
			MaxAttempts: resilience.AIMaxAttempts,
			BaseDelay:   resilience.AIBaseDelay,
		},
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	if strings.TrimSpace(req.City) == "" {
		return nil, utils.ErrInvalidInput
	}
	if !req.ValidDayCount() {
		return nil, utils.ErrInvalidDayCount
	}

	cacheKey := utils.HashKey(req.City, req.Budget, strconv.Itoa(req.Days), strings.Join(req.Interests, ","))
	if cached, ok := s.cache.Get(cacheKey); ok {
		log.Printf("cache hit for itinerary %s/%d days", req.City, req.Days)
		return cached, nil
	}

	start := time.Now()
	outcome := s.generate(ctx, req)
	doc := outcome.doc

	repairItinerary(doc, req)

	coords, pois := s.geo.LookupCity(ctx, req.City)
	weather := s.geo.DailyWeather(ctx, coords)
	for i := range doc.Days {
		doc.Days[i].Weather = weather
	}

	images, degraded := s.images.CollectLocationImages(ctx, req.City, collectLocations(doc, pois))
	doc.LocationImages = images

	doc.Metadata = response_models.GenerationMetadata{
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Model:          outcome.model,
		ProcessingMS:   time.Since(start).Milliseconds(),
		GeneratedBy:    outcome.source,
		FallbackReason: outcome.reason,
		ImageFallback:  degraded,
	}

	s.cache.Set(cacheKey, doc, itineraryCacheTTL)
	return doc, nil
}

// generationOutcome is the explicit result of one generation stage sequence.
// The fallback state machine branches on it instead of on thrown errors.
type generationOutcome struct {
	doc    *response_models.Itinerary
	source string
	reason string
	model  string
}

func fallbackOutcome(req request_models.GenerateItineraryRequest, reason string) generationOutcome {
	log.Printf("falling back to deterministic generation: %s", reason)
	return generationOutcome{
		doc:    BuildFallbackItinerary(req),
		source: response_models.GeneratedByFallback,
		reason: reason,
	}
}

func (s *ItineraryService) generate(ctx context.Context, req request_models.GenerateItineraryRequest) generationOutcome {
	if s.planner == nil {
		return fallbackOutcome(req, "ai provider unconfigured")
	}

	var raw string
	err := s.registry.Execute(ctx, s.aiOp, func(ctx context.Context) error {
		var genErr error
		raw, genErr = s.planner.GenerateItinerary(ctx, buildPrompt(req))
		return genErr
	})
	if err != nil {
		if resilience.IsBreakerOpen(err) {
			// provably down: no attempt was made, skip straight to fallback
			return fallbackOutcome(req, "ai circuit open")
		}
		return fallbackOutcome(req, "ai generation failed")
	}

	doc, err := parseAIItinerary(raw, req)
	if err != nil {
		// retrying the same prompt rarely fixes a structural parse problem
		return fallbackOutcome(req, "malformed ai response")
	}
	if len(doc.Days) == 0 {
		return fallbackOutcome(req, "ai response missing days")
	}

	return generationOutcome{
		doc:    doc,
		source: response_models.GeneratedByAI,
		model:  s.planner.Model(),
	}
}

// parseAIItinerary repair-parses the model's free-form output into a document.
func parseAIItinerary(raw string, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	var body struct {
		Days    []response_models.DayPlan `json:"days"`
		Summary response_models.Summary   `json:"summary"`
	}
	if err := jsonrepair.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return &response_models.Itinerary{
		City:    strings.TrimSpace(req.City),
		Days:    body.Days,
		Summary: body.Summary,
	}, nil
}

func buildPrompt(req request_models.GenerateItineraryRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed %d-day travel itinerary for %s.\n", req.Days, req.City))
	if req.Budget != "" {
		prompt.WriteString(fmt.Sprintf("Total budget: %s.\n", req.Budget))
	}
	if len(req.Interests) > 0 {
		prompt.WriteString(fmt.Sprintf("Traveler interests: %s.\n", strings.Join(req.Interests, ", ")))
	}

	prompt.WriteString("\nCRITICAL REQUIREMENTS:\n")
	prompt.WriteString(fmt.Sprintf("1. Generate exactly %d days\n", req.Days))
	prompt.WriteString("2. Every day has morning, afternoon and evening activities\n")
	prompt.WriteString("3. Every day has exactly 3 meals: Breakfast, Lunch, Dinner\n")
	prompt.WriteString("4. Return ONLY valid JSON, no extra text\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "days": [
    {
      "day": 1,
      "morning": [{"name": "...", "description": "...", "location": "...", "category": "attraction", "cost": "low"}],
      "afternoon": [{"name": "...", "description": "...", "location": "...", "category": "culture", "cost": "medium"}],
      "evening": [{"name": "...", "description": "...", "location": "...", "category": "nature", "cost": "low"}],
      "meals": [
        {"meal": "Breakfast", "venue": "...", "cuisine": "...", "cost": "low"},
        {"meal": "Lunch", "venue": "...", "cuisine": "...", "cost": "medium"},
        {"meal": "Dinner", "venue": "...", "cuisine": "...", "cost": "medium"}
      ]
    }
  ],
  "summary": {
    "cost_breakdown": {"accommodation": "...", "food": "...", "activities": "...", "transport": "...", "total": "..."},
    "highlights": ["..."],
    "tips": ["..."]
  }
}`)

	return prompt.String()
}

// collectLocations gathers the distinct location names referenced by the
// document plus a handful of nearby POIs for extra variety.
func collectLocations(doc *response_models.Itinerary, pois []infra.PointOfInterest) []string {
	var out []string
	for _, day := range doc.Days {
		for _, group := range [][]response_models.Activity{day.Morning, day.Afternoon, day.Evening} {
			for _, act := range group {
				name := act.Location
				if name == "" {
					name = act.Name
				}
				if name != "" {
					out = append(out, name)
				}
			}
		}
	}

	const maxExtraPOIs = 5
	for i, poi := range pois {
		if i >= maxExtraPOIs {
			break
		}
		out = append(out, poi.Name)
	}
	return out
}
