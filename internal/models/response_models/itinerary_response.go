package response_models

// ImageResult is one photo returned by the image-search upstream or by the
// curated static table. Immutable once returned.
type ImageResult struct {
	ID           string `json:"id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Small        string `json:"small"`
	Medium       string `json:"medium"`
	Large        string `json:"large"`
	Photographer string `json:"photographer"`
}

type Meal struct {
	Meal    string `json:"meal"`
	Venue   string `json:"venue"`
	Cuisine string `json:"cuisine"`
	Cost    string `json:"cost"`
}

type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category,omitempty"`
	Cost        string `json:"cost,omitempty"`
}

type DayPlan struct {
	Day       int        `json:"day"`
	Date      string     `json:"date,omitempty"`
	Weather   string     `json:"weather,omitempty"`
	Morning   []Activity `json:"morning"`
	Afternoon []Activity `json:"afternoon"`
	Evening   []Activity `json:"evening"`
	Meals     []Meal     `json:"meals"`
}

type CostBreakdown struct {
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
	Transport     string `json:"transport"`
	Total         string `json:"total"`
}

type Summary struct {
	CostBreakdown CostBreakdown `json:"cost_breakdown"`
	Highlights    []string      `json:"highlights"`
	Tips          []string      `json:"tips"`
}

// GenerationMetadata discloses which paths produced the document. Degraded
// output is still a success; these fields exist for observability only.
type GenerationMetadata struct {
	GeneratedAt    string `json:"generated_at"`
	Model          string `json:"model,omitempty"`
	ProcessingMS   int64  `json:"processing_ms"`
	GeneratedBy    string `json:"generated_by"`
	FallbackReason string `json:"fallback_reason,omitempty"`
	ImageFallback  bool   `json:"image_fallback,omitempty"`
}

const (
	GeneratedByAI       = "ai"
	GeneratedByFallback = "fallback"
)

type Itinerary struct {
	City           string                 `json:"city"`
	Days           []DayPlan              `json:"days"`
	Summary        Summary                `json:"summary"`
	LocationImages map[string]ImageResult `json:"location_images"`
	Metadata       GenerationMetadata     `json:"metadata"`
}
