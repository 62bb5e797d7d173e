package utils

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
)

// PlannerClientInterface is the contract for the AI generation upstream: one
// prompt in, free-form text expected to embed one itinerary JSON object out.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Model() string
}

// NewPlannerClient Factory function to create either an OpenAI or Gemini
// planner based on config.
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlanner(apiKey, model), nil
	case "gemini":
		return NewGeminiPlanner(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// HashKey derives a short cache key from the given parts.
func HashKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
