package plannerfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient)

// ProvidePlannerClient builds the AI planner from environment configuration.
// A missing credential is not an error: the itinerary service goes straight
// to deterministic generation when the planner is nil.
func ProvidePlannerClient() utils.PlannerClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	var apiKey string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	if apiKey == "" {
		log.Printf("no %s API key configured, AI generation disabled", provider)
		return nil
	}

	client, err := utils.NewPlannerClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("failed to create %s planner, AI generation disabled: %v", provider, err)
		return nil
	}

	log.Printf("AI planner ready: provider=%s model=%s", provider, client.Model())
	return client
}
