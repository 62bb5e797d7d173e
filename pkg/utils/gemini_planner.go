package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiPlanner implements PlannerClientInterface using Google's Gemini models.
type GeminiPlanner struct {
	client *genai.Client
	model  string
}

func NewGeminiPlanner(apiKey, model string) (*GeminiPlanner, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlanner{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlanner) Model() string { return c.model }

func (c *GeminiPlanner) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1)
	model.SetTopP(0.5)
	model.SetTopK(20)
	model.SetMaxOutputTokens(5000)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiPlanner) Close() error {
	return c.client.Close()
}
