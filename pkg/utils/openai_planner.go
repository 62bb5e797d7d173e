package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlanner implements PlannerClientInterface against the OpenAI chat API.
type OpenAIPlanner struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlanner(apiKey, model string) *OpenAIPlanner {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlanner{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlanner) Model() string { return c.model }

func (c *OpenAIPlanner) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}
	return resp.Choices[0].Message.Content, nil
}
