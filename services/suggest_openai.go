package services

import (
	"context"
	"encoding/json"
	"fmt"

	"solotravel-backend/models"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider is the second link in the fallback chain, so a Gemini
// quota exhaustion does not take the assistant down with it.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Suggest(ctx context.Context, itinerary []models.Activity, prompt, referenceDate string) ([]models.Activity, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel assistant. Respond with a raw JSON array only, no prose.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildSuggestionPrompt(itinerary, prompt, referenceDate),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai completion: empty response")
	}

	var items []suggestionItem
	if err := json.Unmarshal([]byte(cleanJSONResponse(resp.Choices[0].Message.Content)), &items); err != nil {
		return nil, fmt.Errorf("parsing openai response: %w", err)
	}

	return suggestionItemsToActivities(items), nil
}
