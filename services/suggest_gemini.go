package services

import (
	"context"
	"encoding/json"
	"fmt"

	"solotravel-backend/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiModels is tried in order; newer models rate-limit more often on
// free tiers, so older ones serve as in-provider fallbacks.
var geminiModels = []string{"gemini-2.0-flash", "gemini-1.5-flash"}

type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Suggest(ctx context.Context, itinerary []models.Activity, prompt, referenceDate string) ([]models.Activity, error) {
	fullPrompt := buildSuggestionPrompt(itinerary, prompt, referenceDate)

	var lastErr error
	for _, modelName := range geminiModels {
		model := p.client.GenerativeModel(modelName)
		model.ResponseMIMEType = "application/json"

		resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
		if err != nil {
			lastErr = fmt.Errorf("model %s: %w", modelName, err)
			continue
		}

		if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = fmt.Errorf("model %s: empty response", modelName)
			continue
		}

		text := ""
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				text += string(textPart)
			}
		}

		var items []suggestionItem
		if err := json.Unmarshal([]byte(cleanJSONResponse(text)), &items); err != nil {
			lastErr = fmt.Errorf("model %s: parsing response: %w", modelName, err)
			continue
		}

		return suggestionItemsToActivities(items), nil
	}

	return nil, lastErr
}

func buildSuggestionPrompt(itinerary []models.Activity, userPrompt, referenceDate string) string {
	return fmt.Sprintf(`You are a travel assistant for the "SoloTravel" app.
The user wants to modify their itinerary based on this request: "%s".

Current Itinerary Context: %s

Return a JSON array of NEW or MODIFIED activities. Each element must have:
- "date": YYYY-MM-DD (infer from the request; use %s if ambiguous)
- "time": HH:MM
- "title": string
- "description": string
- "type": one of %q, %q, %q, %q, %q
Optional: "priceEstimate" (number), "currency" (one of "USD", "JPY", "EUR", "TWD").

Maintain "quiet luxury" vibes in descriptions.
Do not include markdown formatting or additional text. Only return the raw JSON array.`,
		userPrompt,
		itineraryContext(itinerary),
		referenceDate,
		models.ActivityTypeSightseeing, models.ActivityTypeFood, models.ActivityTypeTransport,
		models.ActivityTypeShopping, models.ActivityTypeAccommodation)
}
