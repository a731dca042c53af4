package services

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type ExpenseParseService interface {
	// ParseExpenseFromText extracts a draft expense from free text like
	// "1200 yen matcha ice cream". The caller decides whether to commit it.
	ParseExpenseFromText(ctx context.Context, text string) (*ParsedExpense, error)
}

type ParsedExpense struct {
	Amount      float64             `json:"amount"`
	Currency    models.Currency     `json:"currency,omitempty"`
	Category    models.ActivityType `json:"category,omitempty"`
	Description string              `json:"description"`
}

type expenseParseService struct {
	client *genai.Client
}

func NewExpenseParseService(apiKey string) (ExpenseParseService, error) {
	if apiKey == "" {
		return &disabledExpenseParseService{}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &expenseParseService{client: client}, nil
}

// disabledExpenseParseService stands in when no Gemini key is
// configured, so the rest of the API still serves.
type disabledExpenseParseService struct{}

func (s *disabledExpenseParseService) ParseExpenseFromText(ctx context.Context, text string) (*ParsedExpense, error) {
	return nil, apperrors.AIServiceError(fmt.Errorf("expense parsing is not configured"))
}

func (s *expenseParseService) ParseExpenseFromText(ctx context.Context, text string) (*ParsedExpense, error) {
	prompt := fmt.Sprintf(`Extract expense details from this text: "%s".
If currency is not specified, guess based on context or default to USD.

Return ONLY valid JSON in this format:
{
  "amount": number,
  "currency": "USD" | "JPY" | "EUR" | "TWD",
  "category": "Sightseeing" | "Food" | "Transport" | "Shopping" | "Accommodation",
  "description": "string"
}
"amount" and "description" are required. Do not include markdown formatting or additional text.`, text)

	model := s.client.GenerativeModel(geminiModels[0])
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, apperrors.AIServiceError(err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, apperrors.AIServiceError(fmt.Errorf("empty response"))
	}

	raw := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			raw += string(textPart)
		}
	}

	var wire struct {
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &wire); err != nil {
		return nil, apperrors.AIServiceError(fmt.Errorf("parsing response: %w", err))
	}

	if wire.Description == "" || wire.Amount <= 0 {
		return nil, apperrors.AIServiceError(fmt.Errorf("model returned incomplete expense"))
	}

	currency, _ := models.ParseCurrency(wire.Currency, models.CurrencyUSD)
	category, _ := models.ParseActivityType(wire.Category)

	return &ParsedExpense{
		Amount:      wire.Amount,
		Currency:    currency,
		Category:    category,
		Description: wire.Description,
	}, nil
}
