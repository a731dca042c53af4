package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
	"solotravel-backend/store"

	"go.uber.org/zap"
)

// SuggestionProvider converts a free-text request plus itinerary context
// into proposed activity records. Implementations must give every record
// a concrete date (defaulting to referenceDate), a time, title,
// description, and a type from the closed enumeration.
type SuggestionProvider interface {
	Name() string
	Suggest(ctx context.Context, itinerary []models.Activity, prompt, referenceDate string) ([]models.Activity, error)
}

type SuggestionService interface {
	// Suggest runs the provider chain and, on success, appends the
	// returned records to the itinerary with fresh ids. A failure leaves
	// the itinerary exactly as it was: no partial application.
	Suggest(ctx context.Context, prompt, referenceDate string) ([]models.Activity, error)
}

type suggestionService struct {
	providers []SuggestionProvider
	itinerary ItineraryService
	store     store.ItineraryStore
}

func NewSuggestionService(providers []SuggestionProvider, itinerary ItineraryService, itineraryStore store.ItineraryStore) SuggestionService {
	return &suggestionService{
		providers: providers,
		itinerary: itinerary,
		store:     itineraryStore,
	}
}

func (s *suggestionService) Suggest(ctx context.Context, prompt, referenceDate string) ([]models.Activity, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperrors.MissingRequiredField("Prompt")
	}

	snapshot := s.store.List()

	var lastErr error
	for _, provider := range s.providers {
		suggested, err := provider.Suggest(ctx, snapshot, prompt, referenceDate)
		if err != nil {
			if isNonRetryable(err) {
				zap.L().Warn("Suggestion provider failed with non-retryable error, stopping chain",
					zap.String("provider", provider.Name()),
					zap.Error(err))
				return nil, apperrors.AIServiceError(err)
			}
			zap.L().Warn("Suggestion provider failed, trying next",
				zap.String("provider", provider.Name()),
				zap.Error(err))
			lastErr = err
			continue
		}

		cleaned := sanitizeSuggestions(suggested, referenceDate)
		if len(cleaned) == 0 {
			lastErr = errors.New("provider returned no usable activities")
			continue
		}

		appended := s.itinerary.AppendSuggestions(cleaned)
		zap.L().Info("Suggestion accepted",
			zap.String("provider", provider.Name()),
			zap.Int("activities", len(appended)))
		return appended, nil
	}

	return nil, apperrors.AIServiceError(lastErr)
}

// sanitizeSuggestions enforces the provider contract on whatever came
// back: concrete date, zero-padded time, validated type, sane price.
func sanitizeSuggestions(suggested []models.Activity, referenceDate string) []models.Activity {
	cleaned := make([]models.Activity, 0, len(suggested))
	for _, a := range suggested {
		if strings.TrimSpace(a.Title) == "" {
			continue
		}
		if a.Date == "" {
			a.Date = referenceDate
		}
		if a.Time == "" {
			a.Time = DefaultActivityTime
		}
		if parsed, ok := models.ParseActivityType(string(a.Type)); !ok {
			zap.L().Debug("Coercing unknown suggested type",
				zap.String("type", string(a.Type)),
				zap.String("title", a.Title))
			a.Type = parsed
		}
		if a.PriceEstimate < 0 {
			a.PriceEstimate = 0
		}
		cleaned = append(cleaned, a)
	}
	return cleaned
}

func isNonRetryable(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// suggestionItem is the wire shape every provider prompts for.
type suggestionItem struct {
	Date          string  `json:"date,omitempty"`
	Time          string  `json:"time"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	PriceEstimate float64 `json:"priceEstimate,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}

func suggestionItemsToActivities(items []suggestionItem) []models.Activity {
	activities := make([]models.Activity, 0, len(items))
	for _, item := range items {
		currency, _ := models.ParseCurrency(item.Currency, models.CurrencyJPY)
		activityType, _ := models.ParseActivityType(item.Type)
		activities = append(activities, models.Activity{
			Date:          item.Date,
			Time:          item.Time,
			Title:         item.Title,
			Description:   item.Description,
			Type:          activityType,
			PriceEstimate: item.PriceEstimate,
			Currency:      currency,
		})
	}
	return activities
}

// itineraryContext is the trimmed view of the current plan included in
// provider prompts: date, time, title and type per entry.
func itineraryContext(itinerary []models.Activity) string {
	type entry struct {
		Date  string `json:"date"`
		Time  string `json:"time"`
		Title string `json:"title"`
		Type  string `json:"type"`
	}
	entries := make([]entry, 0, len(itinerary))
	for _, a := range itinerary {
		entries = append(entries, entry{Date: a.Date, Time: a.Time, Title: a.Title, Type: string(a.Type)})
	}
	encoded, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// cleanJSONResponse strips markdown code fences that models wrap around
// JSON payloads despite being told not to.
func cleanJSONResponse(text string) string {
	if idx := strings.Index(text, "```json"); idx != -1 {
		text = text[idx+7:]
	} else if idx := strings.Index(text, "```"); idx != -1 {
		text = text[idx+3:]
	}
	if idx := strings.Index(text, "```"); idx != -1 {
		text = text[:idx]
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(text), "`"))
}
