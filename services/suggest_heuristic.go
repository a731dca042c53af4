package services

import (
	"context"
	"strings"

	"solotravel-backend/models"
)

// HeuristicProvider is the deterministic local generator at the end of
// the fallback chain. It never fails, so exhausting the remote providers
// still produces a usable (if generic) suggestion.
type HeuristicProvider struct {
	destination string
}

func NewHeuristicProvider(destination string) *HeuristicProvider {
	return &HeuristicProvider{destination: destination}
}

func (p *HeuristicProvider) Name() string { return "heuristic" }

func (p *HeuristicProvider) Suggest(_ context.Context, _ []models.Activity, prompt, referenceDate string) ([]models.Activity, error) {
	lower := strings.ToLower(prompt)

	pick := func(activityType models.ActivityType, timeOfDay, title, description string) models.Activity {
		return models.Activity{
			Date:        referenceDate,
			Time:        timeOfDay,
			Title:       title,
			Description: description,
			Type:        activityType,
			Currency:    models.CurrencyJPY,
		}
	}

	switch {
	case containsAny(lower, "eat", "food", "lunch", "dinner", "restaurant", "cafe"):
		return []models.Activity{
			pick(models.ActivityTypeFood, "12:30",
				"Local lunch spot in "+p.destination,
				"A well-reviewed neighborhood restaurant near your current plan. Reserve ahead at peak hours."),
		}, nil
	case containsAny(lower, "shop", "market", "souvenir", "buy"):
		return []models.Activity{
			pick(models.ActivityTypeShopping, "15:00",
				"Market stroll in "+p.destination,
				"Browse the central market streets for crafts and snacks."),
		}, nil
	case containsAny(lower, "train", "bus", "transfer", "airport", "station"):
		return []models.Activity{
			pick(models.ActivityTypeTransport, "09:00",
				"Transit connection",
				"Allow extra time for the connection; check the local transit app for delays."),
		}, nil
	case containsAny(lower, "hotel", "stay", "check-in", "checkin", "sleep"):
		return []models.Activity{
			pick(models.ActivityTypeAccommodation, "15:00",
				"Hotel check-in",
				"Standard check-in time. Luggage can usually be dropped earlier at the front desk."),
		}, nil
	default:
		return []models.Activity{
			pick(models.ActivityTypeSightseeing, "10:00",
				"Morning walk in "+p.destination,
				"An unhurried walk through the old quarter. Start early to beat the crowds."),
		}, nil
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
