package services

import (
	"context"
	"testing"

	"solotravel-backend/models"
	"solotravel-backend/store"
)

func newSuggestionFixture(providers ...SuggestionProvider) (SuggestionService, store.ItineraryStore) {
	itineraryStore := store.NewItineraryStore(models.SeedActivities())
	itinerarySvc := NewItineraryService(itineraryStore, &mockSyncer{})
	return NewSuggestionService(providers, itinerarySvc, itineraryStore), itineraryStore
}

func suggestedActivity(title string) models.Activity {
	return models.Activity{
		Date:        "2023-10-26",
		Time:        "10:00",
		Title:       title,
		Description: "suggested",
		Type:        models.ActivityTypeSightseeing,
	}
}

func TestSuggestAppendsOnFirstSuccess(t *testing.T) {
	first := &mockProvider{name: "a", activities: []models.Activity{suggestedActivity("Arashiyama Bamboo Grove")}}
	second := &mockProvider{name: "b"}
	svc, itinerary := newSuggestionFixture(first, second)

	before := itinerary.Len()
	got, err := svc.Suggest(context.Background(), "add something for tomorrow", "2023-10-26")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("want 1 suggestion, got %d", len(got))
	}
	if got[0].ID == "" {
		t.Fatal("suggestion must get a fresh id")
	}
	if got[0].IsCompleted {
		t.Fatal("suggestion must start incomplete")
	}
	if itinerary.Len() != before+1 {
		t.Fatalf("want append, store went from %d to %d", before, itinerary.Len())
	}
	if second.calls != 0 {
		t.Fatal("second provider must not run after a success")
	}
}

func TestSuggestFallsBackInOrder(t *testing.T) {
	first := &mockProvider{name: "a", err: errProviderDown}
	second := &mockProvider{name: "b", activities: []models.Activity{suggestedActivity("Gion evening walk")}}
	svc, itinerary := newSuggestionFixture(first, second)

	got, err := svc.Suggest(context.Background(), "evening plans", "2023-10-26")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("chain order broken: first=%d second=%d", first.calls, second.calls)
	}
	if got[0].Title != "Gion evening walk" {
		t.Fatalf("unexpected suggestion: %+v", got[0])
	}
	if itinerary.Len() != len(models.SeedActivities())+1 {
		t.Fatalf("store count wrong: %d", itinerary.Len())
	}
}

func TestSuggestAllProvidersFailLeavesStoreUnchanged(t *testing.T) {
	first := &mockProvider{name: "a", err: errProviderDown}
	second := &mockProvider{name: "b", err: errProviderDown}
	svc, itinerary := newSuggestionFixture(first, second)

	before := itinerary.Len()
	_, err := svc.Suggest(context.Background(), "anything", "2023-10-26")
	if err == nil {
		t.Fatal("want error when every provider fails")
	}
	if itinerary.Len() != before {
		t.Fatalf("itinerary changed on failure: %d -> %d", before, itinerary.Len())
	}
}

func TestSuggestNonRetryableStopsChain(t *testing.T) {
	first := &mockProvider{name: "a", err: context.Canceled}
	second := &mockProvider{name: "b", activities: []models.Activity{suggestedActivity("Should not appear")}}
	svc, itinerary := newSuggestionFixture(first, second)

	before := itinerary.Len()
	_, err := svc.Suggest(context.Background(), "anything", "2023-10-26")
	if err == nil {
		t.Fatal("want error on cancellation")
	}
	if second.calls != 0 {
		t.Fatal("chain must stop on a non-retryable error")
	}
	if itinerary.Len() != before {
		t.Fatal("itinerary changed after cancelled request")
	}
}

func TestSuggestFillsMissingDateFromReference(t *testing.T) {
	undated := suggestedActivity("Tea ceremony")
	undated.Date = ""
	provider := &mockProvider{name: "a", activities: []models.Activity{undated}}
	svc, _ := newSuggestionFixture(provider)

	got, err := svc.Suggest(context.Background(), "book a tea ceremony", "2023-10-27")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if got[0].Date != "2023-10-27" {
		t.Fatalf("want reference date, got %q", got[0].Date)
	}
}

func TestSuggestDropsUntitledRecords(t *testing.T) {
	blank := suggestedActivity("")
	provider := &mockProvider{name: "a", activities: []models.Activity{blank}}
	fallback := &mockProvider{name: "b", activities: []models.Activity{suggestedActivity("Nijo Castle")}}
	svc, _ := newSuggestionFixture(provider, fallback)

	got, err := svc.Suggest(context.Background(), "castles", "2023-10-26")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if got[0].Title != "Nijo Castle" {
		t.Fatalf("untitled suggestion should be dropped and chain continue, got %+v", got[0])
	}
}

func TestHeuristicProviderIsDeterministic(t *testing.T) {
	p := NewHeuristicProvider("Kyoto")

	first, err := p.Suggest(context.Background(), nil, "where should I eat lunch?", "2023-10-26")
	if err != nil {
		t.Fatalf("heuristic provider must not fail: %v", err)
	}
	second, _ := p.Suggest(context.Background(), nil, "where should I eat lunch?", "2023-10-26")

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("want exactly one suggestion, got %d and %d", len(first), len(second))
	}
	if first[0].Title != second[0].Title || first[0].Time != second[0].Time || first[0].Type != second[0].Type {
		t.Fatalf("same input produced different output: %+v vs %+v", first[0], second[0])
	}
	if first[0].Type != models.ActivityTypeFood {
		t.Fatalf("food request should map to a Food activity, got %s", first[0].Type)
	}
	if first[0].Date != "2023-10-26" {
		t.Fatalf("want reference date, got %q", first[0].Date)
	}
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"```\n[]\n```", "[]"},
		{"[]", "[]"},
	}
	for _, tt := range tests {
		if got := cleanJSONResponse(tt.in); got != tt.want {
			t.Fatalf("cleanJSONResponse(%q): want %q, got %q", tt.in, tt.want, got)
		}
	}
}
