package services

import (
	"strings"
	"testing"
	"time"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
	"solotravel-backend/store"
)

func newTestImportService(itinerary store.ItineraryStore, wallet store.WalletStore) *importService {
	return &importService{
		itinerary:    itinerary,
		wallet:       wallet,
		syncer:       &mockSyncer{},
		baseCurrency: models.CurrencyJPY,
		now:          func() time.Time { return time.Date(2023, 10, 25, 12, 0, 0, 0, time.UTC) },
	}
}

func TestImportActivitiesKyotoScenario(t *testing.T) {
	itinerary := store.NewItineraryStore(models.SeedActivities())
	svc := newTestImportService(itinerary, store.NewWalletStore(nil))

	csv := "Date,Time,Title,Description,Type,Cost,Address\n" +
		`2023-10-25,10:00,Kyoto Imperial Palace,Historical site visit,Sightseeing,0,"3 Kyotogyoen, Kamigyo Ward, Kyoto"`

	result, err := svc.ImportActivities(csv)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 1 || !result.Replaced {
		t.Fatalf("want 1 imported with replace, got %+v", result)
	}

	got := itinerary.List()
	if len(got) != 1 {
		t.Fatalf("prior collection not replaced: %d records", len(got))
	}
	a := got[0]
	if a.Date != "2023-10-25" || a.Time != "10:00" || a.Title != "Kyoto Imperial Palace" {
		t.Fatalf("unexpected record: %+v", a)
	}
	if a.PriceEstimate != 0 {
		t.Fatalf("want price 0, got %v", a.PriceEstimate)
	}
	if a.Address != "3 Kyotogyoen, Kamigyo Ward, Kyoto" {
		t.Fatalf("quoted comma address mangled: %q", a.Address)
	}
	if a.IsCompleted {
		t.Fatal("imported record must start incomplete")
	}
	if a.Currency != models.CurrencyJPY {
		t.Fatalf("want base currency JPY, got %s", a.Currency)
	}
	if a.ID == "1" {
		t.Fatal("imported record must get a fresh id")
	}
}

func TestImportActivitiesHeaderSniff(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
	}{
		{
			name:      "header with Date is skipped",
			text:      "Date,Time,Title\n2023-10-25,10:00,Palace",
			wantCount: 1,
		},
		{
			name:      "no header, row 0 is data",
			text:      "2023-10-25,10:00,Palace\n2023-10-26,11:00,Garden",
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itinerary := store.NewItineraryStore(nil)
			svc := newTestImportService(itinerary, store.NewWalletStore(nil))

			result, err := svc.ImportActivities(tt.text)
			if err != nil {
				t.Fatalf("import failed: %v", err)
			}
			if result.Imported != tt.wantCount {
				t.Fatalf("want %d imported, got %d", tt.wantCount, result.Imported)
			}
		})
	}
}

func TestImportActivitiesShortRowDropped(t *testing.T) {
	itinerary := store.NewItineraryStore(models.SeedActivities())
	svc := newTestImportService(itinerary, store.NewWalletStore(nil))

	// Two fields is below the three-field minimum; as the only row the
	// import is empty and the existing collection must stay untouched.
	_, err := svc.ImportActivities("2023-10-25,10:00")
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.CodeImportEmpty {
		t.Fatalf("want ImportEmpty, got %v", err)
	}

	if itinerary.Len() != len(models.SeedActivities()) {
		t.Fatalf("collection changed on empty import: %d records", itinerary.Len())
	}
}

func TestImportActivitiesDefaults(t *testing.T) {
	itinerary := store.NewItineraryStore(nil)
	svc := newTestImportService(itinerary, store.NewWalletStore(nil))

	// Date, time, description, type, price empty; title present.
	result, err := svc.ImportActivities(",,Mystery Stop,,,not-a-number")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("want 1 imported, got %d", result.Imported)
	}

	a := itinerary.List()[0]
	if a.Date != "2023-10-25" {
		t.Fatalf("empty date should default to today: got %q", a.Date)
	}
	if a.Time != "00:00" {
		t.Fatalf("want default time 00:00, got %q", a.Time)
	}
	if a.Type != models.ActivityTypeSightseeing {
		t.Fatalf("want default type Sightseeing, got %s", a.Type)
	}
	if a.PriceEstimate != 0 {
		t.Fatalf("unparseable price should default to 0, got %v", a.PriceEstimate)
	}
}

func TestImportActivitiesUnknownTypeDiagnostic(t *testing.T) {
	itinerary := store.NewItineraryStore(nil)
	svc := newTestImportService(itinerary, store.NewWalletStore(nil))

	result, err := svc.ImportActivities("2023-10-25,10:00,Palace,,Spelunking")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	a := itinerary.List()[0]
	if a.Type != models.ActivityTypeSightseeing {
		t.Fatalf("unknown type must coerce to Sightseeing, got %s", a.Type)
	}
	found := false
	for _, d := range result.Diagnostics {
		if strings.Contains(d, "Spelunking") {
			found = true
		}
	}
	if !found {
		t.Fatalf("coercion must be recorded in diagnostics, got %v", result.Diagnostics)
	}
}

func TestImportTicketsReplacesWallet(t *testing.T) {
	wallet := store.NewWalletStore(models.SeedTickets())
	svc := newTestImportService(store.NewItineraryStore(nil), wallet)

	csv := "Type,Title,Date,Details,Notes\n" +
		"Hotel,Ace Hotel Kyoto,Oct 24 - Oct 28,Standard King,Check-in 3PM\n" +
		"Train,Shinkansen Nozomi 7,Oct 28,Car 5 Seat 3A,"

	result, err := svc.ImportTickets(csv)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("want 2 imported, got %d", result.Imported)
	}

	got := wallet.List()
	if len(got) != 2 {
		t.Fatalf("prior wallet not replaced: %d records", len(got))
	}
	if got[0].Type != models.TicketTypeHotel || got[0].Title != "Ace Hotel Kyoto" {
		t.Fatalf("unexpected first ticket: %+v", got[0])
	}
}

func TestImportTicketsDefaultsAndMinimum(t *testing.T) {
	wallet := store.NewWalletStore(models.SeedTickets())
	svc := newTestImportService(store.NewItineraryStore(nil), wallet)

	// One-field row is below the two-field minimum.
	_, err := svc.ImportTickets("OnlyOneField")
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.CodeImportEmpty {
		t.Fatalf("want ImportEmpty, got %v", err)
	}
	if wallet.Len() != len(models.SeedTickets()) {
		t.Fatal("wallet changed on empty import")
	}

	// Unknown type defaults to Event.
	result, err := svc.ImportTickets("Zeppelin,Sky Cruise")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("want 1 imported, got %d", result.Imported)
	}
	if got := wallet.List()[0]; got.Type != models.TicketTypeEvent {
		t.Fatalf("unknown type must coerce to Event, got %s", got.Type)
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	// Re-importing a downloaded template must yield exactly one record
	// whose fields equal the cleaned example values.
	itinerary := store.NewItineraryStore(models.SeedActivities())
	svc := newTestImportService(itinerary, store.NewWalletStore(nil))

	_, content := ItineraryTemplate()
	result, err := svc.ImportActivities(content)
	if err != nil {
		t.Fatalf("round-trip import failed: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("want exactly 1 record, got %d", result.Imported)
	}

	a := itinerary.List()[0]
	if a.Title != "Kyoto Imperial Palace" || a.Date != "2023-10-25" || a.Time != "10:00" {
		t.Fatalf("round-trip mismatch: %+v", a)
	}
	if a.Type != models.ActivityTypeSightseeing {
		t.Fatalf("round-trip type mismatch: %s", a.Type)
	}
}
