package services

import (
	"context"
	"testing"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
	"solotravel-backend/sheets"
	"solotravel-backend/store"
)

func TestSyncPullReplacesAllStores(t *testing.T) {
	itinerary := store.NewItineraryStore(models.SeedActivities())
	expenses := store.NewExpenseStore(models.SeedExpenses())
	wallet := store.NewWalletStore(models.SeedTickets())

	syncer := &mockSyncer{
		enabled: true,
		data: &sheets.SheetData{
			Plane: []models.Activity{{ID: "r1", Date: "2023-11-01", Time: "09:00", Title: "Remote plan", Type: models.ActivityTypeSightseeing}},
			Spend: []models.Expense{{ID: "r2", Amount: 42, Currency: models.CurrencyJPY, Category: models.ActivityTypeFood, Description: "Remote spend", Date: "2023-11-01", ExchangeRateToBase: 1}},
		},
	}

	svc := NewSyncService(syncer, itinerary, expenses, wallet)
	data, err := svc.Pull(context.Background())
	if err != nil {
		t.Fatalf("pull failed: %v", err)
	}
	if len(data.Plane) != 1 {
		t.Fatalf("unexpected snapshot: %+v", data)
	}

	if itinerary.Len() != 1 || expenses.Len() != 1 || wallet.Len() != 0 {
		t.Fatalf("stores not replaced wholesale: %d/%d/%d", itinerary.Len(), expenses.Len(), wallet.Len())
	}
}

func TestSyncPullFailureKeepsLocalState(t *testing.T) {
	itinerary := store.NewItineraryStore(models.SeedActivities())
	expenses := store.NewExpenseStore(models.SeedExpenses())
	wallet := store.NewWalletStore(models.SeedTickets())

	syncer := &mockSyncer{enabled: true, fetchErr: errProviderDown}
	svc := NewSyncService(syncer, itinerary, expenses, wallet)

	_, err := svc.Pull(context.Background())
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.CodeSyncFetchFailed {
		t.Fatalf("want SyncFetchFailed, got %v", err)
	}

	if itinerary.Len() != len(models.SeedActivities()) {
		t.Fatal("itinerary changed after failed pull")
	}
	if expenses.Len() != len(models.SeedExpenses()) {
		t.Fatal("expenses changed after failed pull")
	}
}

func TestSyncPullDisabled(t *testing.T) {
	svc := NewSyncService(&mockSyncer{enabled: false},
		store.NewItineraryStore(nil), store.NewExpenseStore(nil), store.NewWalletStore(nil))

	_, err := svc.Pull(context.Background())
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.CodeSyncDisabled {
		t.Fatalf("want SyncDisabled, got %v", err)
	}
}

func TestExpenseServicePushesSync(t *testing.T) {
	syncer := &mockSyncer{enabled: true}
	svc := NewExpenseService(store.NewExpenseStore(nil), syncer, models.CurrencyJPY)

	added, err := svc.Add(models.Expense{Amount: 300, Description: "Bus fare"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if added.Currency != models.CurrencyJPY {
		t.Fatalf("empty currency should default to base, got %s", added.Currency)
	}
	if added.ExchangeRateToBase != 1 {
		t.Fatalf("want exchange rate 1, got %v", added.ExchangeRateToBase)
	}

	svc.Delete(added.ID)

	want := []string{"spend/set", "spend/delete"}
	if len(syncer.pushes) != len(want) {
		t.Fatalf("want %v pushes, got %v", want, syncer.pushes)
	}
	for i := range want {
		if syncer.pushes[i] != want[i] {
			t.Fatalf("push %d: want %q, got %q", i, want[i], syncer.pushes[i])
		}
	}
}
