package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solotravel-backend/models"
)

func TestClientDisabledWithoutURL(t *testing.T) {
	c := NewClient("")
	if c.Enabled() {
		t.Fatal("expected client without url to be disabled")
	}

	if _, err := c.FetchAll(context.Background()); err == nil {
		t.Fatal("expected FetchAll to fail when disabled")
	}

	// Must be a no-op, not a panic or a hung goroutine.
	c.SyncItem(ItemTypeExpense, ActionSet, models.Expense{ID: "e1"})
}

func TestClientFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(SheetData{
			Plane:  []models.Activity{{ID: "a1", Title: "Fushimi Inari"}},
			Spend:  []models.Expense{{ID: "e1", Amount: 500}},
			Wallet: []models.Ticket{{ID: "t1", Title: "JAL 123"}},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	data, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(data.Plane) != 1 || data.Plane[0].Title != "Fushimi Inari" {
		t.Errorf("unexpected itinerary snapshot: %+v", data.Plane)
	}
	if len(data.Spend) != 1 || len(data.Wallet) != 1 {
		t.Errorf("unexpected snapshot sizes: %d expenses, %d tickets", len(data.Spend), len(data.Wallet))
	}
}

func TestClientFetchAllNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := NewClient(server.URL).FetchAll(context.Background()); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestClientSyncItemPostsPayload(t *testing.T) {
	received := make(chan map[string]interface{}, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding sync payload: %v", err)
		}
		received <- payload
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.SyncItem(ItemTypeItinerary, ActionDelete, models.Activity{ID: "a1"})

	payload := <-received
	if payload["type"] != "plane" {
		t.Errorf("expected type plane, got %v", payload["type"])
	}
	if payload["action"] != "delete" {
		t.Errorf("expected action delete, got %v", payload["action"])
	}
	data, ok := payload["data"].(map[string]interface{})
	if !ok || data["id"] != "a1" {
		t.Errorf("unexpected data payload: %v", payload["data"])
	}
}
