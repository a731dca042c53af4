package services

import (
	"context"
	"errors"
	"fmt"

	"solotravel-backend/models"
	"solotravel-backend/sheets"
)

// mockSyncer records pushes so tests can assert fire-and-forget wiring
// without a network.
type mockSyncer struct {
	enabled  bool
	pushes   []string
	data     *sheets.SheetData
	fetchErr error
}

func (m *mockSyncer) Enabled() bool { return m.enabled }

func (m *mockSyncer) FetchAll(ctx context.Context) (*sheets.SheetData, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.data, nil
}

func (m *mockSyncer) SyncItem(itemType sheets.ItemType, action sheets.Action, data interface{}) {
	m.pushes = append(m.pushes, fmt.Sprintf("%s/%s", itemType, action))
}

// mockProvider is a scripted SuggestionProvider.
type mockProvider struct {
	name       string
	activities []models.Activity
	err        error
	calls      int
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Suggest(ctx context.Context, itinerary []models.Activity, prompt, referenceDate string) ([]models.Activity, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.activities, nil
}

var errProviderDown = errors.New("provider unavailable")
