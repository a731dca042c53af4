package services

import (
	"context"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/sheets"
	"solotravel-backend/store"

	"go.uber.org/zap"
)

type SyncService interface {
	// Pull fetches the remote snapshot and replaces all three stores
	// wholesale. A fetch failure leaves local state untouched.
	Pull(ctx context.Context) (*sheets.SheetData, error)
}

type syncService struct {
	syncer    sheets.Syncer
	itinerary store.ItineraryStore
	expenses  store.ExpenseStore
	wallet    store.WalletStore
}

func NewSyncService(syncer sheets.Syncer, itinerary store.ItineraryStore, expenses store.ExpenseStore, wallet store.WalletStore) SyncService {
	return &syncService{
		syncer:    syncer,
		itinerary: itinerary,
		expenses:  expenses,
		wallet:    wallet,
	}
}

func (s *syncService) Pull(ctx context.Context) (*sheets.SheetData, error) {
	if !s.syncer.Enabled() {
		return nil, apperrors.SyncDisabled()
	}

	data, err := s.syncer.FetchAll(ctx)
	if err != nil {
		zap.L().Error("Sheet pull failed, keeping local state", zap.Error(err))
		return nil, apperrors.SyncFetchFailed(err)
	}

	s.itinerary.ReplaceAll(data.Plane)
	s.expenses.ReplaceAll(data.Spend)
	s.wallet.ReplaceAll(data.Wallet)

	zap.L().Info("Replaced local state from remote sheet",
		zap.Int("activities", len(data.Plane)),
		zap.Int("expenses", len(data.Spend)),
		zap.Int("tickets", len(data.Wallet)))

	return data, nil
}
