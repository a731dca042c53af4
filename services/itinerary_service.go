package services

import (
	"strings"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
	"solotravel-backend/sheets"
	"solotravel-backend/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ItineraryService interface {
	List() []models.Activity
	Add(activity models.Activity) (*models.Activity, error)
	Upsert(activity models.Activity) (*models.Activity, error)
	Delete(id string)
	ToggleCompleted(id string) error
	// AppendSuggestions assigns fresh ids and marks records incomplete
	// before bulk-appending, so suggested records can never collide with
	// existing ones.
	AppendSuggestions(activities []models.Activity) []models.Activity
}

type itineraryService struct {
	store  store.ItineraryStore
	syncer sheets.Syncer
}

func NewItineraryService(itinerary store.ItineraryStore, syncer sheets.Syncer) ItineraryService {
	return &itineraryService{store: itinerary, syncer: syncer}
}

func (s *itineraryService) List() []models.Activity {
	return s.store.List()
}

func (s *itineraryService) Add(activity models.Activity) (*models.Activity, error) {
	if strings.TrimSpace(activity.Title) == "" {
		return nil, apperrors.MissingRequiredField("Title")
	}
	if activity.PriceEstimate < 0 {
		return nil, apperrors.InvalidAmount("Price estimate cannot be negative.")
	}
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.Type == "" {
		activity.Type = models.ActivityTypeSightseeing
	}
	if activity.Time == "" {
		activity.Time = DefaultActivityTime
	}
	if activity.Images == nil {
		activity.Images = []string{}
	}

	if err := s.store.Add(activity); err != nil {
		return nil, err
	}

	s.syncer.SyncItem(sheets.ItemTypeItinerary, sheets.ActionSet, activity)
	return &activity, nil
}

func (s *itineraryService) Upsert(activity models.Activity) (*models.Activity, error) {
	if strings.TrimSpace(activity.Title) == "" {
		return nil, apperrors.MissingRequiredField("Title")
	}
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.Type == "" {
		activity.Type = models.ActivityTypeSightseeing
	}
	if activity.Time == "" {
		activity.Time = DefaultActivityTime
	}
	if activity.Images == nil {
		activity.Images = []string{}
	}

	s.store.Upsert(activity)
	s.syncer.SyncItem(sheets.ItemTypeItinerary, sheets.ActionSet, activity)
	return &activity, nil
}

func (s *itineraryService) Delete(id string) {
	s.store.Delete(id)
	s.syncer.SyncItem(sheets.ItemTypeItinerary, sheets.ActionDelete, map[string]string{"id": id})
}

func (s *itineraryService) ToggleCompleted(id string) error {
	if !s.store.ToggleCompleted(id) {
		return apperrors.ActivityNotFound()
	}
	if updated, ok := s.store.Get(id); ok {
		s.syncer.SyncItem(sheets.ItemTypeItinerary, sheets.ActionSet, updated)
	}
	return nil
}

func (s *itineraryService) AppendSuggestions(activities []models.Activity) []models.Activity {
	prepared := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		a.ID = uuid.New().String()
		a.IsCompleted = false
		if a.Images == nil {
			a.Images = []string{}
		}
		prepared = append(prepared, a)
	}

	s.store.Append(prepared)
	for _, a := range prepared {
		s.syncer.SyncItem(sheets.ItemTypeItinerary, sheets.ActionSet, a)
	}

	zap.L().Info("Appended suggested activities", zap.Int("count", len(prepared)))
	return prepared
}
