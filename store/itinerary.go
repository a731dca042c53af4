// Package store holds the application's collections in memory. Every
// mutation happens inside one request handler, so a plain mutex per
// store is enough to keep the unique-id invariant safe under
// concurrent HTTP requests.
package store

import (
	"sort"
	"sync"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
)

type ItineraryStore interface {
	// List returns a snapshot sorted by (date, time) ascending. Time is
	// compared lexicographically, valid because it is zero-padded HH:MM.
	List() []models.Activity
	Get(id string) (*models.Activity, bool)
	Add(activity models.Activity) error
	// Upsert fully replaces the record with the same id, or appends it.
	Upsert(activity models.Activity)
	// Delete is a no-op when the id is absent.
	Delete(id string)
	// ToggleCompleted flips IsCompleted; reports whether the id existed.
	ToggleCompleted(id string) bool
	// Append bulk-adds records (AI suggestions) without touching the rest.
	Append(activities []models.Activity)
	// ReplaceAll swaps the entire collection for the given set.
	ReplaceAll(activities []models.Activity)
	Len() int
}

type itineraryStore struct {
	mu         sync.RWMutex
	activities []models.Activity
}

func NewItineraryStore(seed []models.Activity) ItineraryStore {
	s := &itineraryStore{}
	s.activities = append(s.activities, seed...)
	return s
}

func (s *itineraryStore) List() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (s *itineraryStore) Get(id string) (*models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			a := s.activities[i]
			return &a, true
		}
	}
	return nil, false
}

func (s *itineraryStore) Add(activity models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == activity.ID {
			return apperrors.DuplicateEntry("Activity")
		}
	}
	s.activities = append(s.activities, activity)
	return nil
}

func (s *itineraryStore) Upsert(activity models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == activity.ID {
			s.activities[i] = activity
			return
		}
	}
	s.activities = append(s.activities, activity)
}

func (s *itineraryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.activities[:0]
	for _, a := range s.activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.activities = kept
}

func (s *itineraryStore) ToggleCompleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities[i].IsCompleted = !s.activities[i].IsCompleted
			return true
		}
	}
	return false
}

func (s *itineraryStore) Append(activities []models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append(s.activities, activities...)
}

func (s *itineraryStore) ReplaceAll(activities []models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = make([]models.Activity, len(activities))
	copy(s.activities, activities)
}

func (s *itineraryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
