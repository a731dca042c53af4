package store

import (
	"sync"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
)

type WalletStore interface {
	// List returns a snapshot in insertion order, newest first.
	List() []models.Ticket
	Get(id string) (*models.Ticket, bool)
	Add(ticket models.Ticket) error
	// Upsert fully replaces the record with the same id, or appends it.
	Upsert(ticket models.Ticket)
	// Delete is a no-op when the id is absent.
	Delete(id string)
	ReplaceAll(tickets []models.Ticket)
	Len() int
}

type walletStore struct {
	mu      sync.RWMutex
	tickets []models.Ticket
}

func NewWalletStore(seed []models.Ticket) WalletStore {
	s := &walletStore{}
	s.tickets = append(s.tickets, seed...)
	return s
}

func (s *walletStore) List() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

func (s *walletStore) Get(id string) (*models.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tickets {
		if s.tickets[i].ID == id {
			t := s.tickets[i]
			return &t, true
		}
	}
	return nil, false
}

func (s *walletStore) Add(ticket models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == ticket.ID {
			return apperrors.DuplicateEntry("Ticket")
		}
	}
	s.tickets = append([]models.Ticket{ticket}, s.tickets...)
	return nil
}

func (s *walletStore) Upsert(ticket models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == ticket.ID {
			s.tickets[i] = ticket
			return
		}
	}
	s.tickets = append(s.tickets, ticket)
}

func (s *walletStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tickets[:0]
	for _, t := range s.tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tickets = kept
}

func (s *walletStore) ReplaceAll(tickets []models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = make([]models.Ticket, len(tickets))
	copy(s.tickets, tickets)
}

func (s *walletStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}
