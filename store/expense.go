package store

import (
	"sync"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
)

type ExpenseStore interface {
	// List returns a snapshot in insertion order, newest first.
	List() []models.Expense
	Get(id string) (*models.Expense, bool)
	Add(expense models.Expense) error
	// Update replaces the record with the same id; reports whether it existed.
	Update(expense models.Expense) bool
	// Delete is a no-op when the id is absent.
	Delete(id string)
	ReplaceAll(expenses []models.Expense)
	// Summary sums Amount directly; currency conversion is declared via
	// ExchangeRateToBase but not applied anywhere in current flows.
	Summary() models.ExpenseSummary
	Len() int
}

type expenseStore struct {
	mu       sync.RWMutex
	expenses []models.Expense
}

func NewExpenseStore(seed []models.Expense) ExpenseStore {
	s := &expenseStore{}
	s.expenses = append(s.expenses, seed...)
	return s
}

func (s *expenseStore) List() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

func (s *expenseStore) Get(id string) (*models.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			e := s.expenses[i]
			return &e, true
		}
	}
	return nil, false
}

func (s *expenseStore) Add(expense models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == expense.ID {
			return apperrors.DuplicateEntry("Expense")
		}
	}
	// newest-first, matching the ledger view
	s.expenses = append([]models.Expense{expense}, s.expenses...)
	return nil
}

func (s *expenseStore) Update(expense models.Expense) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == expense.ID {
			s.expenses[i] = expense
			return true
		}
	}
	return false
}

func (s *expenseStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
}

func (s *expenseStore) ReplaceAll(expenses []models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = make([]models.Expense, len(expenses))
	copy(s.expenses, expenses)
}

func (s *expenseStore) Summary() models.ExpenseSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	byCategory := make(map[models.ActivityType]float64)
	for _, e := range s.expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
	}

	summary := models.ExpenseSummary{TotalSpent: total}
	for _, cat := range models.ActivityTypes() {
		if amount, ok := byCategory[cat]; ok {
			summary.ByCategory = append(summary.ByCategory, models.CategoryTotal{
				Category: cat,
				Total:    amount,
			})
		}
	}
	return summary
}

func (s *expenseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.expenses)
}
